package testdb

import (
	"net/url"
	"os"
)

// databaseURLVars lists the variables consulted for the test database, in order.
var databaseURLVars = []string{"DATABASE_URL", "SUBWAY_TEST_DB_URL", "SUBWAY_DATABASE_URL"}

// GetTestDatabaseURL returns the first configured test database URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range databaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a PostgreSQL test database is
// configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest is the inverse of IsIntegrationTestEnvironment.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// maskDatabaseURL hides the password of a connection URL for test output.
func maskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil || parsed.User == nil {
		return dbURL
	}
	if _, ok := parsed.User.Password(); ok {
		parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
	}
	return parsed.String()
}
