// Package testdb provides database helpers for tests.
//
// SQL store tests run against SQLite in a temporary directory unconditionally
// and against PostgreSQL when a test database URL is configured. PostgreSQL
// tests run inside a transaction that is rolled back when the test completes,
// so they leave no data behind and can share one database.
//
//	func TestMyStore(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips when no database is configured
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := sqlstore.NewStationStore(tx, postgres.Dialect{}, nil)
//	        ...
//	    })
//	}
//
// # Environment Variables
//
// - DATABASE_URL: Primary connection string
// - SUBWAY_TEST_DB_URL: Alternative connection string
// - SUBWAY_DATABASE_URL: Fallback connection string
package testdb
