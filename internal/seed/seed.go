// Package seed loads station and line fixtures from YAML and applies them
// through the services, so seeded data obeys the same rules as API traffic.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/service"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML document accepted by Load:
//
//	stations:
//	  - 강남역
//	lines:
//	  - name: 2호선
//	    color: bg-green-600
type Fixture struct {
	Stations []string      `yaml:"stations"`
	Lines    []LineFixture `yaml:"lines"`
}

// LineFixture describes one line to create.
type LineFixture struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Result counts what Apply did.
type Result struct {
	StationsCreated int
	LinesCreated    int
	Skipped         int
}

// Load parses a fixture. Unknown keys are rejected; empty input yields an
// empty fixture.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &Fixture{}, nil
		}
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed fixture: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// Apply creates the fixture's stations, then its lines, in document order.
// Entries whose name already exists are skipped and logged, so applying the
// same fixture twice is harmless. Any other error aborts and is returned
// together with the counts reached so far.
func Apply(
	ctx context.Context,
	f *Fixture,
	stations service.StationService,
	lines service.LineService,
	logger *slog.Logger,
) (Result, error) {
	var res Result
	if f == nil {
		return res, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "seed")

	for _, name := range f.Stations {
		_, err := stations.CreateStation(ctx, name)
		switch {
		case err == nil:
			res.StationsCreated++
		case errors.Is(err, domain.ErrDuplicateName):
			log.Info("skipping existing station", "name", name)
			res.Skipped++
		default:
			return res, fmt.Errorf("failed to seed station %q: %w", name, err)
		}
	}

	for _, lf := range f.Lines {
		_, err := lines.CreateLine(ctx, lf.Name, lf.Color)
		switch {
		case err == nil:
			res.LinesCreated++
		case errors.Is(err, domain.ErrDuplicateName):
			log.Info("skipping existing line", "name", lf.Name)
			res.Skipped++
		default:
			return res, fmt.Errorf("failed to seed line %q: %w", lf.Name, err)
		}
	}

	log.Info("seed applied",
		"stations_created", res.StationsCreated,
		"lines_created", res.LinesCreated,
		"skipped", res.Skipped)
	return res, nil
}
