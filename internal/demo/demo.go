// Package demo loads the hardcoded dataset the mockup renders.
package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"GuardianesDelFuego/internal/constants"
	"GuardianesDelFuego/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

var (
	ErrNoAlerts     = errors.New("demo dataset has no alerts")
	ErrShortSeries  = errors.New("demo series has too few points")
	ErrNoSensors    = errors.New("demo dataset has no sensors")
	ErrUnknownLevel = errors.New("unknown alert level")
)

// MicroCourse is the highlighted course card on the Learn screen.
type MicroCourse struct {
	Title string `yaml:"title"`
	Badge string `yaml:"badge"`
}

// Dataset is every piece of read-only demo content.
type Dataset struct {
	Location    string                `yaml:"location"`
	Risk        string                `yaml:"risk"`
	Markers     []domain.Marker       `yaml:"markers"`
	Metrics     []domain.Stat         `yaml:"metrics"`
	Series      []domain.SeriesPoint  `yaml:"series"`
	Alerts      []domain.AlertItem    `yaml:"alerts"`
	Dispatch    []domain.DispatchItem `yaml:"dispatch"`
	Posts       []domain.Post         `yaml:"posts"`
	Tiles       []domain.Tile         `yaml:"tiles"`
	MicroCourse MicroCourse           `yaml:"micro_course"`
	Lesson      domain.Lesson         `yaml:"lesson"`
	Course      domain.Course         `yaml:"course"`
	Profile     domain.Profile        `yaml:"profile"`
	Sensors     []string              `yaml:"sensors"`
}

// Parse decodes and validates a dataset document.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing demo dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

var (
	defaultOnce sync.Once
	defaultData *Dataset
	defaultErr  error
)

// Load returns the embedded dataset, parsed once.
func Load() (*Dataset, error) {
	defaultOnce.Do(func() {
		defaultData, defaultErr = Parse(demoYAML)
	})
	return defaultData, defaultErr
}

// Default is Load for callers that treat a broken embedded dataset as a bug.
func Default() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}

// Validate checks the sanity invariants the screens rely on.
func (d *Dataset) Validate() error {
	if len(d.Alerts) == 0 {
		return ErrNoAlerts
	}
	if len(d.Series) < constants.MinSeriesPoints {
		return fmt.Errorf("%w: %d < %d", ErrShortSeries, len(d.Series), constants.MinSeriesPoints)
	}
	if len(d.Sensors) == 0 {
		return ErrNoSensors
	}
	for _, a := range d.Alerts {
		if !a.Level.Valid() {
			return fmt.Errorf("%w %q (alert %d)", ErrUnknownLevel, a.Level, a.ID)
		}
	}
	return nil
}

// AlertByID looks up an alert.
func (d *Dataset) AlertByID(id int) (domain.AlertItem, bool) {
	for _, a := range d.Alerts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.AlertItem{}, false
}
