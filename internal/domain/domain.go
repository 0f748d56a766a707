// Package domain holds the read-only records shown by the mockup.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is an alert severity.
type Level string

const (
	LevelLow    Level = "Bajo"
	LevelMedium Level = "Medio"
	LevelHigh   Level = "Alto"
)

// Valid reports whether l is one of the known severities.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// AlertItem is a recent fire alert.
type AlertItem struct {
	ID    int    `yaml:"id"`
	Place string `yaml:"place"`
	Level Level  `yaml:"level"`
	Time  string `yaml:"time"`
	Color string `yaml:"color"`
}

// Variable identifies one measured quantity of a SeriesPoint.
type Variable string

const (
	VarTemp  Variable = "temp"
	VarHum   Variable = "hum"
	VarWind  Variable = "wind"
	VarSmoke Variable = "smoke"
)

// Variables lists the measured quantities in selector order.
var Variables = []Variable{VarTemp, VarHum, VarWind, VarSmoke}

// ParseVariable accepts a variable key.
func ParseVariable(s string) (Variable, error) {
	for _, v := range Variables {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variable %q (want temp, hum, wind or smoke)", s)
}

// Label is the human-readable name shown in selectors.
func (v Variable) Label() string {
	switch v {
	case VarTemp:
		return "Temperatura"
	case VarHum:
		return "Humedad"
	case VarWind:
		return "Viento"
	case VarSmoke:
		return "Humo"
	}
	return string(v)
}

// Column is the CSV column header for the variable.
func (v Variable) Column() string {
	switch v {
	case VarTemp:
		return "temperatura"
	case VarHum:
		return "humedad"
	case VarWind:
		return "viento_kmh"
	case VarSmoke:
		return "humo_index"
	}
	return string(v)
}

// SeriesPoint is one sample of the demo sensor series.
type SeriesPoint struct {
	T     string  `yaml:"t"`
	Temp  float64 `yaml:"temp"`
	Hum   float64 `yaml:"hum"`
	Wind  float64 `yaml:"wind"`
	Smoke float64 `yaml:"smoke"`
}

// Value returns the sample for v.
func (p SeriesPoint) Value(v Variable) float64 {
	switch v {
	case VarTemp:
		return p.Temp
	case VarHum:
		return p.Hum
	case VarWind:
		return p.Wind
	case VarSmoke:
		return p.Smoke
	}
	return 0
}

// FormatValue renders a sample without trailing zeros (22, 0.2, 0.05).
func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Status is the state of a dispatch item.
type Status string

const (
	StatusReceived   Status = "Recibido"
	StatusEnRoute    Status = "En ruta"
	StatusControlled Status = "Controlado"
)

// Statuses lists dispatch states in filter order.
var Statuses = []Status{StatusReceived, StatusEnRoute, StatusControlled}

// Priority is a dispatch item's urgency.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
)

// DispatchItem is a simulated incident shown on the dispatch panel.
type DispatchItem struct {
	ID       int      `yaml:"id"`
	Place    string   `yaml:"place"`
	Status   Status   `yaml:"status"`
	Priority Priority `yaml:"priority"`
	Age      string   `yaml:"age"`
}

// Post is a community feed entry.
type Post struct {
	User string `yaml:"user"`
	Text string `yaml:"text"`
	TS   string `yaml:"ts"`
}

// Section is a titled list of bullet points.
type Section struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Lesson is the step-by-step micro-course.
type Lesson struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Steps    []string `yaml:"steps"`
}

// Course is the detailed course shown from the Learn screen.
type Course struct {
	Title     string    `yaml:"title"`
	Subtitle  string    `yaml:"subtitle"`
	Video     string    `yaml:"video"`
	VideoTime string    `yaml:"video_time"`
	Sections  []Section `yaml:"sections"`
	Checklist string    `yaml:"checklist_file"`
}

// ChecklistText renders the course as a plain-text checklist, one box per
// item.
func (c Course) ChecklistText() string {
	var b strings.Builder
	b.WriteString(c.Title + "\n")
	b.WriteString(c.Subtitle + "\n")
	for _, sec := range c.Sections {
		b.WriteString("\n" + sec.Title + "\n")
		for _, item := range sec.Items {
			b.WriteString("[ ] " + item + "\n")
		}
	}
	return b.String()
}

// TileAction says which overlay a Learn tile opens.
type TileAction string

const (
	TileCourse TileAction = "course"
	TileLesson TileAction = "lesson"
)

// Tile is a Learn screen shortcut.
type Tile struct {
	Title    string     `yaml:"title"`
	Duration string     `yaml:"duration"`
	Opens    TileAction `yaml:"opens"`
}

// Stat is a labelled counter (profile and home metrics).
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Color string `yaml:"color"`
}

// Marker is a simulated point on the pseudo-map, positioned in percent.
type Marker struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
}

// Profile is the demo user card.
type Profile struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	Stats []Stat `yaml:"stats"`
}
