// Package datalab builds the sensor API query shown on the data screen and
// exports the demo series as CSV.
package datalab

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"GuardianesDelFuego/internal/constants"
	"GuardianesDelFuego/internal/domain"
)

var (
	ErrInvalidDate = errors.New("fecha inválida (usa AAAA-MM-DD)")
	ErrDateOrder   = errors.New("la fecha inicial es posterior a la final")
)

// Query is the local state of the data lab form.
type Query struct {
	Sensor   string
	Variable domain.Variable
	From     string
	To       string
}

// NewQuery starts on the given sensor and temperature, both dates today.
func NewQuery(sensor string, today time.Time) Query {
	d := today.Format(constants.DateLayout)
	return Query{Sensor: sensor, Variable: domain.VarTemp, From: d, To: d}
}

// Validate checks both dates parse and are in order.
func (q Query) Validate() error {
	from, err := time.Parse(constants.DateLayout, q.From)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, q.From)
	}
	to, err := time.Parse(constants.DateLayout, q.To)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, q.To)
	}
	if from.After(to) {
		return ErrDateOrder
	}
	return nil
}

// URL fills the endpoint template. Unknown placeholders are left as-is.
func (q Query) URL(template string) string {
	if template == "" {
		template = constants.DefaultEndpoint
	}
	r := strings.NewReplacer(
		"{sensor}", escapeComponent(q.Sensor),
		"{var}", string(q.Variable),
		"{from}", q.From,
		"{to}", q.To,
	)
	return r.Replace(template)
}

// escapeComponent escapes like a URI component: spaces become %20, not +.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FileName is the CSV download name.
func (q Query) FileName() string {
	return fmt.Sprintf("datos_%s_%s_%s_a_%s.csv", q.Sensor, q.Variable, q.From, q.To)
}

// CSV renders the series as "hora,<column>" rows without a trailing newline.
func (q Query) CSV(series []domain.SeriesPoint) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"hora", q.Variable.Column()}); err != nil {
		return nil, err
	}
	for _, p := range series {
		if err := w.Write([]string{p.T, domain.FormatValue(p.Value(q.Variable))}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
