package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidMetric = errors.New("invalid web-vitals metric")

// MetricNames are the web-vitals the site reports.
var MetricNames = map[string]bool{
	"CLS": true, "FCP": true, "FID": true, "INP": true, "LCP": true, "TTFB": true,
}

var ratings = map[string]bool{"": true, "good": true, "needs-improvement": true, "poor": true}

// Metric is one web-vitals sample posted by the browser.
type Metric struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Rating    string    `json:"rating,omitempty"`
	Path      string    `json:"path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks the name, value and rating.
func (m Metric) Validate() error {
	if !MetricNames[m.Name] {
		return fmt.Errorf("%w: unknown name %q", ErrInvalidMetric, m.Name)
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) || m.Value < 0 {
		return fmt.Errorf("%w: value %v", ErrInvalidMetric, m.Value)
	}
	if !ratings[m.Rating] {
		return fmt.Errorf("%w: rating %q", ErrInvalidMetric, m.Rating)
	}
	return nil
}

// RecordMetric validates and stores a sample, assigning its ID and time.
func (s *Store) RecordMetric(ctx context.Context, m Metric) (Metric, error) {
	if err := m.Validate(); err != nil {
		return Metric{}, err
	}
	m.ID = uuid.NewString()
	m.Timestamp = s.now().UTC().Truncate(time.Second)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO metrics (id, name, value, rating, path, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Value, m.Rating, m.Path, m.Timestamp.Unix())
	if err != nil {
		return Metric{}, fmt.Errorf("record metric: %w", err)
	}
	return m, nil
}

// MetricSummary aggregates the samples of one metric.
type MetricSummary struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
}

// MetricSummaries returns one summary per metric name, sorted by name.
func (s *Store) MetricSummaries(ctx context.Context) ([]MetricSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, COUNT(*), AVG(value), MAX(value)
		FROM metrics
		GROUP BY name
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	var out []MetricSummary
	for rows.Next() {
		var m MetricSummary
		if err := rows.Scan(&m.Name, &m.Count, &m.Average, &m.Max); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
