package store

import (
	"context"
	"fmt"
	"time"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPaths         []PathCount     `json:"top_paths"`
	RecentVisitors   []Visit         `json:"recent_visitors"`
	Metrics          []MetricSummary `json:"metrics"`
}

// PathCount is the number of visits to one path.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.TopPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.Metrics, err = s.MetricSummaries(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// TopPaths returns the most visited paths.
func (s *Store) TopPaths(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n
		FROM visits
		GROUP BY path
		ORDER BY n DESC, path
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scan top path: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
