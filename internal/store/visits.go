package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Visit is one tracked page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordVisit hashes ip and stores the visit.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// TrackVisit records a visit in the background. Close waits for it.
func (s *Store) TrackVisit(ip, userAgent, path string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.RecordVisit(ctx, ip, userAgent, path); err != nil {
			s.logger.Warn("visit not recorded", zap.String("path", path), zap.Error(err))
		}
	}()
}

// Cleanup deletes visits and metrics older than maxAge and returns the
// number of visits removed.
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM metrics WHERE created_at < ?`, cutoff); err != nil {
		return 0, fmt.Errorf("cleanup metrics: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	if n > 0 {
		s.logger.Info("privacy cleanup", zap.Int64("visits_removed", n))
	}
	return n, nil
}

// RecentVisits returns the newest visits first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), path, created_at
		FROM visits
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v  Visit
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
