package state

import (
	"context"
	"time"
)

// Activity is one recorded operator action: logins, logouts, and the
// create/update/delete operations issued against the backend.
type Activity struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Actor     string
	Action    string
	Resource  string
	RecordID  string
	Detail    string
	CreatedAt time.Time
}

func (Activity) TableName() string { return "activities" }

// RecordActivity appends one entry to the operator activity log.
func (s *Store) RecordActivity(ctx context.Context, a Activity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.ID = 0
	return s.db.WithContext(ctx).Create(&a).Error
}

// RecentActivity returns the newest entries, most recent first.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := make([]Activity, 0, limit)
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PruneActivity deletes log entries recorded before the cutoff and reports
// how many were removed.
func (s *Store) PruneActivity(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&Activity{})
	return res.RowsAffected, res.Error
}
