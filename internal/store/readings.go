package store

import (
	"context"

	"hydromon/internal/model"
)

func (s *Store) LatestReading(ctx context.Context) (*model.SensorReading, error) {
	var reading model.SensorReading
	if err := s.db.WithContext(ctx).Order("id DESC").First(&reading).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

// DeleteReadings removes exactly the listed rows and reports how many were hit.
func (s *Store) DeleteReadings(ctx context.Context, ids []uint64) (int64, error) {
	r := s.db.WithContext(ctx).Delete(&model.SensorReading{}, ids)
	return r.RowsAffected, r.Error
}
