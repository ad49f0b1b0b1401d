package store

import (
	"context"

	"gorm.io/gorm/clause"

	"hydromon/internal/model"
)

func (s *Store) CreatePlant(ctx context.Context, p *model.PlantProfile) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) ListPlants(ctx context.Context) ([]model.PlantProfile, error) {
	var plants []model.PlantProfile
	if err := s.db.WithContext(ctx).Order("id").Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (s *Store) GetPlant(ctx context.Context, id uint64) (*model.PlantProfile, error) {
	var plant model.PlantProfile
	if err := s.db.WithContext(ctx).First(&plant, id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (s *Store) PlantsByIDs(ctx context.Context, ids []uint64) ([]model.PlantProfile, error) {
	var plants []model.PlantProfile
	if err := s.db.WithContext(ctx).Find(&plants, ids).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (s *Store) UpdatePlant(ctx context.Context, p *model.PlantProfile) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *Store) DeletePlant(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.PlantProfile{}, id).Error
}

// UpsertMultiplant persists the resolved overlap keyed on its fixed name.
// Re-saving the same resolution is idempotent, last write wins.
func (s *Store) UpsertMultiplant(ctx context.Context, m *model.MultiplantProfile) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"ph_min", "ph_max", "ec_min", "ec_max"}),
	}).Create(m).Error
}

func (s *Store) GetMultiplant(ctx context.Context) (*model.MultiplantProfile, error) {
	var m model.MultiplantProfile
	if err := s.db.WithContext(ctx).Where("name = ?", model.MultiplantName).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
