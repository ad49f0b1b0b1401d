package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hydromon/internal/model"
)

func (s *Store) GetSystemConfig(ctx context.Context) (*model.SystemConfig, error) {
	var cfg model.SystemConfig
	if err := s.db.WithContext(ctx).First(&cfg, 1).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Store) SetSelectedPlant(ctx context.Context, plantID uint64) error {
	cfg, err := s.GetSystemConfig(ctx)
	if err != nil {
		return err
	}
	cfg.SelectedPlantID = plantID
	return s.db.WithContext(ctx).Save(cfg).Error
}

// ActiveProfileName resolves the selection to a display name: plant profiles
// first, the multiplant profile as fallback. found is false when neither
// table has the selected id.
func (s *Store) ActiveProfileName(ctx context.Context) (string, bool, error) {
	cfg, err := s.GetSystemConfig(ctx)
	if err != nil {
		return "", false, err
	}

	var plant model.PlantProfile
	err = s.db.WithContext(ctx).First(&plant, cfg.SelectedPlantID).Error
	if err == nil {
		return plant.Name, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	var multi model.MultiplantProfile
	err = s.db.WithContext(ctx).First(&multi, cfg.SelectedPlantID).Error
	if err == nil {
		return multi.Name, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	return "", false, nil
}
