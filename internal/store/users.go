package store

import (
	"context"

	"hydromon/internal/model"
)

func (s *Store) CreateUserProfile(ctx context.Context, u *model.UserProfile) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *Store) ListUserProfiles(ctx context.Context) ([]model.UserProfile, error) {
	var users []model.UserProfile
	if err := s.db.WithContext(ctx).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUserProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, u *model.UserProfile) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *Store) DeleteUserProfile(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserProfile{}).Error
}
