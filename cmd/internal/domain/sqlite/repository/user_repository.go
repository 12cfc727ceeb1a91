package repository

import (
	"context"
	"errors"
	"simpleblog/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return u.findOne(ctx, "username = ?", username)
}

// FindByPassword returns any user holding exactly this password.
func (u *DefaultUserRepository) FindByPassword(ctx context.Context, password string) (*entity.User, error) {
	return u.findOne(ctx, "password = ?", password)
}

func (u *DefaultUserRepository) Create(ctx context.Context, user *entity.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *DefaultUserRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var user entity.User
	err := u.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}
