package userrepo

import (
	"context"
	"errors"

	"retailops/internal/core/domain/model/user"
	"retailops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository. The gorm session must
// be opened with TranslateError so duplicates surface as gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", user.ErrUsernameTaken)
		}
		return errs.NewPersistenceError("add user", err)
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, username string) (*user.User, error) {
	name := user.NormalizeUsername(username)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", name)
		}
		return nil, errs.NewPersistenceError("get user", err)
	}

	return toDomain(dto)
}

func (r *GormUserRepository) Delete(ctx context.Context, username string) error {
	name := user.NormalizeUsername(username)

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "username = ?", name)
	if result.Error != nil {
		return errs.NewPersistenceError("delete user", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("username", name)
	}
	return nil
}

func (r *GormUserRepository) List(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("username").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list users", err)
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Count(&n).Error; err != nil {
		return 0, errs.NewPersistenceError("count users", err)
	}
	return int(n), nil
}
