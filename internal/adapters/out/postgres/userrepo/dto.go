// Package userrepo stores operator accounts.
package userrepo

import (
	"time"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/user"
)

type UserDTO struct {
	Username     string    `gorm:"primaryKey"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(dto.Username, dto.PasswordHash, role)
}
