// Package userrepo provides data transfer objects and mapping functions for
// user persistence. The lifecycle core reads users to gate operations by role
// and to resolve display names; Add exists for provisioning and fixtures.
package userrepo

import (
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Email  string `gorm:"uniqueIndex"`
	Role   int
	Active bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Role:   int(aggregate.Role()),
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, user.Role(dto.Role), dto.Active)
}
