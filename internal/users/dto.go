package users

import (
	"github.com/google/uuid"

	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

// CreateUserDTO holds creation-time data for a new user.
type CreateUserDTO struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	TenantID     uuid.UUID
}

// ToModel prepares the GORM model from the creation DTO, supplying defaults.
func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = models.RoleAdmin
	}
	return &models.User{
		Email:        c.Email,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		PasswordHash: c.PasswordHash,
		Role:         role,
		TenantID:     c.TenantID,
	}
}
