package repository

import (
	"errors"

	"github.com/challengehub/challengehub-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Users interface {
	// Create persists a new user; the hash must already be computed.
	Create(u models.User, passwordHash string) (models.User, error)
	// GetByEmail includes the password hash; for credential checks only.
	GetByEmail(email string) (models.User, error)
	GetByID(id string) (models.User, error)
	List() ([]models.User, error)
	UpdateProfile(id string, p models.Profile) (models.User, error)
	UpdatePassword(id, passwordHash string) error
	TouchLastLogin(id string) error
}

type Challenges interface {
	Create(c models.Challenge) (models.Challenge, error)
	GetByID(id string) (models.Challenge, error)
	List() ([]models.Challenge, error)
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
