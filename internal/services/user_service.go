package services

import (
	"errors"
	"strings"
	"time"

	"github.com/challengehub/challengehub-backend/internal/auth"
	"github.com/challengehub/challengehub-backend/internal/metrics"
	"github.com/challengehub/challengehub-backend/internal/models"
	repo "github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/worker"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the caller cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

type UserService struct {
	users repo.Users
	logs  repo.AuditLogs
	tm    *auth.TokenManager
	wp    *worker.Pool
}

func NewUserService(users repo.Users, logs repo.AuditLogs, tm *auth.TokenManager, wp *worker.Pool) *UserService {
	return &UserService{users: users, logs: logs, tm: tm, wp: wp}
}

type LoginResult struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	User         models.User
}

// Register hashes the password at the write boundary; plaintext never
// reaches the repository.
func (s *UserService) Register(name, email, password string, role models.Role) (models.User, error) {
	u := models.User{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
		Role:  role,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if len(password) < 6 {
		return models.User{}, ErrPasswordTooShort
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(u, hash)
}

func (s *UserService) Login(email, password string) (LoginResult, error) {
	u, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}

	access, refresh, exp, err := s.tm.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		return LoginResult{}, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	// bookkeeping off the request path
	uid := u.ID
	s.wp.Submit(func() {
		_ = s.users.TouchLastLogin(uid)
		s.audit("user", uid, "login", "")
	})

	return LoginResult{Token: access, RefreshToken: refresh, ExpiresAt: exp, User: u}, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *UserService) Refresh(refreshToken string) (LoginResult, error) {
	claims, isRefresh, err := s.tm.ParseAny(refreshToken)
	if err != nil || !isRefresh {
		return LoginResult{}, auth.ErrInvalidToken
	}
	u, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return LoginResult{}, auth.ErrInvalidToken
	}
	access, refresh, exp, err := s.tm.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: access, RefreshToken: refresh, ExpiresAt: exp, User: u}, nil
}

func (s *UserService) GetByID(id string) (models.User, error) { return s.users.GetByID(id) }

func (s *UserService) List() ([]models.User, error) { return s.users.List() }

func (s *UserService) UpdateProfile(id string, p models.Profile) (models.User, error) {
	return s.users.UpdateProfile(id, p)
}

// ChangePassword verifies the current password, then re-hashes the new one
// before it is stored.
func (s *UserService) ChangePassword(id, current, next string) error {
	u, err := s.users.GetByID(id)
	if err != nil {
		return err
	}
	if err := auth.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < 6 {
		return ErrPasswordTooShort
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(id, hash)
}

func (s *UserService) audit(entityType, entityID, action, details string) {
	var det map[string]any
	if details != "" {
		det = map[string]any{"message": details}
	}
	_ = s.logs.Create(models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Details:    det,
	})
}
