package models

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleDeveloper Role = "developer"
	RoleClient    Role = "client"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleClient, RoleAdmin:
		return true
	}
	return false
}

// Profile holds the free-form part of a user record. Persisted as one jsonb
// document, so new fields do not need a migration.
type Profile struct {
	FirstName   string            `json:"first_name,omitempty"`
	LastName    string            `json:"last_name,omitempty"`
	Avatar      string            `json:"avatar,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	Experience  string            `json:"experience,omitempty"`
	Portfolio   []map[string]any  `json:"portfolio,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

type Reputation struct {
	Rating              float64 `json:"rating"`
	TotalRatings        int     `json:"total_ratings"`
	CompletedChallenges int     `json:"completed_challenges"`
}

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Profile      Profile    `json:"profile"`
	Reputation   Reputation `json:"reputation"`
	IsVerified   bool       `json:"is_verified"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) Validate() error {
	if len(strings.TrimSpace(u.Name)) < 2 { return errors.New("name too short") }
	if !strings.Contains(u.Email, "@") { return errors.New("invalid email") }
	if u.Role == "" { u.Role = RoleDeveloper }
	if !u.Role.Valid() { return errors.New("unknown role") }
	return nil
}
