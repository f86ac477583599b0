package services

import (
	"strconv"
	"sync"
	"time"

	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
)

// in-memory repository fakes

type fakeUsers struct {
	mu      sync.Mutex
	seq     int
	users   map[string]models.User // by id, hash included
	touched []string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) Create(u models.User, hash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return models.User{}, repository.ErrEmailTaken
		}
	}
	f.seq++
	u.ID = "user-" + strconv.Itoa(f.seq)
	u.PasswordHash = hash
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) List() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) UpdateProfile(id string, p models.Profile) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.Profile = p
	u.UpdatedAt = time.Now()
	f.users[id] = u
	return u, nil
}

func (f *fakeUsers) UpdatePassword(id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

func (f *fakeUsers) TouchLastLogin(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, id)
	return nil
}

type fakeChallenges struct {
	mu         sync.Mutex
	seq        int
	challenges map[string]models.Challenge
	createErr  error
}

func newFakeChallenges() *fakeChallenges {
	return &fakeChallenges{challenges: map[string]models.Challenge{}}
}

func (f *fakeChallenges) Create(c models.Challenge) (models.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.Challenge{}, f.createErr
	}
	f.seq++
	c.ID = "challenge-" + strconv.Itoa(f.seq)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.challenges[c.ID] = c
	return c, nil
}

func (f *fakeChallenges) GetByID(id string) (models.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.challenges[id]
	if !ok {
		return models.Challenge{}, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeChallenges) List() ([]models.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Challenge, 0, len(f.challenges))
	for _, c := range f.challenges {
		out = append(out, c)
	}
	return out, nil
}

type fakeAuditLogs struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (f *fakeAuditLogs) Create(l models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, l)
	return nil
}

func (f *fakeAuditLogs) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}
