package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/challengehub/challengehub-backend/internal/auth"
	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/worker"
)

func newUserService(users *fakeUsers, logs *fakeAuditLogs, wp *worker.Pool) *UserService {
	tm := auth.NewTokenManager("acc", "ref", "test", 15*time.Minute, time.Hour)
	return NewUserService(users, logs, tm, wp)
}

func TestRegister_HashesPassword(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	u, err := svc.Register("Ada", "Ada@Example.COM", "secret123", "")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email)
	require.Equal(t, models.RoleDeveloper, u.Role)

	stored, err := users.GetByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.PasswordHash)
	require.NoError(t, auth.VerifyPassword("secret123", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	first, err := svc.Register("Ada", "ada@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "ada@example.com", "different1", "")
	require.ErrorIs(t, err, repository.ErrEmailTaken)

	// first user unaffected
	stored, err := users.GetByID(first.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", stored.Name)
	require.NoError(t, auth.VerifyPassword("secret123", stored.PasswordHash))
}

func TestRegister_ShortPassword(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := newUserService(newFakeUsers(), &fakeAuditLogs{}, wp)

	_, err := svc.Register("Ada", "ada@example.com", "four", "")
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUsers()
	logs := &fakeAuditLogs{}
	wp := worker.NewPool(1)
	svc := newUserService(users, logs, wp)

	u, err := svc.Register("Ada", "ada@example.com", "secret123", models.RoleClient)
	require.NoError(t, err)

	res, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.NotEmpty(t, res.RefreshToken)
	require.Equal(t, models.RoleClient, res.User.Role)
	require.Equal(t, u.ID, res.User.ID)

	// drain the pool, then check the async bookkeeping ran
	wp.Stop()
	require.Contains(t, users.touched, u.ID)
	require.Contains(t, logs.actions(), "login")
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	_, err := svc.Register("Ada", "ada@example.com", "secret123", "")
	require.NoError(t, err)

	_, errWrongPw := svc.Login("ada@example.com", "wrong-password")
	_, errNoUser := svc.Login("ghost@example.com", "secret123")

	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	require.Equal(t, errWrongPw, errNoUser)
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	u, err := svc.Register("Ada", "ada@example.com", "secret123", "")
	require.NoError(t, err)

	res, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	wp.Stop()

	claims, isRefresh, err := svc.tm.ParseAny(res.Token)
	require.NoError(t, err)
	require.False(t, isRefresh)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, string(u.Role), claims.Role)
}

func TestRefresh(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	_, err := svc.Register("Ada", "ada@example.com", "secret123", "")
	require.NoError(t, err)
	res, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	wp.Stop()

	renewed, err := svc.Refresh(res.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, renewed.Token)

	// an access token is not a refresh token
	_, err = svc.Refresh(res.Token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	users := newFakeUsers()
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := newUserService(users, &fakeAuditLogs{}, wp)

	u, err := svc.Register("Ada", "ada@example.com", "secret123", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(u.ID, "wrong", "newsecret1"), ErrInvalidCredentials)
	require.ErrorIs(t, svc.ChangePassword(u.ID, "secret123", "tiny"), ErrPasswordTooShort)

	require.NoError(t, svc.ChangePassword(u.ID, "secret123", "newsecret1"))
	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	require.NotEqual(t, "newsecret1", stored.PasswordHash)
	require.NoError(t, auth.VerifyPassword("newsecret1", stored.PasswordHash))
	require.Error(t, auth.VerifyPassword("secret123", stored.PasswordHash))
}
