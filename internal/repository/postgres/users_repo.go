// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"
	"errors"

	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userCols = `id, name, email, password_hash, role, profile, reputation, is_verified, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Profile, &u.Reputation, &u.IsVerified, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) Create(u models.User, hash string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO users(id, name, email, password_hash, role, profile, reputation)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		id, u.Name, u.Email, hash, u.Role, u.Profile, u.Reputation,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, repository.ErrEmailTaken
		}
		return models.User{}, err
	}
	return r.GetByID(id)
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) List() ([]models.User, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+userCols+` FROM users ORDER BY created_at DESC LIMIT 100`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) UpdateProfile(id string, p models.Profile) (models.User, error) {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET profile=$2, updated_at=now() WHERE id=$1`, id, p)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

func (r *usersRepo) UpdatePassword(id, hash string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, id, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *usersRepo) TouchLastLogin(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET last_login=now() WHERE id=$1`, id)
	return err
}
