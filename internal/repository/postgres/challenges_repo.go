package postgres

import (
	"context"
	"errors"

	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type challengesRepo struct{ pool *pgxpool.Pool }

func NewChallenges(pool *pgxpool.Pool) repository.Challenges {
	return &challengesRepo{pool: pool}
}

func (r *challengesRepo) Create(c models.Challenge) (models.Challenge, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO challenges(id, title, description, prize, created_by)
		 VALUES($1,$2,$3,$4,$5)`,
		id, c.Title, c.Description, c.Prize, c.CreatedBy,
	)
	if err != nil {
		return models.Challenge{}, err
	}
	return r.GetByID(id)
}

func (r *challengesRepo) GetByID(id string) (models.Challenge, error) {
	var c models.Challenge
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, title, description, prize, created_by, created_at, updated_at
		   FROM challenges WHERE id=$1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Prize, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Challenge{}, repository.ErrNotFound
	}
	return c, err
}

func (r *challengesRepo) List() ([]models.Challenge, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, title, description, prize, created_by, created_at, updated_at
		   FROM challenges ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Challenge
	for rows.Next() {
		var c models.Challenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Prize, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
