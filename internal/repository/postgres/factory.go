package postgres

import (
	repo "github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users      repo.Users
	Challenges repo.Challenges
	AuditLogs  repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:      &usersRepo{pool},
		Challenges: &challengesRepo{pool},
		AuditLogs:  &auditLogsRepo{pool},
	}
}
