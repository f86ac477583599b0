package services

import (
	"github.com/challengehub/challengehub-backend/internal/metrics"
	"github.com/challengehub/challengehub-backend/internal/models"
	repo "github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/worker"
)

type ChallengeService struct {
	challenges repo.Challenges
	logs       repo.AuditLogs
	wp         *worker.Pool
}

func NewChallengeService(challenges repo.Challenges, logs repo.AuditLogs, wp *worker.Pool) *ChallengeService {
	return &ChallengeService{challenges: challenges, logs: logs, wp: wp}
}

func (s *ChallengeService) Create(title, description string, prize int64, createdBy string) (models.Challenge, error) {
	c := models.Challenge{
		Title:       title,
		Description: description,
		Prize:       prize,
		CreatedBy:   createdBy,
	}
	if err := c.Validate(); err != nil {
		return models.Challenge{}, err
	}
	c, err := s.challenges.Create(c)
	if err != nil {
		return models.Challenge{}, err
	}
	metrics.ChallengesCreated.Inc()

	id := c.ID
	s.wp.Submit(func() {
		var det = map[string]any{"title": c.Title, "created_by": c.CreatedBy}
		_ = s.logs.Create(models.AuditLog{
			EntityType: "challenge",
			EntityID:   &id,
			Action:     "created",
			Details:    det,
		})
	})
	return c, nil
}

func (s *ChallengeService) List() ([]models.Challenge, error) { return s.challenges.List() }

func (s *ChallengeService) GetByID(id string) (models.Challenge, error) {
	return s.challenges.GetByID(id)
}
