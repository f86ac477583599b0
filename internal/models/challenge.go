package models

import (
	"errors"
	"strings"
	"time"
)

type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prize       int64     `json:"prize"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Challenge) Validate() error {
	if strings.TrimSpace(c.Title) == "" { return errors.New("title required") }
	if strings.TrimSpace(c.Description) == "" { return errors.New("description required") }
	if c.CreatedBy == "" { return errors.New("creator required") }
	// TODO: no prize sign/range policy yet; zero and negative prizes pass through
	return nil
}
