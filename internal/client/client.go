// Package client is the typed HTTP client for the ChallengeHub API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken sets the bearer token sent on authenticated requests.
func (c *Client) SetToken(token string) { c.token = token }

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Status       string `json:"status"`
	User         struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prize       int64     `json:"prize"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// APIError carries the server's error message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) ListChallenges(ctx context.Context) ([]Challenge, error) {
	var out []Challenge
	err := c.do(ctx, http.MethodGet, "/challenges", nil, &out)
	return out, err
}

func (c *Client) GetChallenge(ctx context.Context, id string) (Challenge, error) {
	var out Challenge
	err := c.do(ctx, http.MethodGet, "/challenges/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateChallenge(ctx context.Context, title, description string, prize int64) (Challenge, error) {
	if c.token == "" {
		return Challenge{}, errors.New("not logged in")
	}
	var out Challenge
	err := c.do(ctx, http.MethodPost, "/challenges", map[string]any{
		"title":       title,
		"description": description,
		"prize":       prize,
	}, &out)
	return out, err
}
