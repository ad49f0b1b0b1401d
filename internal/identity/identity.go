// Package identity is the admin client for the managed identity service.
// The browser-side access policy does not allow these operations, which is
// why the proxy performs them with the service key.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Client struct {
	client *resty.Client
	log    *zap.Logger
}

func New(baseURL, serviceKey string, log *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/auth/v1").
		SetTimeout(10 * time.Second).
		SetHeader("apikey", serviceKey).
		SetAuthToken(serviceKey).
		SetHeader("Content-Type", "application/json")

	return &Client{client: client, log: log}
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*User, error) {
	var user User
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
		}).
		SetResult(&user).
		Post("/admin/users")
	if err != nil {
		return nil, fmt.Errorf("create identity user: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create identity user: service responded %d: %s", resp.StatusCode(), resp.String())
	}

	c.log.Info("identity user created", zap.String("user_id", user.ID))
	return &user, nil
}

// UpdateUser changes email and/or password on the identity record. Empty
// fields are left untouched.
func (c *Client) UpdateUser(ctx context.Context, id, email, password string) error {
	body := map[string]any{}
	if email != "" {
		body["email"] = email
	}
	if password != "" {
		body["password"] = password
	}
	if len(body) == 0 {
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Put("/admin/users/" + id)
	if err != nil {
		return fmt.Errorf("update identity user: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("update identity user: service responded %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/admin/users/" + id)
	if err != nil {
		return fmt.Errorf("delete identity user: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete identity user: service responded %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
