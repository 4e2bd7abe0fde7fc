package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshnest/bookingadmin/internal/entity"
)

type loginRequest struct {
	Password string `json:"password"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// Login submits a candidate password. A rejected credential and a
// transport failure are indistinguishable to callers.
func (c *Client) Login(ctx context.Context, password string) LoginResult {
	var result LoginResult
	if !c.do(ctx, http.MethodPost, "/auth/login", &loginRequest{Password: password}, &result) {
		return LoginResult{}
	}
	return result
}

func (c *Client) GetPasswords(ctx context.Context) []entity.AdminPassword {
	var passwords []entity.AdminPassword
	if !c.do(ctx, http.MethodGet, "/auth/passwords", nil, &passwords) {
		return []entity.AdminPassword{}
	}
	return passwords
}

func (c *Client) AddPassword(ctx context.Context, password string) *entity.AdminPassword {
	var created entity.AdminPassword
	if !c.do(ctx, http.MethodPost, "/auth/passwords", &passwordRequest{Password: password}, &created) {
		return nil
	}
	return &created
}

func (c *Client) DeletePassword(ctx context.Context, id int64) bool {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/auth/passwords/%d", id), nil, nil)
}
