package backend

import (
	"context"
	"fmt"
	"net/url"
)

// UsersClient manages dashboard accounts and performs credential checks.
type UsersClient struct {
	gw *Gateway
}

func NewUsersClient(gw *Gateway) *UsersClient {
	return &UsersClient{gw: gw}
}

// Login exchanges credentials for a bearer token and the account role.
func (c *UsersClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	err := c.gw.PostJSON(ctx, "/auth/login", User{Username: username, Password: password}, &out)
	return out, err
}

func (c *UsersClient) List(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.gw.GetJSON(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UsersClient) Create(ctx context.Context, draft User) (User, error) {
	var out User
	err := c.gw.PostJSON(ctx, "/users", draft, &out)
	return out, err
}

func (c *UsersClient) Update(ctx context.Context, user User) (User, error) {
	var out User
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/users/%s", url.PathEscape(user.Username)), user, &out)
	return out, err
}

func (c *UsersClient) Remove(ctx context.Context, username string) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/users/%s", url.PathEscape(username)))
}
