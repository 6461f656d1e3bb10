package backend

import (
	"context"
	"fmt"
)

// TeamsClient performs CRUD against /teams.
type TeamsClient struct {
	gw *Gateway
}

func NewTeamsClient(gw *Gateway) *TeamsClient {
	return &TeamsClient{gw: gw}
}

func (c *TeamsClient) List(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := c.gw.GetJSON(ctx, "/teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TeamsClient) Create(ctx context.Context, draft Team) (Team, error) {
	var out Team
	err := c.gw.PostJSON(ctx, "/teams", draft, &out)
	return out, err
}

func (c *TeamsClient) Update(ctx context.Context, team Team) (Team, error) {
	var out Team
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/teams/%d", team.ID), team, &out)
	return out, err
}

func (c *TeamsClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/teams/%d", id))
}
