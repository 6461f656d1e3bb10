package backend

import (
	"context"
	"fmt"
)

// PlayersClient performs CRUD against /players. Player ids are external
// identity numbers supplied by the administrator, not assigned upstream.
type PlayersClient struct {
	gw *Gateway
}

func NewPlayersClient(gw *Gateway) *PlayersClient {
	return &PlayersClient{gw: gw}
}

func (c *PlayersClient) List(ctx context.Context) ([]Player, error) {
	var out []Player
	if err := c.gw.GetJSON(ctx, "/players", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PlayersClient) Get(ctx context.Context, id int) (Player, error) {
	var out Player
	err := c.gw.GetJSON(ctx, fmt.Sprintf("/players/%d", id), &out)
	return out, err
}

func (c *PlayersClient) Create(ctx context.Context, draft Player) (Player, error) {
	var out Player
	err := c.gw.PostJSON(ctx, "/players", draft, &out)
	return out, err
}

func (c *PlayersClient) Update(ctx context.Context, player Player) (Player, error) {
	var out Player
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/players/%d", player.ID), player, &out)
	return out, err
}

func (c *PlayersClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/players/%d", id))
}

// PitchersClient performs CRUD against /pitchers, keyed by player id.
type PitchersClient struct {
	gw *Gateway
}

func NewPitchersClient(gw *Gateway) *PitchersClient {
	return &PitchersClient{gw: gw}
}

func (c *PitchersClient) List(ctx context.Context) ([]Pitcher, error) {
	var out []Pitcher
	if err := c.gw.GetJSON(ctx, "/pitchers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PitchersClient) Create(ctx context.Context, draft Pitcher) (Pitcher, error) {
	var out Pitcher
	err := c.gw.PostJSON(ctx, "/pitchers", draft, &out)
	return out, err
}

func (c *PitchersClient) Update(ctx context.Context, pitcher Pitcher) (Pitcher, error) {
	var out Pitcher
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/pitchers/%d", pitcher.PlayerID), pitcher, &out)
	return out, err
}

func (c *PitchersClient) Remove(ctx context.Context, playerID int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/pitchers/%d", playerID))
}
