package backend

import (
	"context"
	"fmt"
)

// GamesClient performs CRUD against /games.
type GamesClient struct {
	gw *Gateway
}

func NewGamesClient(gw *Gateway) *GamesClient {
	return &GamesClient{gw: gw}
}

func (c *GamesClient) List(ctx context.Context) ([]Game, error) {
	var out []Game
	if err := c.gw.GetJSON(ctx, "/games", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GamesClient) Get(ctx context.Context, id int) (Game, error) {
	var out Game
	err := c.gw.GetJSON(ctx, fmt.Sprintf("/games/%d", id), &out)
	return out, err
}

func (c *GamesClient) Create(ctx context.Context, draft Game) (Game, error) {
	var out Game
	err := c.gw.PostJSON(ctx, "/games", draft, &out)
	return out, err
}

func (c *GamesClient) Update(ctx context.Context, game Game) (Game, error) {
	var out Game
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/games/%d", game.ID), game, &out)
	return out, err
}

func (c *GamesClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/games/%d", id))
}

// SubstitutionsClient performs CRUD against /substitutions.
type SubstitutionsClient struct {
	gw *Gateway
}

func NewSubstitutionsClient(gw *Gateway) *SubstitutionsClient {
	return &SubstitutionsClient{gw: gw}
}

func (c *SubstitutionsClient) List(ctx context.Context) ([]Substitution, error) {
	var out []Substitution
	if err := c.gw.GetJSON(ctx, "/substitutions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SubstitutionsClient) Create(ctx context.Context, draft Substitution) (Substitution, error) {
	var out Substitution
	err := c.gw.PostJSON(ctx, "/substitutions", draft, &out)
	return out, err
}

func (c *SubstitutionsClient) Update(ctx context.Context, sub Substitution) (Substitution, error) {
	var out Substitution
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/substitutions/%d", sub.ID), sub, &out)
	return out, err
}

func (c *SubstitutionsClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/substitutions/%d", id))
}
