package backend

import (
	"context"
	"fmt"
)

// SeasonsClient performs CRUD against /seasons.
type SeasonsClient struct {
	gw *Gateway
}

func NewSeasonsClient(gw *Gateway) *SeasonsClient {
	return &SeasonsClient{gw: gw}
}

func (c *SeasonsClient) List(ctx context.Context) ([]Season, error) {
	var out []Season
	if err := c.gw.GetJSON(ctx, "/seasons", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SeasonsClient) Create(ctx context.Context, draft Season) (Season, error) {
	var out Season
	err := c.gw.PostJSON(ctx, "/seasons", draft, &out)
	return out, err
}

func (c *SeasonsClient) Update(ctx context.Context, season Season) (Season, error) {
	var out Season
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/seasons/%d", season.ID), season, &out)
	return out, err
}

func (c *SeasonsClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/seasons/%d", id))
}
