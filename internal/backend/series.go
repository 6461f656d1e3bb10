package backend

import (
	"context"
	"fmt"
)

// SeriesClient performs CRUD against /series.
type SeriesClient struct {
	gw *Gateway
}

func NewSeriesClient(gw *Gateway) *SeriesClient {
	return &SeriesClient{gw: gw}
}

func (c *SeriesClient) List(ctx context.Context) ([]Serie, error) {
	var out []Serie
	if err := c.gw.GetJSON(ctx, "/series", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SeriesClient) Create(ctx context.Context, draft Serie) (Serie, error) {
	var out Serie
	err := c.gw.PostJSON(ctx, "/series", draft, &out)
	return out, err
}

func (c *SeriesClient) Update(ctx context.Context, serie Serie) (Serie, error) {
	var out Serie
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/series/%d", serie.ID), serie, &out)
	return out, err
}

func (c *SeriesClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/series/%d", id))
}
