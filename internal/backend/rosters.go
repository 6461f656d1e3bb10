package backend

import (
	"context"
	"fmt"
	"net/url"
)

// PlayerInSeriesClient manages season/serie roster enrollment rows. Updates
// and deletes address the composite key as path segments, e.g.
// /playerInSeries/{playerId}/{seasonId}/{serieId}.
type PlayerInSeriesClient struct {
	gw *Gateway
}

func NewPlayerInSeriesClient(gw *Gateway) *PlayerInSeriesClient {
	return &PlayerInSeriesClient{gw: gw}
}

func (c *PlayerInSeriesClient) List(ctx context.Context) ([]PlayerInSeries, error) {
	var out []PlayerInSeries
	if err := c.gw.GetJSON(ctx, "/playerInSeries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PlayerInSeriesClient) Create(ctx context.Context, draft PlayerInSeries) (PlayerInSeries, error) {
	var out PlayerInSeries
	err := c.gw.PostJSON(ctx, "/playerInSeries", draft, &out)
	return out, err
}

func (c *PlayerInSeriesClient) Update(ctx context.Context, row PlayerInSeries) (PlayerInSeries, error) {
	var out PlayerInSeries
	path := fmt.Sprintf("/playerInSeries/%d/%d/%d", row.PlayerID, row.SeasonID, row.SerieID)
	err := c.gw.PutJSON(ctx, path, row, &out)
	return out, err
}

func (c *PlayerInSeriesClient) Remove(ctx context.Context, key PlayerSeriesKey) error {
	path := fmt.Sprintf("/playerInSeries/%d/%d/%d", key.PlayerID, key.SeasonID, key.SerieID)
	return c.gw.Delete(ctx, path)
}

// PlayerInPositionsClient manages fielding position assignments.
type PlayerInPositionsClient struct {
	gw *Gateway
}

func NewPlayerInPositionsClient(gw *Gateway) *PlayerInPositionsClient {
	return &PlayerInPositionsClient{gw: gw}
}

func (c *PlayerInPositionsClient) List(ctx context.Context) ([]PlayerInPosition, error) {
	var out []PlayerInPosition
	if err := c.gw.GetJSON(ctx, "/playerInPosition", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PlayerInPositionsClient) Create(ctx context.Context, draft PlayerInPosition) (PlayerInPosition, error) {
	var out PlayerInPosition
	err := c.gw.PostJSON(ctx, "/playerInPosition", draft, &out)
	return out, err
}

func (c *PlayerInPositionsClient) Update(ctx context.Context, row PlayerInPosition) (PlayerInPosition, error) {
	var out PlayerInPosition
	path := fmt.Sprintf("/playerInPosition/%d/%s", row.Player.ID, url.PathEscape(row.Position))
	err := c.gw.PutJSON(ctx, path, row, &out)
	return out, err
}

func (c *PlayerInPositionsClient) Remove(ctx context.Context, key PlayerPositionKey) error {
	path := fmt.Sprintf("/playerInPosition/%d/%s", key.PlayerID, url.PathEscape(key.Position))
	return c.gw.Delete(ctx, path)
}

// StarPlayersClient manages standout-player designations per season/serie.
type StarPlayersClient struct {
	gw *Gateway
}

func NewStarPlayersClient(gw *Gateway) *StarPlayersClient {
	return &StarPlayersClient{gw: gw}
}

func (c *StarPlayersClient) List(ctx context.Context) ([]StarPlayerInPosition, error) {
	var out []StarPlayerInPosition
	if err := c.gw.GetJSON(ctx, "/starPlayerInPosition", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StarPlayersClient) Create(ctx context.Context, draft StarPlayerInPosition) (StarPlayerInPosition, error) {
	var out StarPlayerInPosition
	err := c.gw.PostJSON(ctx, "/starPlayerInPosition", draft, &out)
	return out, err
}

func (c *StarPlayersClient) Remove(ctx context.Context, key StarPlayerKey) error {
	path := fmt.Sprintf("/starPlayerInPosition/%d/%d/%d/%s",
		key.IDSerie, key.IDSeason, key.IDPlayer, url.PathEscape(key.Position))
	return c.gw.Delete(ctx, path)
}
