package backend

import (
	"context"
	"fmt"
)

// ReportsClient fetches server-rendered PDF reports. Each endpoint takes a
// single path parameter and returns a binary blob that the dashboard streams
// to the browser as a download.
type ReportsClient struct {
	gw *Gateway
}

func NewReportsClient(gw *Gateway) *ReportsClient {
	return &ReportsClient{gw: gw}
}

func (c *ReportsClient) SeasonReport(ctx context.Context, seasonID int) ([]byte, string, error) {
	return c.gw.GetBlob(ctx, fmt.Sprintf("/reports/season/%d", seasonID))
}

func (c *ReportsClient) SerieReport(ctx context.Context, serieID int) ([]byte, string, error) {
	return c.gw.GetBlob(ctx, fmt.Sprintf("/reports/serie/%d", serieID))
}

func (c *ReportsClient) GameReport(ctx context.Context, gameID int) ([]byte, string, error) {
	return c.gw.GetBlob(ctx, fmt.Sprintf("/reports/game/%d", gameID))
}

func (c *ReportsClient) TeamReport(ctx context.Context, teamID int) ([]byte, string, error) {
	return c.gw.GetBlob(ctx, fmt.Sprintf("/reports/team/%d", teamID))
}
