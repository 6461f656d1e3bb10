package backend

import (
	"context"
	"fmt"
)

// DirectionMembersClient performs CRUD against /directionMembers.
type DirectionMembersClient struct {
	gw *Gateway
}

func NewDirectionMembersClient(gw *Gateway) *DirectionMembersClient {
	return &DirectionMembersClient{gw: gw}
}

func (c *DirectionMembersClient) List(ctx context.Context) ([]DirectionMember, error) {
	var out []DirectionMember
	if err := c.gw.GetJSON(ctx, "/directionMembers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DirectionMembersClient) Create(ctx context.Context, draft DirectionMember) (DirectionMember, error) {
	var out DirectionMember
	err := c.gw.PostJSON(ctx, "/directionMembers", draft, &out)
	return out, err
}

func (c *DirectionMembersClient) Update(ctx context.Context, member DirectionMember) (DirectionMember, error) {
	var out DirectionMember
	err := c.gw.PutJSON(ctx, fmt.Sprintf("/directionMembers/%d", member.ID), member, &out)
	return out, err
}

func (c *DirectionMembersClient) Remove(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/directionMembers/%d", id))
}

// TeamDirectionsClient manages the team <-> direction member join rows at
// /direct. Rows have no surrogate id; the composite key appears in the path.
type TeamDirectionsClient struct {
	gw *Gateway
}

func NewTeamDirectionsClient(gw *Gateway) *TeamDirectionsClient {
	return &TeamDirectionsClient{gw: gw}
}

func (c *TeamDirectionsClient) List(ctx context.Context) ([]TeamDirection, error) {
	var out []TeamDirection
	if err := c.gw.GetJSON(ctx, "/direct", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TeamDirectionsClient) Create(ctx context.Context, draft TeamDirection) (TeamDirection, error) {
	var out TeamDirection
	err := c.gw.PostJSON(ctx, "/direct", draft, &out)
	return out, err
}

func (c *TeamDirectionsClient) Remove(ctx context.Context, key TeamDirectionKey) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/direct/%d/%d", key.TeamID, key.DirectionMemberID))
}
