package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Guild reads member roles in one guild.
type Guild struct {
	client  *Client
	guildID string
}

// Guild returns a view of the guild with the given ID.
func (c *Client) Guild(guildID string) *Guild {
	return &Guild{client: c, guildID: guildID}
}

type guildMember struct {
	Roles []string `json:"roles"`
}

type guildRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MemberRoles returns the names of a member's roles, in the order Discord
// lists them on the member.
func (g *Guild) MemberRoles(ctx context.Context, userID string) ([]string, error) {
	var member guildMember
	if err := g.getJSON(ctx, fmt.Sprintf("/guilds/%s/members/%s", g.guildID, userID), &member); err != nil {
		return nil, fmt.Errorf("fetching guild member: %w", err)
	}

	var roles []guildRole
	if err := g.getJSON(ctx, fmt.Sprintf("/guilds/%s/roles", g.guildID), &roles); err != nil {
		return nil, fmt.Errorf("fetching guild roles: %w", err)
	}

	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Name
	}

	out := make([]string, 0, len(member.Roles))
	for _, id := range member.Roles {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

func (g *Guild) getJSON(ctx context.Context, path string, v any) error {
	resp, err := g.client.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
