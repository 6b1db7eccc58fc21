package controller

import (
	"context"

	"github.com/tcherry92/gameday-channels/model"
)

// AssignFan registers userID as a fan of the given team. Any team alias is
// accepted; the canonical name actually used is returned.
func (c *controller) AssignFan(ctx context.Context, guildID, team, userID string) (string, error) {
	name, _ := model.ResolveTeam(team)

	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		if gs.fans.Assign(name, userID) {
			c.saveFans(ctx, guildID, gs)
		}
		return nil
	})
	return name, err
}

// UnassignFan removes userID from the team and reports whether the user had
// actually been assigned, so the caller can tell the difference.
func (c *controller) UnassignFan(ctx context.Context, guildID, team, userID string) (string, bool, error) {
	name, _ := model.ResolveTeam(team)

	var wasPresent bool
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		wasPresent = gs.fans.Unassign(name, userID)
		if wasPresent {
			c.saveFans(ctx, guildID, gs)
		}
		return nil
	})
	return name, wasPresent, err
}

func (c *controller) ListFans(ctx context.Context, guildID, team string) (string, []string, error) {
	name, _ := model.ResolveTeam(team)

	var fans []string
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		fans = gs.fans.Fans(name)
		return nil
	})
	return name, fans, err
}

func (c *controller) ListAllFans(ctx context.Context, guildID string) (map[string][]string, error) {
	out := make(map[string][]string)
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		for _, team := range gs.fans.TeamNames() {
			out[team] = gs.fans.Fans(team)
		}
		return nil
	})
	return out, err
}

func (c *controller) GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	var out *model.GuildConfig
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		out = gs.config.Clone()
		return nil
	})
	return out, err
}

// SetCategoryPrefix updates the week category prefix, falling back to the
// default when the input is blank. Returns the prefix now in effect.
func (c *controller) SetCategoryPrefix(ctx context.Context, guildID, prefix string) (string, error) {
	trimmed := collapseSpace(prefix)
	if trimmed == "" {
		trimmed = model.DefaultCategoryPrefix
	}

	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		gs.config.CategoryPrefix = trimmed
		c.saveConfig(ctx, guildID, gs)
		return nil
	})
	return trimmed, err
}
