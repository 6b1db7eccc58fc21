package controller

import (
	"context"
	"fmt"

	"github.com/tcherry92/gameday-channels/model"
)

// AddMatch resolves both team names, normalizes the week, and appends the
// matchup unless the week already holds the same (home, away) pair. The
// returned bool reports whether anything was actually added, so repeated
// calls with identical input are no-ops after the first.
func (c *controller) AddMatch(ctx context.Context, guildID string, week int, home, away string) (model.Matchup, bool, error) {
	if week <= 0 {
		return model.Matchup{}, false, ErrBadWeek
	}

	homeName, _ := model.ResolveTeam(home)
	awayName, _ := model.ResolveTeam(away)
	if homeName == "" || awayName == "" {
		return model.Matchup{}, false, fmt.Errorf("home and away teams must be provided")
	}

	m := model.Matchup{Home: homeName, Away: awayName}
	wk := model.WeekKey(week)

	var added bool
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		added = gs.schedule.AddMatch(wk, m)
		if added {
			c.saveSchedule(ctx, guildID, gs)
		}
		return nil
	})
	return m, added, err
}

// SetManualSource switches the guild to a manually maintained schedule. All
// weeks are cleared: the manual schedule starts from zero rather than being
// merged with stale preloaded data.
func (c *controller) SetManualSource(ctx context.Context, guildID string) error {
	return c.withGuild(ctx, guildID, func(gs *guildState) error {
		gs.schedule.Source = model.SourceManual
		gs.schedule.Weeks = make(map[string][]model.Matchup)
		gs.schedule.NoticeChannels = nil
		c.saveSchedule(ctx, guildID, gs)
		return nil
	})
}

// GetSchedule returns a copy of the guild's cached schedule for read-only
// surfaces like the status server.
func (c *controller) GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error) {
	var out *model.Schedule
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		out = gs.schedule.Clone()
		return nil
	})
	return out, err
}

// WeekInfo is the debug view of a single week.
type WeekInfo struct {
	Week         string
	Games        []model.Matchup
	WeeksPresent []string
}

func (c *controller) WeekSummary(ctx context.Context, guildID string, week int) (*WeekInfo, error) {
	if week <= 0 {
		return nil, ErrBadWeek
	}

	wk := model.WeekKey(week)
	info := &WeekInfo{Week: wk}
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		info.Games = append([]model.Matchup(nil), gs.schedule.Games(wk)...)
		info.WeeksPresent = gs.schedule.WeekKeys()
		return nil
	})
	return info, err
}
