package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tcherry92/gameday-channels/controller"
	"github.com/tcherry92/gameday-channels/model"
)

type C struct {
	mock.Mock
}

func (c *C) AddMatch(ctx context.Context, guildID string, week int, home, away string) (model.Matchup, bool, error) {
	args := c.Called(ctx, guildID, week, home, away)
	return args.Get(0).(model.Matchup), args.Bool(1), args.Error(2)
}

func (c *C) SetManualSource(ctx context.Context, guildID string) error {
	args := c.Called(ctx, guildID)
	return args.Error(0)
}

func (c *C) PreloadSeason(ctx context.Context, guildID string) (*controller.SeasonSummary, error) {
	args := c.Called(ctx, guildID)

	var s *controller.SeasonSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*controller.SeasonSummary)
	}

	return s, args.Error(1)
}

func (c *C) ImportSchedule(ctx context.Context, guildID, text string) (*controller.ImportResult, error) {
	args := c.Called(ctx, guildID, text)

	var r *controller.ImportResult
	if args.Get(0) != nil {
		r = args.Get(0).(*controller.ImportResult)
	}

	return r, args.Error(1)
}

func (c *C) GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error) {
	args := c.Called(ctx, guildID)

	var s *model.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Schedule)
	}

	return s, args.Error(1)
}

func (c *C) WeekSummary(ctx context.Context, guildID string, week int) (*controller.WeekInfo, error) {
	args := c.Called(ctx, guildID, week)

	var info *controller.WeekInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*controller.WeekInfo)
	}

	return info, args.Error(1)
}

func (c *C) AssignFan(ctx context.Context, guildID, team, userID string) (string, error) {
	args := c.Called(ctx, guildID, team, userID)
	return args.String(0), args.Error(1)
}

func (c *C) UnassignFan(ctx context.Context, guildID, team, userID string) (string, bool, error) {
	args := c.Called(ctx, guildID, team, userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (c *C) ListFans(ctx context.Context, guildID, team string) (string, []string, error) {
	args := c.Called(ctx, guildID, team)

	var fans []string
	if args.Get(1) != nil {
		fans = args.Get(1).([]string)
	}

	return args.String(0), fans, args.Error(2)
}

func (c *C) ListAllFans(ctx context.Context, guildID string) (map[string][]string, error) {
	args := c.Called(ctx, guildID)

	var all map[string][]string
	if args.Get(0) != nil {
		all = args.Get(0).(map[string][]string)
	}

	return all, args.Error(1)
}

func (c *C) GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	args := c.Called(ctx, guildID)

	var cfg *model.GuildConfig
	if args.Get(0) != nil {
		cfg = args.Get(0).(*model.GuildConfig)
	}

	return cfg, args.Error(1)
}

func (c *C) SetCategoryPrefix(ctx context.Context, guildID, prefix string) (string, error) {
	args := c.Called(ctx, guildID, prefix)
	return args.String(0), args.Error(1)
}

func (c *C) MaterializeWeek(ctx context.Context, guildID string, week int, roleID string, cm controller.ChannelManager) (*controller.WeekResult, error) {
	args := c.Called(ctx, guildID, week, roleID, cm)

	var res *controller.WeekResult
	if args.Get(0) != nil {
		res = args.Get(0).(*controller.WeekResult)
	}

	return res, args.Error(1)
}

func (c *C) CleanupWeek(ctx context.Context, guildID string, week int, cm controller.ChannelManager) (string, error) {
	args := c.Called(ctx, guildID, week, cm)
	return args.String(0), args.Error(1)
}

func (c *C) PurgeWeeks(ctx context.Context, guildID string, cm controller.ChannelManager) (*controller.PurgeResult, error) {
	args := c.Called(ctx, guildID, cm)

	var res *controller.PurgeResult
	if args.Get(0) != nil {
		res = args.Get(0).(*controller.PurgeResult)
	}

	return res, args.Error(1)
}

func (c *C) PingFans(ctx context.Context, guildID string, week int, cm controller.ChannelManager) (*controller.PingResult, error) {
	args := c.Called(ctx, guildID, week, cm)

	var res *controller.PingResult
	if args.Get(0) != nil {
		res = args.Get(0).(*controller.PingResult)
	}

	return res, args.Error(1)
}
