package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tcherry92/gameday-channels/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error) {
	args := db.Called(ctx, guildID)

	var s *model.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Schedule)
	}

	return s, args.Error(1)
}

func (db *DB) SaveSchedule(ctx context.Context, guildID string, s *model.Schedule) error {
	args := db.Called(ctx, guildID, s)
	return args.Error(0)
}

func (db *DB) GetFans(ctx context.Context, guildID string) (*model.FanRegistry, error) {
	args := db.Called(ctx, guildID)

	var r *model.FanRegistry
	if args.Get(0) != nil {
		r = args.Get(0).(*model.FanRegistry)
	}

	return r, args.Error(1)
}

func (db *DB) SaveFans(ctx context.Context, guildID string, r *model.FanRegistry) error {
	args := db.Called(ctx, guildID, r)
	return args.Error(0)
}

func (db *DB) GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	args := db.Called(ctx, guildID)

	var c *model.GuildConfig
	if args.Get(0) != nil {
		c = args.Get(0).(*model.GuildConfig)
	}

	return c, args.Error(1)
}

func (db *DB) SaveConfig(ctx context.Context, guildID string, c *model.GuildConfig) error {
	args := db.Called(ctx, guildID, c)
	return args.Error(0)
}

func (db *DB) Close() error {
	args := db.Called()
	return args.Error(0)
}
