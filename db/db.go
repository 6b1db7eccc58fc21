package db

import (
	"context"
	"errors"

	"github.com/tcherry92/gameday-channels/model"
)

var (
	// ErrNotFound means no record exists for the guild.
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt means a record exists but does not decode to a valid
	// shape. Callers treat it like ErrNotFound after logging.
	ErrCorrupt = errors.New("record is corrupt")
)

// DB stores one durable record per guild per concern. Reads return either a
// valid record or ErrNotFound/ErrCorrupt, never a partial one.
type DB interface {
	GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error)
	SaveSchedule(ctx context.Context, guildID string, s *model.Schedule) error

	GetFans(ctx context.Context, guildID string) (*model.FanRegistry, error)
	SaveFans(ctx context.Context, guildID string, r *model.FanRegistry) error

	GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error)
	SaveConfig(ctx context.Context, guildID string, c *model.GuildConfig) error

	Close() error
}
