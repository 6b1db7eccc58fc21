package controller

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/itbasis/go-clock"
	"github.com/tcherry92/gameday-channels/db"
	"github.com/tcherry92/gameday-channels/model"
)

// C encapsulates the schedule/fan/config business logic without worrying
// about the Discord or web layers.
type C interface {
	// Schedule store.
	AddMatch(ctx context.Context, guildID string, week int, home, away string) (model.Matchup, bool, error)
	SetManualSource(ctx context.Context, guildID string) error
	PreloadSeason(ctx context.Context, guildID string) (*SeasonSummary, error)
	ImportSchedule(ctx context.Context, guildID, text string) (*ImportResult, error)
	GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error)
	WeekSummary(ctx context.Context, guildID string, week int) (*WeekInfo, error)

	// Fan registry. Team arguments accept any alias; the canonical team
	// name actually used is returned for user feedback.
	AssignFan(ctx context.Context, guildID, team, userID string) (string, error)
	UnassignFan(ctx context.Context, guildID, team, userID string) (string, bool, error)
	ListFans(ctx context.Context, guildID, team string) (string, []string, error)
	ListAllFans(ctx context.Context, guildID string) (map[string][]string, error)

	// Guild configuration.
	GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error)
	SetCategoryPrefix(ctx context.Context, guildID, prefix string) (string, error)

	// Channel reconciliation against the live guild state.
	MaterializeWeek(ctx context.Context, guildID string, week int, roleID string, cm ChannelManager) (*WeekResult, error)
	CleanupWeek(ctx context.Context, guildID string, week int, cm ChannelManager) (string, error)
	PurgeWeeks(ctx context.Context, guildID string, cm ChannelManager) (*PurgeResult, error)
	PingFans(ctx context.Context, guildID string, week int, cm ChannelManager) (*PingResult, error)
}

var ErrBadWeek = errors.New("week must be a positive number")

type controller struct {
	clock      clock.Clock
	db         db.DB
	seasonFile string

	mu     sync.Mutex
	guilds map[string]*guildState
}

// guildState is the cached per-guild aggregate. Its mutex is the single
// writer gate for that guild: every operation that touches the aggregate
// holds it, so two in-flight interactions cannot drop each other's updates.
type guildState struct {
	mu       sync.Mutex
	loaded   bool
	schedule *model.Schedule
	fans     *model.FanRegistry
	config   *model.GuildConfig
}

func New(clock clock.Clock, db db.DB, seasonFile string) (C, error) {
	c := &controller{
		clock:      clock,
		db:         db,
		seasonFile: seasonFile,
		guilds:     make(map[string]*guildState),
	}
	return c, nil
}

func (c *controller) guildEntry(guildID string) *guildState {
	c.mu.Lock()
	defer c.mu.Unlock()

	gs, ok := c.guilds[guildID]
	if !ok {
		gs = &guildState{}
		c.guilds[guildID] = gs
	}
	return gs
}

// withGuild runs fn with the guild's state hydrated and its lock held.
func (c *controller) withGuild(ctx context.Context, guildID string, fn func(gs *guildState) error) error {
	gs := c.guildEntry(guildID)
	gs.mu.Lock()
	defer gs.mu.Unlock()

	c.hydrate(ctx, guildID, gs)
	return fn(gs)
}

// hydrate reads the guild's records from disk on first touch. After that the
// in-memory aggregate is authoritative for the process lifetime; disk is only
// the crash-recovery source. Missing or corrupt records become fresh ones.
func (c *controller) hydrate(ctx context.Context, guildID string, gs *guildState) {
	if gs.loaded {
		return
	}

	s, err := c.db.GetSchedule(ctx, guildID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.Printf("guild %s: dropping unreadable schedule record: %v", guildID, err)
		}
		s = model.NewSchedule()
	}
	gs.schedule = s

	fans, err := c.db.GetFans(ctx, guildID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.Printf("guild %s: dropping unreadable fan registry: %v", guildID, err)
		}
		fans = model.NewFanRegistry()
	}
	gs.fans = fans

	cfg, err := c.db.GetConfig(ctx, guildID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.Printf("guild %s: dropping unreadable config record: %v", guildID, err)
		}
		cfg = model.NewGuildConfig()
	}
	gs.config = cfg

	gs.loaded = true
}

// Saves are best effort. The cache stays authoritative, so a failed write is
// logged and the command carries on.
func (c *controller) saveSchedule(ctx context.Context, guildID string, gs *guildState) {
	gs.schedule.UpdatedAt = c.clock.Now().UTC()
	if err := c.db.SaveSchedule(ctx, guildID, gs.schedule); err != nil {
		log.Printf("guild %s: error persisting schedule: %v", guildID, err)
	}
}

func (c *controller) saveFans(ctx context.Context, guildID string, gs *guildState) {
	if err := c.db.SaveFans(ctx, guildID, gs.fans); err != nil {
		log.Printf("guild %s: error persisting fan registry: %v", guildID, err)
	}
}

func (c *controller) saveConfig(ctx context.Context, guildID string, gs *guildState) {
	if err := c.db.SaveConfig(ctx, guildID, gs.config); err != nil {
		log.Printf("guild %s: error persisting config: %v", guildID, err)
	}
}
