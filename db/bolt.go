package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tcherry92/gameday-channels/model"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketSchedules = "schedules"
	bucketFans      = "fans"
	bucketConfigs   = "configs"
)

type boltDB struct {
	db *bolt.DB
}

// New opens (or creates) the bolt file at path and ensures the per-concern
// buckets exist.
func New(path string) (DB, error) {
	b, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = b.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketSchedules, bucketFans, bucketConfigs} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		b.Close()
		return nil, err
	}

	return &boltDB{db: b}, nil
}

func (d *boltDB) Close() error {
	return d.db.Close()
}

func (d *boltDB) GetSchedule(ctx context.Context, guildID string) (*model.Schedule, error) {
	var s model.Schedule
	if err := d.get(bucketSchedules, guildID, &s); err != nil {
		return nil, err
	}
	// A schedule without a weeks mapping is not a usable record.
	if s.Weeks == nil {
		return nil, fmt.Errorf("%w: schedule for guild %s has no weeks", ErrCorrupt, guildID)
	}
	return &s, nil
}

func (d *boltDB) SaveSchedule(ctx context.Context, guildID string, s *model.Schedule) error {
	return d.put(bucketSchedules, guildID, s)
}

func (d *boltDB) GetFans(ctx context.Context, guildID string) (*model.FanRegistry, error) {
	var r model.FanRegistry
	if err := d.get(bucketFans, guildID, &r); err != nil {
		return nil, err
	}
	if r.Teams == nil {
		r.Teams = make(map[string][]string)
	}
	return &r, nil
}

func (d *boltDB) SaveFans(ctx context.Context, guildID string, r *model.FanRegistry) error {
	return d.put(bucketFans, guildID, r)
}

func (d *boltDB) GetConfig(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	var c model.GuildConfig
	if err := d.get(bucketConfigs, guildID, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *boltDB) SaveConfig(ctx context.Context, guildID string, c *model.GuildConfig) error {
	return d.put(bucketConfigs, guildID, c)
}

func (d *boltDB) get(bucket, guildID string, out any) error {
	return d.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucket)).Get([]byte(guildID))
		if data == nil {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, bucket, guildID)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decoding %s/%s: %v", ErrCorrupt, bucket, guildID, err)
		}
		return nil
	})
}

func (d *boltDB) put(bucket, guildID string, v any) error {
	return d.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling %s/%s: %w", bucket, guildID, err)
		}
		return tx.Bucket([]byte(bucket)).Put([]byte(guildID), data)
	})
}
