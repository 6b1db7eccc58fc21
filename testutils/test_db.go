package testutils

import (
	"log"
	"os"
	"path/filepath"

	"github.com/itbasis/go-clock"
	"github.com/tcherry92/gameday-channels/db"
)

// TestDB is a throwaway file-backed store for tests.
type TestDB struct {
	dir   string
	DB    db.DB
	Clock *clock.Mock
}

func NewTestDB() *TestDB {
	dir, err := os.MkdirTemp("", "gameday-test-*")
	if err != nil {
		log.Fatalf("error creating temp dir for test db: %v", err)
	}

	d, err := db.New(filepath.Join(dir, "gameday.db"))
	if err != nil {
		log.Fatalf("error opening test db: %v", err)
	}

	return &TestDB{
		dir:   dir,
		DB:    d,
		Clock: clock.NewMock(),
	}
}

func (t *TestDB) Shutdown() {
	t.DB.Close()
	os.RemoveAll(t.dir)
}
