package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/tcherry92/gameday-channels/db"
	"github.com/tcherry92/gameday-channels/db/mockdb"
	"github.com/tcherry92/gameday-channels/model"
	"github.com/tcherry92/gameday-channels/testutils"
)

func newTestController(t *testing.T) (C, *testutils.TestDB) {
	t.Helper()
	testDB := testutils.NewTestDB()
	t.Cleanup(testDB.Shutdown)

	ctrl, err := New(testDB.Clock, testDB.DB, filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	return ctrl, testDB
}

func newTestControllerWithSeason(t *testing.T, seasonJSON string) C {
	t.Helper()
	testDB := testutils.NewTestDB()
	t.Cleanup(testDB.Shutdown)

	seasonFile := filepath.Join(t.TempDir(), "nfl_2025.json")
	if err := os.WriteFile(seasonFile, []byte(seasonJSON), 0644); err != nil {
		t.Fatalf("error writing season fixture: %v", err)
	}

	ctrl, err := New(testDB.Clock, testDB.DB, seasonFile)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	return ctrl
}

func TestCacheAuthoritativeAfterFirstLoad(t *testing.T) {
	ctrl, testDB := newTestController(t)
	ctx := context.Background()

	if _, _, err := ctrl.AddMatch(ctx, "g1", 1, "eagles", "cowboys"); err != nil {
		t.Fatalf("error adding match: %v", err)
	}

	// Clobber the persisted record behind the controller's back. The cache
	// must stay authoritative.
	stale := model.NewSchedule()
	if err := testDB.DB.SaveSchedule(ctx, "g1", stale); err != nil {
		t.Fatalf("error writing stale record: %v", err)
	}

	s, err := ctrl.GetSchedule(ctx, "g1")
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if len(s.Games("1")) != 1 {
		t.Errorf("cache no longer authoritative, games: %v", s.Weeks)
	}
}

func TestCorruptRecordTreatedAsAbsent(t *testing.T) {
	m := &mockdb.DB{}
	m.On("GetSchedule", mock.Anything, "g1").Return(nil, db.ErrCorrupt)
	m.On("GetFans", mock.Anything, "g1").Return(nil, db.ErrNotFound)
	m.On("GetConfig", mock.Anything, "g1").Return(nil, db.ErrNotFound)
	m.On("SaveSchedule", mock.Anything, "g1", mock.Anything).Return(nil)

	testDB := testutils.NewTestDB()
	defer testDB.Shutdown()

	ctrl, err := New(testDB.Clock, m, "unused.json")
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	_, added, err := ctrl.AddMatch(context.Background(), "g1", 1, "eagles", "cowboys")
	if err != nil {
		t.Fatalf("corrupt record should not fail the command: %v", err)
	}
	if !added {
		t.Error("expected match to be added to a fresh aggregate")
	}
	m.AssertExpectations(t)
}

func TestSaveFailureNotPropagated(t *testing.T) {
	m := &mockdb.DB{}
	m.On("GetSchedule", mock.Anything, "g1").Return(nil, db.ErrNotFound)
	m.On("GetFans", mock.Anything, "g1").Return(nil, db.ErrNotFound)
	m.On("GetConfig", mock.Anything, "g1").Return(nil, db.ErrNotFound)
	m.On("SaveSchedule", mock.Anything, "g1", mock.Anything).Return(errors.New("disk full"))

	testDB := testutils.NewTestDB()
	defer testDB.Shutdown()

	ctrl, err := New(testDB.Clock, m, "unused.json")
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	ctx := context.Background()
	if _, _, err := ctrl.AddMatch(ctx, "g1", 1, "eagles", "cowboys"); err != nil {
		t.Fatalf("a failed save must be swallowed, got: %v", err)
	}

	// The in-memory aggregate keeps the mutation.
	s, err := ctrl.GetSchedule(ctx, "g1")
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if len(s.Games("1")) != 1 {
		t.Error("mutation lost after failed save")
	}
}

func TestConcurrentMutationsDoNotDropUpdates(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	// Hammer one guild's week with distinct matchups and one team's fan
	// list with distinct users. Every writer must land: a lost update
	// shows up as a short count.
	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for n := 1; n <= writers; n++ {
		go func(n int) {
			defer wg.Done()

			home := fmt.Sprintf("Home Club %d", n)
			away := fmt.Sprintf("Away Club %d", n)
			if _, added, err := ctrl.AddMatch(ctx, "g1", 1, home, away); err != nil || !added {
				t.Errorf("AddMatch(%d) = (added=%v, %v)", n, added, err)
			}

			if _, err := ctrl.AssignFan(ctx, "g1", "Eagles", fmt.Sprintf("u%d", n)); err != nil {
				t.Errorf("error assigning fan %d: %v", n, err)
			}
		}(n)
	}
	wg.Wait()

	s, err := ctrl.GetSchedule(ctx, "g1")
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if len(s.Games("1")) != writers {
		t.Errorf("got %d games, expected %d", len(s.Games("1")), writers)
	}

	_, fans, err := ctrl.ListFans(ctx, "g1", "Eagles")
	if err != nil {
		t.Fatalf("error listing fans: %v", err)
	}
	if len(fans) != writers {
		t.Errorf("got %d fans, expected %d", len(fans), writers)
	}
}

func TestConcurrentGuildsStayIndependent(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	const guilds = 16
	const weeks = 4
	var wg sync.WaitGroup
	wg.Add(guilds)
	for n := 0; n < guilds; n++ {
		go func(n int) {
			defer wg.Done()

			guildID := fmt.Sprintf("guild-%d", n)
			for w := 1; w <= weeks; w++ {
				if _, _, err := ctrl.AddMatch(ctx, guildID, w, "Giants", "Jets"); err != nil {
					t.Errorf("error adding match for %s week %d: %v", guildID, w, err)
				}
			}
		}(n)
	}
	wg.Wait()

	for n := 0; n < guilds; n++ {
		guildID := fmt.Sprintf("guild-%d", n)
		s, err := ctrl.GetSchedule(ctx, guildID)
		if err != nil {
			t.Fatalf("error getting schedule for %s: %v", guildID, err)
		}
		if len(s.Weeks) != weeks {
			t.Errorf("%s has %d weeks, expected %d", guildID, len(s.Weeks), weeks)
		}
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	if _, _, err := ctrl.AddMatch(ctx, "g1", 1, "eagles", "cowboys"); err != nil {
		t.Fatalf("error adding match: %v", err)
	}

	s, err := ctrl.GetSchedule(ctx, "g2")
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if len(s.Weeks) != 0 {
		t.Errorf("guild g2 should be empty, got %v", s.Weeks)
	}
}
