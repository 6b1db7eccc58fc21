package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func seedWeek(t *testing.T, ctrl C, guildID string, week int, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		if _, _, err := ctrl.AddMatch(context.Background(), guildID, week, p[0], p[1]); err != nil {
			t.Fatalf("error seeding match: %v", err)
		}
	}
}

func TestMaterializeWeekIdempotent(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1,
		[2]string{"Eagles", "Cowboys"},
		[2]string{"Giants", "Jets"},
		[2]string{"Chiefs", "Chargers"},
	)

	fake := newFakeChannels()

	res, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake)
	if err != nil {
		t.Fatalf("error materializing week: %v", err)
	}
	if fake.createdCategories != 1 || fake.createdChannels != 3 {
		t.Errorf("first run created %d categories / %d channels, expected 1 / 3",
			fake.createdCategories, fake.createdChannels)
	}
	if res.Created != 3 || len(res.Channels) != 3 {
		t.Errorf("result = %+v, expected 3 created channels", res)
	}
	if res.Channels[0] != "#eagles-vs-cowboys" {
		t.Errorf("channel name = %q, expected #eagles-vs-cowboys", res.Channels[0])
	}

	// Second run with no schedule or live changes: zero redundant creates,
	// detected purely by name-matching against live state.
	res, err = ctrl.MaterializeWeek(ctx, "g1", 1, "", fake)
	if err != nil {
		t.Fatalf("error re-materializing week: %v", err)
	}
	if fake.createdCategories != 1 || fake.createdChannels != 3 {
		t.Errorf("second run created extra channels: %d categories / %d channels",
			fake.createdCategories, fake.createdChannels)
	}
	if res.Created != 0 {
		t.Errorf("second run reported %d creations, expected 0", res.Created)
	}
}

func TestMaterializeWeekMatchesCategoryCaseInsensitively(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})

	fake := newFakeChannels()
	fake.categories = append(fake.categories, Channel{ID: "cat-1", Name: "WEEK 1"})

	if _, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake); err != nil {
		t.Fatalf("error materializing week: %v", err)
	}
	if fake.createdCategories != 0 {
		t.Error("existing category should be reused regardless of case")
	}
}

func TestMaterializeWeekNoGames(t *testing.T) {
	ctrl, _ := newTestController(t)

	fake := newFakeChannels()
	_, err := ctrl.MaterializeWeek(context.Background(), "g1", 7, "", fake)

	var noGames *NoGamesError
	if !errors.As(err, &noGames) {
		t.Fatalf("expected NoGamesError, got %v", err)
	}
	if fake.createdCategories != 0 || fake.createdChannels != 0 {
		t.Error("no external creates may happen for an empty week")
	}
}

func TestMaterializeWeekRestrictedAdmitsFans(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})
	ctrl.AssignFan(ctx, "g1", "Eagles", "u1")
	ctrl.AssignFan(ctx, "g1", "Cowboys", "u2")
	ctrl.AssignFan(ctx, "g1", "Cowboys", "u1") // fan of both sides, granted once

	fake := newFakeChannels()
	if _, err := ctrl.MaterializeWeek(ctx, "g1", 1, "role-9", fake); err != nil {
		t.Fatalf("error materializing week: %v", err)
	}

	catID := fake.categories[0].ID
	if fake.accessSet[catID].RoleID != "role-9" {
		t.Error("category access rules not applied")
	}

	chID := fake.children[catID][0].ID
	grants := fake.grants[chID]
	if len(grants) != 2 {
		t.Errorf("expected 2 individual grants, got %v", grants)
	}

	if len(fake.messages) != 1 {
		t.Fatalf("expected 1 kickoff notice, got %d", len(fake.messages))
	}
	msg := fake.messages[0]
	if !strings.Contains(msg.content, "Eagles vs Cowboys") {
		t.Errorf("notice missing matchup header: %q", msg.content)
	}
	if len(msg.mentions) != 2 {
		t.Errorf("mention scope must be exactly the collected fans, got %v", msg.mentions)
	}
}

func TestMaterializeWeekUnrestrictedSkipsGrants(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})
	ctrl.AssignFan(ctx, "g1", "Eagles", "u1")

	fake := newFakeChannels()
	if _, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake); err != nil {
		t.Fatalf("error materializing week: %v", err)
	}
	if len(fake.grants) != 0 {
		t.Errorf("public weeks should not grant per-member access, got %v", fake.grants)
	}
}

func TestMaterializeWeekContinuesPastFailures(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1,
		[2]string{"Eagles", "Cowboys"},
		[2]string{"Giants", "Jets"},
	)

	fake := newFakeChannels()
	fake.failCreateChannel["eagles-vs-cowboys"] = true

	res, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake)
	if err != nil {
		t.Fatalf("one failed create must not abort the week: %v", err)
	}
	if res.Created != 1 {
		t.Errorf("expected the second channel to still be created, got %d", res.Created)
	}
	if len(res.Channels) != 1 || res.Channels[0] != "#giants-vs-jets" {
		t.Errorf("ensured channels = %v", res.Channels)
	}
}

func TestMaterializeWeekSendFailureDoesNotAbort(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1,
		[2]string{"Eagles", "Cowboys"},
		[2]string{"Giants", "Jets"},
	)

	fake := newFakeChannels()
	fake.failSend = true

	res, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake)
	if err != nil {
		t.Fatalf("send failures must not abort the week: %v", err)
	}
	if res.Created != 2 {
		t.Errorf("expected both channels created, got %d", res.Created)
	}
}

func TestPingFansUsesStoredNoticeChannel(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})
	ctrl.AssignFan(ctx, "g1", "Eagles", "u1")
	ctrl.AssignFan(ctx, "g1", "Cowboys", "u2")

	fake := newFakeChannels()

	// Before materializing there is no designated notice channel.
	if _, err := ctrl.PingFans(ctx, "g1", 1, fake); !errors.Is(err, ErrNoNoticeChannel) {
		t.Fatalf("expected ErrNoNoticeChannel, got %v", err)
	}

	if _, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake); err != nil {
		t.Fatalf("error materializing week: %v", err)
	}

	res, err := ctrl.PingFans(ctx, "g1", 1, fake)
	if err != nil {
		t.Fatalf("error pinging fans: %v", err)
	}
	if res.Fans != 2 {
		t.Errorf("expected 2 fans pinged, got %d", res.Fans)
	}

	last := fake.messages[len(fake.messages)-1]
	if last.channelID != res.ChannelID {
		t.Errorf("ping went to %s, expected stored notice channel %s", last.channelID, res.ChannelID)
	}
	if len(last.mentions) != 2 {
		t.Errorf("mention scope = %v, expected both fans", last.mentions)
	}
}

func TestPingFansNoFans(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})

	fake := newFakeChannels()
	if _, err := ctrl.PingFans(ctx, "g1", 1, fake); !errors.Is(err, ErrNoFans) {
		t.Errorf("expected ErrNoFans, got %v", err)
	}
}

func TestCleanupWeek(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})

	fake := newFakeChannels()
	if _, err := ctrl.MaterializeWeek(ctx, "g1", 1, "", fake); err != nil {
		t.Fatalf("error materializing week: %v", err)
	}

	name, err := ctrl.CleanupWeek(ctx, "g1", 1, fake)
	if err != nil {
		t.Fatalf("error cleaning up week: %v", err)
	}
	if name != "Week 1" {
		t.Errorf("cleaned category = %q, expected Week 1", name)
	}
	if len(fake.categories) != 0 {
		t.Errorf("category not deleted: %v", fake.categories)
	}

	// The notice pointer is gone, so a fan ping reports that clearly.
	ctrl.AssignFan(ctx, "g1", "Eagles", "u1")
	if _, err := ctrl.PingFans(ctx, "g1", 1, fake); !errors.Is(err, ErrNoNoticeChannel) {
		t.Errorf("expected ErrNoNoticeChannel after cleanup, got %v", err)
	}

	if _, err := ctrl.CleanupWeek(ctx, "g1", 1, fake); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("expected ErrWeekNotFound for a second cleanup, got %v", err)
	}
}

func TestPurgeWeeks(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()
	seedWeek(t, ctrl, "g1", 1, [2]string{"Eagles", "Cowboys"})
	seedWeek(t, ctrl, "g1", 2, [2]string{"Giants", "Jets"})

	fake := newFakeChannels()
	fake.categories = append(fake.categories, Channel{ID: "keep-1", Name: "general"})

	ctrl.MaterializeWeek(ctx, "g1", 1, "", fake)
	ctrl.MaterializeWeek(ctx, "g1", 2, "", fake)

	res, err := ctrl.PurgeWeeks(ctx, "g1", fake)
	if err != nil {
		t.Fatalf("error purging weeks: %v", err)
	}
	if res.Deleted != 2 || res.Errors != 0 {
		t.Errorf("purge result = %+v, expected 2 deleted", res)
	}

	// Unrelated categories survive.
	if len(fake.categories) != 1 || fake.categories[0].Name != "general" {
		t.Errorf("remaining categories = %v, expected only general", fake.categories)
	}
}
