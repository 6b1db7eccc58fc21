package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tcherry92/gameday-channels/model"
)

// SeasonSummary reports what a preload loaded.
type SeasonSummary struct {
	Weeks   int
	Games   int
	PerWeek string // "1:16 2:16 ..." in week order
}

// PreloadSeason replaces the guild's entire schedule with the sanitized
// bundled season data. A missing bundled file is an operator configuration
// error; a malformed one is recovered from field by field.
func (c *controller) PreloadSeason(ctx context.Context, guildID string) (*SeasonSummary, error) {
	raw, err := os.ReadFile(c.seasonFile)
	if err != nil {
		return nil, fmt.Errorf("missing bundled season file %s: %w", c.seasonFile, err)
	}

	weeks, err := sanitizeSeason(raw)
	if err != nil {
		return nil, err
	}

	summary := summarize(weeks)
	err = c.withGuild(ctx, guildID, func(gs *guildState) error {
		gs.schedule.Source = model.SourceNFL2025
		gs.schedule.Weeks = weeks
		gs.schedule.NoticeChannels = nil
		c.saveSchedule(ctx, guildID, gs)
		return nil
	})
	return summary, err
}

// sanitizeSeason turns an arbitrarily messy season document into clean week
// data. Week keys are trimmed, non-array week values become empty, entries
// without usable home and away strings are dropped, whitespace inside names
// is collapsed, and duplicate pairs within a week collapse to one. Only a
// document that fails to parse at all is an error.
func sanitizeSeason(raw []byte) (map[string][]model.Matchup, error) {
	var doc struct {
		Weeks map[string]json.RawMessage `json:"weeks"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing season file: %w", err)
	}

	out := make(map[string][]model.Matchup)
	for rawKey, rawGames := range doc.Weeks {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			continue
		}

		var entries []json.RawMessage
		if err := json.Unmarshal(rawGames, &entries); err != nil {
			continue
		}

		seen := make(map[model.Matchup]bool)
		var cleaned []model.Matchup
		for _, rawEntry := range entries {
			var entry struct {
				Home string `json:"home"`
				Away string `json:"away"`
			}
			if err := json.Unmarshal(rawEntry, &entry); err != nil {
				continue
			}

			m := model.Matchup{
				Home: collapseSpace(entry.Home),
				Away: collapseSpace(entry.Away),
			}
			if m.Home == "" || m.Away == "" {
				continue
			}
			if seen[m] {
				continue
			}
			seen[m] = true
			cleaned = append(cleaned, m)
		}

		if len(cleaned) > 0 {
			out[key] = cleaned
		}
	}
	return out, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func summarize(weeks map[string][]model.Matchup) *SeasonSummary {
	s := &model.Schedule{Weeks: weeks}

	summary := &SeasonSummary{Weeks: len(weeks)}
	var parts []string
	for _, wk := range s.WeekKeys() {
		summary.Games += len(weeks[wk])
		parts = append(parts, fmt.Sprintf("%s:%d", wk, len(weeks[wk])))
	}
	summary.PerWeek = strings.Join(parts, " ")
	return summary
}
