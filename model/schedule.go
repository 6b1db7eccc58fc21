package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Schedule sources. A guild either runs on the bundled season data or on a
// manually maintained schedule.
const (
	SourceNFL2025 = "nfl_2025"
	SourceManual  = "manual"
)

// Matchup is an ordered home/away pair. (A, B) and (B, A) are distinct.
type Matchup struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Schedule is the per-guild season aggregate. Weeks maps a normalized week
// key to the matchups in insertion order. NoticeChannels remembers the
// designated kickoff-notice channel per materialized week.
type Schedule struct {
	Source         string               `json:"source,omitempty"`
	Weeks          map[string][]Matchup `json:"weeks"`
	NoticeChannels map[string]string    `json:"notice_channels,omitempty"`
	UpdatedAt      time.Time            `json:"updated_at,omitempty"`
}

func NewSchedule() *Schedule {
	return &Schedule{Weeks: make(map[string][]Matchup)}
}

// AddMatch appends m to the given week unless an entry with the same
// (home, away) pair already exists. Reports whether anything was added.
func (s *Schedule) AddMatch(week string, m Matchup) bool {
	for _, existing := range s.Weeks[week] {
		if existing == m {
			return false
		}
	}
	s.Weeks[week] = append(s.Weeks[week], m)
	return true
}

func (s *Schedule) Games(week string) []Matchup {
	return s.Weeks[week]
}

// WeekKeys returns the week keys present, numerically sorted. Non-numeric
// keys sort after the numeric ones.
func (s *Schedule) WeekKeys() []string {
	keys := make([]string, 0, len(s.Weeks))
	for k := range s.Weeks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		if aErr != bErr {
			return aErr == nil
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Clone returns a deep copy, so cached state can be handed to readers
// outside the guild lock.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{
		Source:    s.Source,
		Weeks:     make(map[string][]Matchup, len(s.Weeks)),
		UpdatedAt: s.UpdatedAt,
	}
	for k, games := range s.Weeks {
		out.Weeks[k] = append([]Matchup(nil), games...)
	}
	if s.NoticeChannels != nil {
		out.NoticeChannels = make(map[string]string, len(s.NoticeChannels))
		for k, v := range s.NoticeChannels {
			out.NoticeChannels[k] = v
		}
	}
	return out
}

// WeekKey converts a week number to its canonical map key.
func WeekKey(week int) string {
	return strconv.Itoa(week)
}

// ParseWeekKey normalizes a textual week to its canonical key, so "01",
// " 1 " and 1 all collide on "1". Returns false for non-numeric or
// non-positive input.
func ParseWeekKey(s string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return "", false
	}
	return WeekKey(n), true
}

// ChannelSlug derives a channel-safe name: lowercased with every run of
// non [a-z0-9] characters collapsed to a single hyphen.
func ChannelSlug(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return out
}
