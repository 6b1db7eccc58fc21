package model

import "sort"

// FanRegistry maps a canonical team name to the user IDs assigned to it.
// Membership has set semantics even though it persists as a JSON array.
type FanRegistry struct {
	Teams map[string][]string `json:"teams"`
}

func NewFanRegistry() *FanRegistry {
	return &FanRegistry{Teams: make(map[string][]string)}
}

// Assign adds userID to the team's fan set. Reports whether the registry
// changed, i.e. false when the user was already assigned.
func (r *FanRegistry) Assign(team, userID string) bool {
	for _, id := range r.Teams[team] {
		if id == userID {
			return false
		}
	}
	r.Teams[team] = append(r.Teams[team], userID)
	return true
}

// Unassign removes userID from the team's fan set and reports whether the
// user had actually been assigned.
func (r *FanRegistry) Unassign(team, userID string) bool {
	fans := r.Teams[team]
	for i, id := range fans {
		if id == userID {
			r.Teams[team] = append(fans[:i:i], fans[i+1:]...)
			return true
		}
	}
	return false
}

func (r *FanRegistry) Fans(team string) []string {
	return append([]string(nil), r.Teams[team]...)
}

// TeamNames returns the teams with at least one assignment, sorted.
func (r *FanRegistry) TeamNames() []string {
	names := make([]string, 0, len(r.Teams))
	for t, fans := range r.Teams {
		if len(fans) > 0 {
			names = append(names, t)
		}
	}
	sort.Strings(names)
	return names
}

func (r *FanRegistry) Clone() *FanRegistry {
	out := NewFanRegistry()
	for t, fans := range r.Teams {
		out.Teams[t] = append([]string(nil), fans...)
	}
	return out
}
