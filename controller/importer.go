package controller

import (
	"context"
	"strings"

	"github.com/tcherry92/gameday-channels/model"
)

// ImportResult summarizes a bulk import: lines that added a matchup and
// lines skipped as malformed. Duplicates and comment lines count as neither.
type ImportResult struct {
	Added   int
	Skipped int
}

// ImportSchedule parses free text, one record per line, fields
// comma-separated: week,home,away. Extra fields are ignored; lines with
// fewer than three fields or a non-numeric week are counted as skipped;
// lines starting with '#' are comments. Each valid line goes through the
// same duplicate suppression and team resolution as AddMatch. The whole
// batch is persisted once at the end.
func (c *controller) ImportSchedule(ctx context.Context, guildID, text string) (*ImportResult, error) {
	res := &ImportResult{}

	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.Split(line, ",")
			if len(parts) < 3 {
				res.Skipped++
				continue
			}

			wk, ok := model.ParseWeekKey(parts[0])
			if !ok {
				res.Skipped++
				continue
			}

			home, _ := model.ResolveTeam(parts[1])
			away, _ := model.ResolveTeam(parts[2])
			if home == "" || away == "" {
				res.Skipped++
				continue
			}

			if gs.schedule.AddMatch(wk, model.Matchup{Home: home, Away: away}) {
				res.Added++
			}
		}

		if res.Added > 0 {
			c.saveSchedule(ctx, guildID, gs)
		}
		return nil
	})
	return res, err
}
