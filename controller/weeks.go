package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tcherry92/gameday-channels/model"
)

// ChannelManager is the live channel surface of one guild. The reconciler
// never caches its results across commands; the live listing is re-fetched
// every time so concurrent manual edits are respected.
type ChannelManager interface {
	Categories(ctx context.Context) ([]Channel, error)
	Children(ctx context.Context, parentID string) ([]Channel, error)
	CreateCategory(ctx context.Context, name string, rules AccessRules) (Channel, error)
	SetCategoryAccess(ctx context.Context, categoryID string, rules AccessRules) error
	CreateChannel(ctx context.Context, name, parentID string) (Channel, error)
	GrantMemberView(ctx context.Context, channelID, userID string) error
	// SendMessage delivers text with mentions allowed for exactly the given
	// user IDs and nothing else.
	SendMessage(ctx context.Context, channelID, content string, mentionUserIDs []string) error
	RenameChannel(ctx context.Context, channelID, name string) error
	DeleteChannel(ctx context.Context, channelID string) error
}

type Channel struct {
	ID   string
	Name string
}

// AccessRules restricts visibility of a category to one role (plus the bot
// itself) when RoleID is set. Empty rules mean guild-default visibility.
type AccessRules struct {
	RoleID string
}

// NoGamesError reports a week with nothing scheduled. It is a user no-op,
// not a fault.
type NoGamesError struct {
	Week string
}

func (e *NoGamesError) Error() string {
	return fmt.Sprintf("no games scheduled for week %s", e.Week)
}

var (
	ErrWeekNotFound    = errors.New("no category found for that week")
	ErrNoFans          = errors.New("no fans assigned to teams in this week")
	ErrNoNoticeChannel = errors.New("week has no notice channel yet")
)

// WeekResult lists what MaterializeWeek ensured.
type WeekResult struct {
	Week         string
	CategoryName string
	Channels     []string // display names of every ensured channel
	Created      int      // how many channels were newly created
}

type PurgeResult struct {
	Deleted int
	Errors  int
}

type PingResult struct {
	Fans      int
	ChannelID string
}

// MaterializeWeek reconciles a week's matchups against the guild's live
// channels: one category per week, one channel per matchup, created only if
// missing. It is idempotent purely by name-matching against live state.
// Individual capability failures are logged and skipped so one bad channel
// does not abort the rest of the week.
func (c *controller) MaterializeWeek(ctx context.Context, guildID string, week int, roleID string, cm ChannelManager) (*WeekResult, error) {
	if week <= 0 {
		return nil, ErrBadWeek
	}
	wk := model.WeekKey(week)

	res := &WeekResult{Week: wk}
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		games := gs.schedule.Games(wk)
		if len(games) == 0 {
			return &NoGamesError{Week: wk}
		}

		rules := AccessRules{RoleID: roleID}
		catName := fmt.Sprintf("%s %s", gs.config.Prefix(), wk)
		res.CategoryName = catName

		cat, err := c.ensureCategory(ctx, cm, catName, rules)
		if err != nil {
			return err
		}

		children, err := cm.Children(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("listing channels of %s: %w", catName, err)
		}
		byName := make(map[string]Channel, len(children))
		for _, ch := range children {
			byName[ch.Name] = ch
		}

		restricted := roleID != ""
		noticeID := ""
		for _, game := range games {
			slug := model.ChannelSlug(game.Home + "-vs-" + game.Away)

			ch, ok := byName[slug]
			if !ok {
				created, err := cm.CreateChannel(ctx, slug, cat.ID)
				if err != nil {
					log.Printf("guild %s: error creating channel %s: %v", guildID, slug, err)
					continue
				}
				ch = created
				byName[slug] = ch
				res.Created++
			}
			res.Channels = append(res.Channels, "#"+slug)
			if noticeID == "" {
				noticeID = ch.ID
			}

			homeFans := gs.fans.Fans(game.Home)
			awayFans := gs.fans.Fans(game.Away)
			gameFans := union(homeFans, awayFans)

			// A private category only admits the role; fans get let in
			// one by one on their matchup channel.
			if restricted {
				for _, uid := range gameFans {
					if err := cm.GrantMemberView(ctx, ch.ID, uid); err != nil {
						log.Printf("guild %s: error granting %s access to %s: %v", guildID, uid, slug, err)
					}
				}
			}

			notice := kickoffNotice(game, homeFans, awayFans)
			if err := cm.SendMessage(ctx, ch.ID, notice, gameFans); err != nil {
				log.Printf("guild %s: error posting kickoff notice in %s: %v", guildID, slug, err)
			}
		}

		// Remember the designated notice channel for this week instead of
		// re-deriving it from listing order later.
		if noticeID != "" && gs.schedule.NoticeChannels[wk] != noticeID {
			if gs.schedule.NoticeChannels == nil {
				gs.schedule.NoticeChannels = make(map[string]string)
			}
			gs.schedule.NoticeChannels[wk] = noticeID
			c.saveSchedule(ctx, guildID, gs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ensureCategory finds the week's category case-insensitively or creates it.
// When access rules are supplied for an existing category they are refreshed
// so a re-run with a different role converges.
func (c *controller) ensureCategory(ctx context.Context, cm ChannelManager, name string, rules AccessRules) (Channel, error) {
	cats, err := cm.Categories(ctx)
	if err != nil {
		return Channel{}, fmt.Errorf("listing categories: %w", err)
	}

	for _, cat := range cats {
		if strings.EqualFold(cat.Name, name) {
			if rules.RoleID != "" {
				if err := cm.SetCategoryAccess(ctx, cat.ID, rules); err != nil {
					log.Printf("error refreshing access on category %s: %v", name, err)
				}
			}
			return cat, nil
		}
	}

	cat, err := cm.CreateCategory(ctx, name, rules)
	if err != nil {
		return Channel{}, fmt.Errorf("creating category %s: %w", name, err)
	}
	return cat, nil
}

// CleanupWeek deletes a week's category and all its channels. Returns the
// category name that was removed.
func (c *controller) CleanupWeek(ctx context.Context, guildID string, week int, cm ChannelManager) (string, error) {
	if week <= 0 {
		return "", ErrBadWeek
	}
	wk := model.WeekKey(week)

	var catName string
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		catName = fmt.Sprintf("%s %s", gs.config.Prefix(), wk)

		cats, err := cm.Categories(ctx)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		var target *Channel
		for i := range cats {
			if strings.EqualFold(cats[i].Name, catName) {
				target = &cats[i]
				break
			}
		}
		if target == nil {
			return ErrWeekNotFound
		}

		c.deleteCategory(ctx, guildID, cm, *target)

		if gs.schedule.NoticeChannels[wk] != "" {
			delete(gs.schedule.NoticeChannels, wk)
			c.saveSchedule(ctx, guildID, gs)
		}
		return nil
	})
	return catName, err
}

// PurgeWeeks deletes every category whose name carries the configured week
// prefix. Used when switching season sources.
func (c *controller) PurgeWeeks(ctx context.Context, guildID string, cm ChannelManager) (*PurgeResult, error) {
	res := &PurgeResult{}
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		marker := strings.ToLower(gs.config.Prefix()) + " "

		cats, err := cm.Categories(ctx)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		for _, cat := range cats {
			if !strings.Contains(strings.ToLower(cat.Name), marker) {
				continue
			}
			if c.deleteCategory(ctx, guildID, cm, cat) {
				res.Deleted++
			} else {
				res.Errors++
			}
		}

		if len(gs.schedule.NoticeChannels) > 0 {
			gs.schedule.NoticeChannels = nil
			c.saveSchedule(ctx, guildID, gs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// deleteCategory removes the category's children then the category itself.
// Reports whether the category delete succeeded.
func (c *controller) deleteCategory(ctx context.Context, guildID string, cm ChannelManager, cat Channel) bool {
	children, err := cm.Children(ctx, cat.ID)
	if err != nil {
		log.Printf("guild %s: error listing children of %s: %v", guildID, cat.Name, err)
	}
	for _, ch := range children {
		if err := cm.DeleteChannel(ctx, ch.ID); err != nil {
			log.Printf("guild %s: error deleting channel %s: %v", guildID, ch.Name, err)
		}
	}
	if err := cm.DeleteChannel(ctx, cat.ID); err != nil {
		log.Printf("guild %s: error deleting category %s: %v", guildID, cat.Name, err)
		return false
	}
	return true
}

// PingFans posts a week-wide hype message to the week's designated notice
// channel, mentioning exactly the fans of the teams playing that week.
func (c *controller) PingFans(ctx context.Context, guildID string, week int, cm ChannelManager) (*PingResult, error) {
	if week <= 0 {
		return nil, ErrBadWeek
	}
	wk := model.WeekKey(week)

	res := &PingResult{}
	err := c.withGuild(ctx, guildID, func(gs *guildState) error {
		games := gs.schedule.Games(wk)
		if len(games) == 0 {
			return &NoGamesError{Week: wk}
		}

		var all []string
		for _, game := range games {
			all = union(all, union(gs.fans.Fans(game.Home), gs.fans.Fans(game.Away)))
		}
		if len(all) == 0 {
			return ErrNoFans
		}

		noticeID := gs.schedule.NoticeChannels[wk]
		if noticeID == "" {
			return ErrNoNoticeChannel
		}

		msg := fmt.Sprintf("🏈 **Game Day Hype for Week %s!** %s Get ready for kickoff!", wk, mentionList(all))
		if err := cm.SendMessage(ctx, noticeID, msg, all); err != nil {
			return fmt.Errorf("sending fan ping: %w", err)
		}

		res.Fans = len(all)
		res.ChannelID = noticeID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func kickoffNotice(game model.Matchup, homeFans, awayFans []string) string {
	lines := []string{fmt.Sprintf("**%s vs %s**", game.Home, game.Away)}
	if len(homeFans) > 0 {
		lines = append(lines, "Home fans: "+mentionList(homeFans))
	}
	if len(awayFans) > 0 {
		lines = append(lines, "Away fans: "+mentionList(awayFans))
	}
	return strings.Join(lines, "\n")
}

func mentionList(userIDs []string) string {
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, " ")
}

// union merges two ID lists preserving first-seen order without duplicates.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, id := range append(append([]string{}, a...), b...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
