package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/tcherry92/gameday-channels/controller"
)

// channelSession is the slice of the discordgo API used for channel
// management. *discordgo.Session satisfies it.
type channelSession interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// GuildChannels adapts one guild's live channel surface to the reconciler.
// Every listing is fetched fresh from the API so manual edits made between
// commands are respected.
type GuildChannels struct {
	s       channelSession
	guildID string
	botID   string
}

func NewGuildChannels(s *discordgo.Session, guildID string) *GuildChannels {
	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}
	return &GuildChannels{s: s, guildID: guildID, botID: botID}
}

func (g *GuildChannels) Categories(ctx context.Context) ([]controller.Channel, error) {
	channels, err := g.s.GuildChannels(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing guild channels: %w", err)
	}

	var out []controller.Channel
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory {
			out = append(out, controller.Channel{ID: ch.ID, Name: ch.Name})
		}
	}
	return out, nil
}

func (g *GuildChannels) Children(ctx context.Context, parentID string) ([]controller.Channel, error) {
	channels, err := g.s.GuildChannels(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing guild channels: %w", err)
	}

	var out []controller.Channel
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.ParentID == parentID {
			out = append(out, controller.Channel{ID: ch.ID, Name: ch.Name})
		}
	}
	return out, nil
}

func (g *GuildChannels) CreateCategory(ctx context.Context, name string, rules controller.AccessRules) (controller.Channel, error) {
	ch, err := g.s.GuildChannelCreateComplex(g.guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildCategory,
		PermissionOverwrites: g.overwrites(rules),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return controller.Channel{}, fmt.Errorf("creating category %s: %w", name, err)
	}
	return controller.Channel{ID: ch.ID, Name: ch.Name}, nil
}

func (g *GuildChannels) SetCategoryAccess(ctx context.Context, categoryID string, rules controller.AccessRules) error {
	_, err := g.s.ChannelEdit(categoryID, &discordgo.ChannelEdit{
		PermissionOverwrites: g.overwrites(rules),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("updating category permissions: %w", err)
	}
	return nil
}

func (g *GuildChannels) CreateChannel(ctx context.Context, name, parentID string) (controller.Channel, error) {
	ch, err := g.s.GuildChannelCreateComplex(g.guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: parentID,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return controller.Channel{}, fmt.Errorf("creating channel %s: %w", name, err)
	}
	return controller.Channel{ID: ch.ID, Name: ch.Name}, nil
}

func (g *GuildChannels) GrantMemberView(ctx context.Context, channelID, userID string) error {
	err := g.s.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, discordgo.PermissionViewChannel, 0,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("granting channel access: %w", err)
	}
	return nil
}

func (g *GuildChannels) SendMessage(ctx context.Context, channelID, content string, mentionUserIDs []string) error {
	// Mentions resolve only for the listed users; everything else in the
	// content stays inert.
	_, err := g.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Users: mentionUserIDs},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

func (g *GuildChannels) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := g.s.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("renaming channel: %w", err)
	}
	return nil
}

func (g *GuildChannels) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := g.s.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("deleting channel: %w", err)
	}
	return nil
}

// overwrites builds the permission set for a restricted week category: hide
// from @everyone, keep the bot working, admit the chosen role. Empty rules
// mean guild-default visibility.
func (g *GuildChannels) overwrites(rules controller.AccessRules) []*discordgo.PermissionOverwrite {
	if rules.RoleID == "" {
		return nil
	}
	return []*discordgo.PermissionOverwrite{
		{
			ID:   g.guildID, // the @everyone role shares the guild's ID
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:   g.botID,
			Type: discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionManageChannels |
				discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		},
		{
			ID:    rules.RoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel,
		},
	}
}
