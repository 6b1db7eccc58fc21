package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/tcherry92/gameday-channels/model"
)

var manageChannels = int64(discordgo.PermissionManageChannels)

// commands is the full slash command surface. Registered per dev guild for
// instant availability and globally for everyone else.
func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "setup-season",
			Description:              "Choose a season source.",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "source",
					Description: "nfl_2025 (preloaded from local file) or manual",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "nfl_2025", Value: model.SourceNFL2025},
						{Name: "manual", Value: model.SourceManual},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "purge",
					Description: "Also delete existing Week categories/channels",
				},
			},
		},
		{
			Name:                     "import-schedule",
			Description:              "Paste CSV lines: week,home,away",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "schedule_text",
					Description: "Multi-line CSV: week,home,away",
					Required:    true,
				},
			},
		},
		{
			Name:                     "make-week",
			Description:              "Create channels for a week.",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "private_to_role",
					Description: "Optional: restrict visibility to this role",
				},
			},
		},
		{
			Name:                     "add-match",
			Description:              "Add one matchup (no modal).",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "home",
					Description: "Home team name or abbrev",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "away",
					Description: "Away team name or abbrev",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "private_to_role",
					Description: "Optional privacy role",
				},
			},
		},
		{
			Name:                     "manual-add",
			Description:              "Add one matchup via modal (asks Week, Away, Home).",
			DefaultMemberPermissions: &manageChannels,
		},
		{
			Name:                     "cleanup-week",
			Description:              "Delete a whole week category.",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "confirm",
					Description: "Type true to confirm",
					Required:    true,
				},
			},
		},
		{
			Name:        "bulk-import",
			Description: "Open a modal to paste many lines: week,home,away",
		},
		{
			Name:        "upgrade",
			Description: "Open checkout to unlock Pro features for this server.",
		},
		{
			Name:        "complete",
			Description: "Mark THIS channel complete (adds ✅ to the channel name).",
		},
		{
			Name:        "uncomplete",
			Description: "Remove the ✅ from THIS channel name.",
		},
		{
			Name:        "help",
			Description: "How to use GameDay Channels",
		},
		{
			Name:                     "team-assign",
			Description:              "Assign a user to a team (they will be pinged on match channels)",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Team name or abbrev",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to assign",
					Required:    true,
				},
			},
		},
		{
			Name:                     "team-unassign",
			Description:              "Remove a user from a team",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Team name or abbrev",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to remove",
					Required:    true,
				},
			},
		},
		{
			Name:                     "team-list",
			Description:              "Show assigned users for a team (or all teams)",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Optional: specific team",
				},
			},
		},
		{
			Name:        "check-pro",
			Description: "Check if Pro is active for this server",
		},
		{
			Name:                     "debug-week",
			Description:              "Show how many games the bot sees for a week",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number",
					Required:    true,
				},
			},
		},
		{
			Name:                     "set-category-prefix",
			Description:              "Customize week category names (e.g., \"NFL Week X\").",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prefix",
					Description: "Prefix for category names (default: \"Week\")",
					Required:    true,
				},
			},
		},
		{
			Name:                     "ping-fans",
			Description:              "Ping assigned fans for a specific week.",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number",
					Required:    true,
				},
			},
		},
	}
}
