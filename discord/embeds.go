package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	nflLogoURL  = "https://1000logos.net/wp-content/uploads/2017/05/NFL-logo.png"
	embedFooter = "GameDay Channels • v1.0"

	colorGreen = 0x00FF00
	colorRed   = 0xFF0000
	colorBlue  = 0x0099FF
)

func successEmbed(title, description string) *discordgo.MessageEmbed {
	return buildEmbed(title, description, colorGreen)
}

func errorEmbed(description string) *discordgo.MessageEmbed {
	return buildEmbed("❌ Error", description, colorRed)
}

func infoEmbed(title, description string) *discordgo.MessageEmbed {
	return buildEmbed(title, description, colorBlue)
}

func buildEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: nflLogoURL},
		Footer:      &discordgo.MessageEmbedFooter{Text: embedFooter},
	}
}

func appDirectoryURL(appID string) string {
	return fmt.Sprintf("https://discord.com/application-directory/%s", appID)
}

func inviteURL(appID string) string {
	return fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s&scope=bot%%20applications.commands&permissions=0", appID)
}

// welcomeCard is the message posted when the bot joins a new guild.
func welcomeCard(appID string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := infoEmbed(
		"🏈 Welcome to GameDay Channels",
		strings.Join([]string{
			"Thanks for installing **GameDay Channels**!",
			"",
			"**Quick start**",
			"1. Run `/setup-season` and choose **nfl_2025** (preloaded) or **manual**.",
			"2. Use `/make-week` to auto-create game channels for a week.",
			"3. Add games with `/add-match` or `/manual-add`.",
			"4. (Optional) Use `/team-assign` so fans get tagged when weeks are created.",
			"",
			"💎 Unlock **Pro** for bulk import, unlimited weeks beyond the free limit, and quality-of-life tools.",
		}, "\n"),
	)

	row := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label: "Upgrade to Pro",
				Style: discordgo.LinkButton,
				URL:   appDirectoryURL(appID),
			},
			discordgo.Button{
				Label: "Invite to another server",
				Style: discordgo.LinkButton,
				URL:   inviteURL(appID),
			},
		},
	}

	return embed, []discordgo.MessageComponent{row}
}
