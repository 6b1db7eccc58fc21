package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tcherry92/gameday-channels/controller"
	"github.com/tcherry92/gameday-channels/model"
)

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handleModal(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleButton(s, i)
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "setup-season":
		b.handleSetupSeason(s, i)
	case "import-schedule":
		b.handleImportSchedule(s, i)
	case "make-week":
		b.handleMakeWeek(s, i)
	case "add-match":
		b.handleAddMatch(s, i)
	case "manual-add":
		b.handleManualAdd(s, i)
	case "cleanup-week":
		b.handleCleanupWeek(s, i)
	case "bulk-import":
		b.handleBulkImport(s, i)
	case "upgrade":
		b.upsell(s, i, "")
	case "complete":
		b.handleComplete(s, i)
	case "uncomplete":
		b.handleUncomplete(s, i)
	case "help":
		b.handleHelp(s, i)
	case "team-assign":
		b.handleTeamAssign(s, i)
	case "team-unassign":
		b.handleTeamUnassign(s, i)
	case "team-list":
		b.handleTeamList(s, i)
	case "check-pro":
		b.handleCheckPro(s, i)
	case "debug-week":
		b.handleDebugWeek(s, i)
	case "set-category-prefix":
		b.handleSetCategoryPrefix(s, i)
	case "ping-fans":
		b.handlePingFans(s, i)
	}
}

func (b *Bot) handleSetupSeason(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := options(i)
	source := opts["source"].StringValue()
	purge := false
	if o, ok := opts["purge"]; ok {
		purge = o.BoolValue()
	}

	if !deferReply(s, i) {
		return
	}

	if source == model.SourceNFL2025 {
		summary, err := b.ctrl.PreloadSeason(ctx, i.GuildID)
		if err != nil {
			edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
			return
		}
		edit(s, i, successEmbed("Season Setup",
			fmt.Sprintf("📅 Source set to **nfl_2025**. Preloaded %d weeks (%s).", summary.Weeks, summary.PerWeek)))
		return
	}

	if err := b.ctrl.SetManualSource(ctx, i.GuildID); err != nil {
		edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}

	msg := "📝 Source set to **manual**. Preloaded games cleared."
	if purge {
		res, err := b.ctrl.PurgeWeeks(ctx, i.GuildID, NewGuildChannels(s, i.GuildID))
		if err != nil {
			log.Printf("error purging week categories in guild %s: %v", i.GuildID, err)
		} else {
			msg += fmt.Sprintf(" 🧹 Deleted **%d** week categories (errors: %d).", res.Deleted, res.Errors)
		}
	}
	edit(s, i, infoEmbed("Season Setup", msg))
}

func (b *Bot) handleImportSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Schedule Import") {
		return
	}
	text := options(i)["schedule_text"].StringValue()

	if !deferReply(s, i) {
		return
	}

	res, err := b.ctrl.ImportSchedule(context.Background(), i.GuildID, text)
	if err != nil {
		edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}
	edit(s, i, successEmbed("Import Complete",
		fmt.Sprintf("✅ Imported. Added %d match(es). Skipped %d malformed line(s).", res.Added, res.Skipped)))
}

func (b *Bot) handleMakeWeek(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	week := int(opts["week"].IntValue())
	roleID := ""
	if o, ok := opts["private_to_role"]; ok {
		roleID = o.RoleValue(nil, "").ID
	}

	if week > b.freeWeekLimit && !b.pro.HasPro(i.GuildID) {
		b.upsell(s, i, fmt.Sprintf(
			"🔒 **Pro required** to create Week %d. You can create up to **Week %d** for free.",
			week, b.freeWeekLimit))
		return
	}

	if !deferReply(s, i) {
		return
	}
	b.makeWeek(s, i, week, roleID)
}

func (b *Bot) handleAddMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	week := int(opts["week"].IntValue())
	home := opts["home"].StringValue()
	away := opts["away"].StringValue()
	roleID := ""
	if o, ok := opts["private_to_role"]; ok {
		roleID = o.RoleValue(nil, "").ID
	}

	if !deferReply(s, i) {
		return
	}

	if _, _, err := b.ctrl.AddMatch(context.Background(), i.GuildID, week, home, away); err != nil {
		edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}
	b.makeWeek(s, i, week, roleID)
}

// makeWeek runs the reconciler and edits the deferred reply with the result.
func (b *Bot) makeWeek(s *discordgo.Session, i *discordgo.InteractionCreate, week int, roleID string) {
	res, err := b.ctrl.MaterializeWeek(context.Background(), i.GuildID, week, roleID, NewGuildChannels(s, i.GuildID))
	if err != nil {
		var noGames *controller.NoGamesError
		if errors.As(err, &noGames) {
			edit(s, i, errorEmbed(fmt.Sprintf(
				"⚠️ No games found for Week %d. Add with /manual-add or /add-match.", week)))
		} else {
			edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		}
		return
	}

	edit(s, i, successEmbed("Week Created",
		fmt.Sprintf("✅ Week %s ready.\n%s", res.Week, strings.Join(res.Channels, ", "))))
}

func (b *Bot) handleManualAdd(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "manualAddModal",
			Title:    "Add Matchup",
			Components: []discordgo.MessageComponent{
				textInputRow("week", "Week number", discordgo.TextInputShort),
				textInputRow("away", "Away team (name or abbrev)", discordgo.TextInputShort),
				textInputRow("home", "Home team (name or abbrev)", discordgo.TextInputShort),
			},
		},
	})
	if err != nil {
		log.Printf("error showing manual-add modal: %v", err)
	}
}

func (b *Bot) handleCleanupWeek(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Cleanup Week") {
		return
	}
	opts := options(i)
	week := int(opts["week"].IntValue())
	confirm := opts["confirm"].BoolValue()

	if !deferReply(s, i) {
		return
	}

	if !confirm {
		edit(s, i, errorEmbed("❌ Deletion not confirmed."))
		return
	}

	name, err := b.ctrl.CleanupWeek(context.Background(), i.GuildID, week, NewGuildChannels(s, i.GuildID))
	if err != nil {
		if errors.Is(err, controller.ErrWeekNotFound) {
			edit(s, i, errorEmbed("⚠️ No category found for that week."))
		} else {
			edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		}
		return
	}
	edit(s, i, successEmbed("Cleanup Complete", fmt.Sprintf("🗑️ Deleted %s.", name)))
}

func (b *Bot) handleBulkImport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Bulk Import") {
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "bulkImportModal",
			Title:    "Bulk Import: week,home,away",
			Components: []discordgo.MessageComponent{
				textInputRow("bulkText", "Paste lines (CSV): week,home,away", discordgo.TextInputParagraph),
			},
		},
	})
	if err != nil {
		log.Printf("error showing bulk-import modal: %v", err)
	}
}

func (b *Bot) handleComplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.pro.HasPro(i.GuildID) {
		b.upsell(s, i, "🔒 **Pro required** to use /complete. Unlock GameDay Channels Pro to enable this feature.")
		return
	}

	if !deferReply(s, i) {
		return
	}

	ch, err := s.Channel(i.ChannelID)
	if err != nil {
		edit(s, i, errorEmbed("⚠️ Could not resolve this channel."))
		return
	}

	newName := completedName(ch.Name)
	if err := NewGuildChannels(s, i.GuildID).RenameChannel(context.Background(), ch.ID, newName); err != nil {
		log.Printf("error marking channel %s complete: %v", ch.ID, err)
		edit(s, i, errorEmbed("❌ Failed to mark channel complete."))
		return
	}
	edit(s, i, successEmbed("Channel Complete", fmt.Sprintf("✅ Channel marked complete: **%s**", newName)))
}

func (b *Bot) handleUncomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Uncomplete Channel") {
		return
	}

	if !deferReply(s, i) {
		return
	}

	ch, err := s.Channel(i.ChannelID)
	if err != nil {
		edit(s, i, errorEmbed("⚠️ Could not resolve this channel."))
		return
	}

	if !isCompletedName(ch.Name) {
		edit(s, i, errorEmbed(fmt.Sprintf("No ✅ to remove on **#%s**.", ch.Name)))
		return
	}

	newName := uncompletedName(ch.Name)
	if err := NewGuildChannels(s, i.GuildID).RenameChannel(context.Background(), ch.ID, newName); err != nil {
		log.Printf("error unmarking channel %s: %v", ch.ID, err)
		edit(s, i, errorEmbed("❌ Failed to rename channel."))
		return
	}
	edit(s, i, successEmbed("Channel Uncomplete", fmt.Sprintf("🧹 Unmarked **#%s**", newName)))
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := infoEmbed(
		"📖 GameDay Channels Quick Guide",
		strings.Join([]string{
			"**Setup**",
			"• `/setup-season` choose **nfl_2025** (preloaded) or **manual**",
			"• `/make-week` create channels for all games in a week",
			"• `/add-match` or `/manual-add` add a game if needed",
			"",
			"**Teams & Tagging**",
			"• `/team-assign team:<Team> user:@User` tag fans when weeks are created",
			"• `/team-list` to see assignments",
			"",
			"**Finishing Games**",
			"• `/complete` / `/uncomplete` mark channels done",
			"",
			"**Bulk / Admin (Pro)**",
			"• `/bulk-import` or `/import-schedule` paste many games",
			"• `/cleanup-week` remove a full week category",
			"",
			"💎 `/upgrade` to unlock Pro features.",
		}, "\n"),
	)

	row1 := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{CustomID: "help-setup", Label: "Setup", Style: discordgo.PrimaryButton},
		discordgo.Button{CustomID: "help-teams", Label: "Teams", Style: discordgo.PrimaryButton},
		discordgo.Button{CustomID: "help-pro", Label: "Pro", Style: discordgo.SecondaryButton},
	}}
	row2 := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Upgrade to Pro", Style: discordgo.LinkButton, URL: appDirectoryURL(b.appID)},
		discordgo.Button{Label: "Invite the Bot", Style: discordgo.LinkButton, URL: inviteURL(b.appID)},
	}}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{row1, row2},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("error replying to help command: %v", err)
	}
}

func (b *Bot) handleTeamAssign(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	teamIn := opts["team"].StringValue()
	user := opts["user"].UserValue(nil)

	if !deferReply(s, i) {
		return
	}

	team, err := b.ctrl.AssignFan(context.Background(), i.GuildID, teamIn, user.ID)
	if err != nil {
		edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}
	edit(s, i, successEmbed("Team Assignment", fmt.Sprintf("✅ Assigned <@%s> to **%s**.", user.ID, team)))
}

func (b *Bot) handleTeamUnassign(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	teamIn := opts["team"].StringValue()
	user := opts["user"].UserValue(nil)

	if !deferReply(s, i) {
		return
	}

	team, wasPresent, err := b.ctrl.UnassignFan(context.Background(), i.GuildID, teamIn, user.ID)
	if err != nil {
		edit(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}

	msg := fmt.Sprintf("⚠️ <@%s> was not assigned to **%s**.", user.ID, team)
	if wasPresent {
		msg = fmt.Sprintf("🗑️ Removed <@%s> from **%s**.", user.ID, team)
	}
	edit(s, i, infoEmbed("Team Unassignment", msg))
}

func (b *Bot) handleTeamList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := options(i)

	if o, ok := opts["team"]; ok {
		team, fans, err := b.ctrl.ListFans(ctx, i.GuildID, o.StringValue())
		if err != nil {
			reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
			return
		}
		reply(s, i, infoEmbed(fmt.Sprintf("Team: %s", team), mentionsOrNone(fans)))
		return
	}

	all, err := b.ctrl.ListAllFans(ctx, i.GuildID)
	if err != nil {
		reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}

	if len(all) == 0 {
		reply(s, i, infoEmbed("Team Assignments", "_no assignments_"))
		return
	}

	teams := make([]string, 0, len(all))
	for team := range all {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	lines := make([]string, 0, len(teams))
	for _, team := range teams {
		lines = append(lines, fmt.Sprintf("• **%s** (%d): %s", team, len(all[team]), mentionsOrNone(all[team])))
	}
	reply(s, i, infoEmbed("Team Assignments", strings.Join(lines, "\n")))
}

func (b *Bot) handleCheckPro(s *discordgo.Session, i *discordgo.InteractionCreate) {
	msg := "❌ No Pro subscription found."
	if b.pro.HasPro(i.GuildID) {
		msg = "✅ Pro is active for this server!"
	}
	reply(s, i, infoEmbed("Pro Status", msg))
}

func (b *Bot) handleDebugWeek(s *discordgo.Session, i *discordgo.InteractionCreate) {
	week := int(options(i)["week"].IntValue())

	info, err := b.ctrl.WeekSummary(context.Background(), i.GuildID, week)
	if err != nil {
		reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}

	lines := []string{
		fmt.Sprintf("Guild: `%s`", i.GuildID),
		fmt.Sprintf("Weeks present: [%s]", strings.Join(info.WeeksPresent, ", ")),
		fmt.Sprintf("Week %s: I see **%d** game(s).", info.Week, len(info.Games)),
	}
	for n, game := range info.Games {
		if n == 10 {
			break
		}
		lines = append(lines, fmt.Sprintf("• %s vs %s", game.Home, game.Away))
	}
	reply(s, i, infoEmbed("Debug Week", strings.Join(lines, "\n")))
}

func (b *Bot) handleSetCategoryPrefix(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Set Category Prefix") {
		return
	}
	prefixIn := options(i)["prefix"].StringValue()

	prefix, err := b.ctrl.SetCategoryPrefix(context.Background(), i.GuildID, prefixIn)
	if err != nil {
		reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}
	reply(s, i, successEmbed("Category Prefix Updated",
		fmt.Sprintf("✅ Categories will now use prefix: **%s** (e.g., \"%s 1\")", prefix, prefix)))
}

func (b *Bot) handlePingFans(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requirePro(s, i, "Ping Fans") {
		return
	}
	week := int(options(i)["week"].IntValue())

	if !deferReply(s, i) {
		return
	}

	res, err := b.ctrl.PingFans(context.Background(), i.GuildID, week, NewGuildChannels(s, i.GuildID))
	if err != nil {
		var noGames *controller.NoGamesError
		switch {
		case errors.As(err, &noGames):
			edit(s, i, errorEmbed(fmt.Sprintf("⚠️ No games in Week %d.", week)))
		case errors.Is(err, controller.ErrNoFans):
			edit(s, i, errorEmbed("No fans assigned to teams in this week."))
		case errors.Is(err, controller.ErrNoNoticeChannel):
			edit(s, i, errorEmbed("Week category not found. Create it with /make-week first."))
		default:
			edit(s, i, errorEmbed("Failed to send ping message. Check permissions."))
		}
		return
	}
	edit(s, i, successEmbed("Fans Pinged", fmt.Sprintf("✅ Pinged %d fans.", res.Fans)))
}

func (b *Bot) handleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case "bulkImportModal":
		b.handleBulkImportModal(s, i, data)
	case "manualAddModal":
		b.handleManualAddModal(s, i, data)
	}
}

func (b *Bot) handleBulkImportModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	if !b.requirePro(s, i, "Bulk Import") {
		return
	}
	ctx := context.Background()

	res, err := b.ctrl.ImportSchedule(ctx, i.GuildID, textInput(data, "bulkText"))
	if err != nil {
		reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}

	touched := ""
	if sched, err := b.ctrl.GetSchedule(ctx, i.GuildID); err == nil {
		var parts []string
		for _, wk := range sched.WeekKeys() {
			parts = append(parts, wk+":"+strconv.Itoa(len(sched.Games(wk))))
		}
		if len(parts) > 0 {
			touched = "Weeks now: " + strings.Join(parts, " ")
		}
	}

	desc := fmt.Sprintf("✅ Bulk import complete.\n• Added: **%d**   • Skipped (bad/dup): **%d**\n%s",
		res.Added, res.Skipped, touched)
	reply(s, i, successEmbed("Bulk Import", desc))
}

func (b *Bot) handleManualAddModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	week, err := strconv.Atoi(strings.TrimSpace(textInput(data, "week")))
	if err != nil || week <= 0 {
		reply(s, i, errorEmbed("Week must be a positive number."))
		return
	}

	m, _, err := b.ctrl.AddMatch(context.Background(), i.GuildID, week,
		textInput(data, "home"), textInput(data, "away"))
	if err != nil {
		reply(s, i, errorEmbed(fmt.Sprintf("Error: %v", err)))
		return
	}
	reply(s, i, successEmbed("Match Added",
		fmt.Sprintf("✅ Added to Week %d: %s @ %s. Use /make-week to build channels.", week, m.Away, m.Home)))
}

func (b *Bot) handleButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "help-") {
		return
	}

	var embed *discordgo.MessageEmbed
	switch strings.TrimPrefix(customID, "help-") {
	case "setup":
		embed = infoEmbed("Setup Guide", strings.Join([]string{
			"• `/setup-season` choose **nfl_2025** (preloaded) or **manual**",
			"• `/make-week` create channels for all games in a week",
			"• `/add-match` or `/manual-add` add a game if needed",
			"• `/set-category-prefix` customize category names (Pro)",
		}, "\n"))
	case "teams":
		embed = infoEmbed("Teams & Tagging", strings.Join([]string{
			"• `/team-assign team:<Team> user:@User` tag fans when weeks are created",
			"• `/team-unassign` remove assignment",
			"• `/team-list` see assignments",
			"• `/ping-fans` remind fans for a week (Pro)",
		}, "\n"))
	case "pro":
		embed = infoEmbed("Pro Features", strings.Join([]string{
			"💎 Unlock with `/upgrade`:",
			"• Unlimited weeks beyond free limit",
			"• Bulk import/export",
			"• Cleanup tools",
			"• Customization (e.g., category prefixes)",
			"• Fan pings & more",
		}, "\n"))
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("error acknowledging help button: %v", err)
		return
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("error sending help follow-up: %v", err)
	}
}

// requirePro gates a command behind the guild's Pro entitlement, replying
// with an upsell when it is missing.
func (b *Bot) requirePro(s *discordgo.Session, i *discordgo.InteractionCreate, feature string) bool {
	if b.pro.HasPro(i.GuildID) {
		return true
	}
	b.upsell(s, i, fmt.Sprintf("🔒 **Pro required** to use **%s** on this server.", feature))
	return false
}

func (b *Bot) upsell(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if message == "" {
		message = "Unlock **GameDay Channels Pro** for this server:"
	}

	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Unlock Pro", Style: discordgo.LinkButton, URL: appDirectoryURL(b.appID)},
	}}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    message,
			Components: []discordgo.MessageComponent{row},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("error sending upsell message: %v", err)
	}
}

func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// deferReply acknowledges the interaction ephemerally so slower work can
// happen before the real reply. Reports whether the ack succeeded.
func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("error deferring interaction reply: %v", err)
		return false
	}
	return true
}

func reply(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("error replying to interaction: %v", err)
	}
}

func edit(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Printf("error editing interaction reply: %v", err)
	}
}

func textInputRow(customID, label string, style discordgo.TextInputStyle) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID: customID,
			Label:    label,
			Style:    style,
			Required: true,
		},
	}}
}

func textInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if ti, ok := c.(*discordgo.TextInput); ok && ti.CustomID == customID {
				return ti.Value
			}
		}
	}
	return ""
}

func mentionsOrNone(userIDs []string) string {
	if len(userIDs) == 0 {
		return "_none_"
	}
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, " ")
}

const completePrefix = "✅-"

func isCompletedName(name string) bool {
	return strings.HasPrefix(name, completePrefix) || strings.HasPrefix(name, "✅")
}

func completedName(name string) string {
	if isCompletedName(name) {
		return name
	}
	return truncateName(completePrefix + name)
}

func uncompletedName(name string) string {
	name = strings.TrimPrefix(name, completePrefix)
	name = strings.TrimPrefix(name, "✅")
	return truncateName(name)
}

// Discord caps channel names at 100 characters. The cut happens on a rune
// boundary so a multi-byte character straddling the limit is dropped whole
// rather than sliced into invalid UTF-8.
func truncateName(name string) string {
	if len(name) <= 100 {
		return name
	}
	cut := 0
	for i := range name {
		if i > 100 {
			break
		}
		cut = i
	}
	return name[:cut]
}
