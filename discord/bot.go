package discord

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/tcherry92/gameday-channels/controller"
)

type Config struct {
	Token      string
	AppID      string
	DevGuildID string // optional, gets instant command registration
	ProSKUID   string
	// FreeWeekLimit is the highest week number a guild without Pro can
	// materialize.
	FreeWeekLimit int
}

type Bot struct {
	session       *discordgo.Session
	ctrl          controller.C
	pro           Entitlements
	appID         string
	devGuildID    string
	freeWeekLimit int

	mu          sync.Mutex
	knownGuilds map[string]bool
}

func New(cfg Config, ctrl controller.C) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:       session,
		ctrl:          ctrl,
		pro:           NewEntitlements(session, cfg.AppID, cfg.ProSKUID),
		appID:         cfg.AppID,
		devGuildID:    cfg.DevGuildID,
		freeWeekLimit: cfg.FreeWeekLimit,
		knownGuilds:   make(map[string]bool),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onGuildCreate)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Run connects to the gateway and keeps the session open until the shutdown
// signal arrives.
func (b *Bot) Run(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		<-shutdown

		if err := b.session.Close(); err != nil {
			log.Printf("error closing discord session: %v", err)
		}
	}()

	if err := b.session.Open(); err != nil {
		log.Fatalf("fatal error connecting to discord: %v", err)
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("logged in as %s#%s", r.User.Username, r.User.Discriminator)

	// Guilds in the ready payload are existing installs. Anything that
	// shows up later in a GuildCreate is a fresh join.
	b.mu.Lock()
	for _, g := range r.Guilds {
		b.knownGuilds[g.ID] = true
	}
	b.mu.Unlock()

	b.registerCommands(s)
}

func (b *Bot) registerCommands(s *discordgo.Session) {
	cmds := commands()

	if b.devGuildID != "" {
		if _, err := s.ApplicationCommandBulkOverwrite(b.appID, b.devGuildID, cmds); err != nil {
			log.Printf("error registering guild commands: %v", err)
		} else {
			log.Printf("guild commands registered (instant): guild=%s count=%d", b.devGuildID, len(cmds))
		}
	}

	if _, err := s.ApplicationCommandBulkOverwrite(b.appID, "", cmds); err != nil {
		log.Printf("error registering global commands: %v", err)
	} else {
		log.Printf("global commands registered: count=%d (may take up to ~1 hour to appear)", len(cmds))
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.mu.Lock()
	seen := b.knownGuilds[g.ID]
	b.knownGuilds[g.ID] = true
	b.mu.Unlock()
	if seen {
		return
	}

	target := g.SystemChannelID
	if target == "" {
		for _, ch := range g.Channels {
			if ch.Type == discordgo.ChannelTypeGuildText {
				target = ch.ID
				break
			}
		}
	}
	if target == "" {
		return
	}

	embed, components := welcomeCard(b.appID)
	_, err := s.ChannelMessageSendComplex(target, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Printf("error sending welcome card to guild %s: %v", g.ID, err)
	}
}
