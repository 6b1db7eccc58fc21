package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Entitlements answers whether a guild carries an active Pro subscription.
type Entitlements interface {
	HasPro(guildID string) bool
}

type entitlementSession interface {
	Entitlements(appID string, filterOptions *discordgo.EntitlementFilterOptions, options ...discordgo.RequestOption) ([]*discordgo.Entitlement, error)
}

type skuEntitlements struct {
	s     entitlementSession
	appID string
	skuID string
}

func NewEntitlements(s *discordgo.Session, appID, skuID string) Entitlements {
	return &skuEntitlements{s: s, appID: appID, skuID: skuID}
}

// HasPro fails closed: missing configuration or an API error both read as
// no subscription.
func (e *skuEntitlements) HasPro(guildID string) bool {
	if e.appID == "" || e.skuID == "" {
		log.Print("entitlement check skipped: missing APP_ID or GUILD_PRO_SKU_ID")
		return false
	}

	entitlements, err := e.s.Entitlements(e.appID, &discordgo.EntitlementFilterOptions{
		GuildID:      guildID,
		SkuIDs:       []string{e.skuID},
		ExcludeEnded: true,
	})
	if err != nil {
		log.Printf("error checking entitlements for guild %s: %v", guildID, err)
		return false
	}

	return len(entitlements) > 0
}
