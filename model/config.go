package model

// DefaultCategoryPrefix is used for week category names until a guild
// configures its own.
const DefaultCategoryPrefix = "Week"

// GuildConfig holds per-guild display preferences.
type GuildConfig struct {
	CategoryPrefix string `json:"category_prefix,omitempty"`
}

func NewGuildConfig() *GuildConfig {
	return &GuildConfig{CategoryPrefix: DefaultCategoryPrefix}
}

func (c *GuildConfig) Prefix() string {
	if c == nil || c.CategoryPrefix == "" {
		return DefaultCategoryPrefix
	}
	return c.CategoryPrefix
}

func (c *GuildConfig) Clone() *GuildConfig {
	out := *c
	return &out
}
