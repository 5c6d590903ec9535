package config

// Config holds runtime settings for the ProfileKeeper CLI.
//
// Fields:
//   - DatabaseDSN: path of the SQLite file backing the key-value store.
//   - AvatarDir: directory where imported avatar images are kept.
type Config struct {
	DatabaseDSN string
	AvatarDir   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "profile.db"
	c.AvatarDir = "avatars"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
