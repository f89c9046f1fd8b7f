package config

type Config struct {
	Environment    string
	Port           string
	Debug          bool
	DebugMultiline bool
	BaseDir        string
	JWTSecret      string
	SessionSecret  string
	DatabaseURL    string
	RateLimit      string
}

// reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// returns the config as a flat mapping, secrets masked
func (c *Config) Mapping() map[string]any {
	return map[string]any{
		"ENVIRONMENT":     c.Environment,
		"PORT":            c.Port,
		"DEBUG":           c.Debug,
		"DEBUG_MULTILINE": c.DebugMultiline,
		"BASE_DIR":        c.BaseDir,
		"JWT_SECRET":      mask(c.JWTSecret),
		"SESSION_SECRET":  mask(c.SessionSecret),
		"DATABASE_URL":    mask(c.DatabaseURL),
		"RATE_LIMIT":      c.RateLimit,
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}

	return "********"
}

// parsed subcommand flags of the manage CLI
type Flags struct {
	Env    bool
	Style  string
	Method string
	UserID string
	Email  string
	Name   string
}
