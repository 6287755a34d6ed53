package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"cfbPickem/services/extService"
	"cfbPickem/services/gameService"

	"github.com/joho/godotenv"
)

const (
	StoreGorm   = "gorm"
	StoreMemory = "memory"
)

type Config struct {
	Env  string
	Port string

	Store       string
	DatabaseURL string

	CFBDToken    string
	CFBDBaseURL  string
	CFBDCacheTTL time.Duration
	RedisURL     string

	Policy     gameService.Policy
	Aliases    map[string]string
	ImportYear int

	AdminUser     string
	AdminPassword string
	CORSOrigins   []string

	DiscordToken     string
	DiscordChannelID string
	Location         *time.Location

	LineRefreshCron string
	GameEndCron     string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a variable lookup.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:              get("ENV", "development"),
		Port:             get("PORT", "3000"),
		Store:            strings.ToLower(get("STORE", StoreGorm)),
		DatabaseURL:      get("DATABASE_URL", getenv("MYSQL_URL")),
		CFBDToken:        get("CFBD_TOKEN", ""),
		CFBDBaseURL:      get("CFBD_BASE_URL", extService.DefaultBaseURL),
		RedisURL:         get("REDIS_URL", ""),
		Aliases:          gameService.ParseAliases(get("TEAM_ALIASES", "")),
		AdminUser:        get("ADMIN_USER", "admin"),
		AdminPassword:    get("ADMIN_PASSWORD", ""),
		CORSOrigins:      splitList(get("CORS_ORIGINS", "http://localhost:3000"), ","),
		DiscordToken:     get("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID: get("DISCORD_CHANNEL_ID", ""),
		LineRefreshCron:  get("LINE_REFRESH_CRON", "0 0 9 * 8-12,1 *"),
		GameEndCron:      get("GAME_END_CRON", "0 0 */1 * 8-12,1 *"),
	}

	defaults := gameService.DefaultPolicy()
	cfg.Policy = gameService.Policy{
		Poll:              get("RANKING_POLL", defaults.Poll),
		Conferences:       splitList(get("INCLUDE_CONFERENCES", strings.Join(defaults.Conferences, ",")), ","),
		Teams:             splitList(get("INCLUDE_TEAMS", strings.Join(defaults.Teams, ",")), ","),
		PrimaryProvider:   get("PRIMARY_PROVIDER", defaults.PrimaryProvider),
		SecondaryProvider: get("SECONDARY_PROVIDER", defaults.SecondaryProvider),
	}

	ttl, err := time.ParseDuration(get("CFBD_CACHE_TTL", extService.DefaultCacheTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("CFBD_CACHE_TTL: %w", err)
	}
	cfg.CFBDCacheTTL = ttl

	year, err := strconv.Atoi(get("IMPORT_YEAR", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return nil, fmt.Errorf("IMPORT_YEAR: %w", err)
	}
	cfg.ImportYear = year

	loc, err := time.LoadLocation(get("TIMEZONE", "America/New_York"))
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	cfg.Location = loc

	switch cfg.Store {
	case StoreMemory:
	case StoreGorm:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL not set in environment variables")
		}
	default:
		return nil, fmt.Errorf("STORE must be %q or %q, got %q", StoreGorm, StoreMemory, cfg.Store)
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, admin routes are disabled")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
