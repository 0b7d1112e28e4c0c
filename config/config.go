package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DBPath     string `envconfig:"WARDROBE_DB_PATH" default:"./wardrobe.db"`
	BcryptCost int    `envconfig:"WARDROBE_BCRYPT_COST" default:"10"`
	// HTTP
	HTTPPort string `envconfig:"WARDROBE_HTTP_PORT" default:"8080"`
	APIToken string `envconfig:"WARDROBE_API_TOKEN"`
	// Cache
	CacheType     string        `envconfig:"WARDROBE_CACHE_TYPE" default:"redis"`
	RedisAddr     string        `envconfig:"WARDROBE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"WARDROBE_REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"WARDROBE_REDIS_DB" default:"0"`
	SessionTTL    time.Duration `envconfig:"WARDROBE_SESSION_TTL" default:"24h"`
	ListCacheTTL  time.Duration `envconfig:"WARDROBE_LIST_CACHE_TTL" default:"5m"`
}

// Load reads an optional .env file and then the environment
func Load(files ...string) (App, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, err
	}

	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// ValidateServer checks the settings only the HTTP server needs
func (c App) ValidateServer() error {
	if c.APIToken == "" {
		return fmt.Errorf("WARDROBE_API_TOKEN is required to serve")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("WARDROBE_HTTP_PORT is required to serve")
	}
	return nil
}
