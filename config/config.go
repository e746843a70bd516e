package config

import (
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	DatabaseURL string
	Debug       bool
}

var (
	cfg  *Config
	once sync.Once
)

// Get loads the configuration from the environment on first use.
// DATABASE_URL defaults to an embedded sqlite file next to the binary.
func Get() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetEnvPrefix("BLOGSPOT")
		v.AutomaticEnv()

		v.SetDefault("addr", ":5000")
		v.SetDefault("debug", false)

		_ = v.BindEnv("database_url", "DATABASE_URL")
		v.SetDefault("database_url", "blog.db")

		cfg = &Config{
			Addr:        v.GetString("addr"),
			DatabaseURL: v.GetString("database_url"),
			Debug:       v.GetBool("debug"),
		}
	})

	return cfg
}
