package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Task      TaskConfigs     `toml:"task"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	LogLevel string `toml:"log_level"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=True",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host          string   `toml:"host"`
	Port          string   `toml:"port"`
	AllowCORS     []string `toml:"allow_cors"`
	DefaultLimit  int      `toml:"default_limit"`
	MaxLimit      int      `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

// Duration decodes a TOML string such as "24h" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Secret     string   `toml:"secret"`
	Expiration Duration `toml:"expiration"`
}

type TaskConfigs struct {
	// Timezone is the fixed service timezone used by time_based tasks.
	Timezone string `toml:"timezone"`

	QuizMaxQuestions int `toml:"quiz_max_questions"`
	QuizMaxOptions   int `toml:"quiz_max_options"`
}

// Load reads the TOML configuration file and overrides secrets with
// environment variables when they are set.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Port:         "8080",
			DefaultLimit: 1,
			MaxLimit:     50,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: Duration{24 * time.Hour},
			},
		},
		Task: TaskConfigs{
			Timezone:         "UTC",
			QuizMaxQuestions: 10,
			QuizMaxOptions:   10,
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	if cfg.Auth.AccessToken.Secret == "" {
		cfg.Auth.AccessToken.Secret = cfg.Auth.TokenSecret
	}

	return cfg, nil
}
