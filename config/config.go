// Package config loads the player's settings from, in order of increasing
// precedence: a .aiplayer config file in the home directory or the working
// directory, AIPLAYER_* environment variables, and command-line flags.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	RootURL           string
	Username          string
	Password          string
	DisplayName       string
	DictionaryPath    string
	PollInterval      time.Duration
	VerifyScores      bool
	MaxSubmitAttempts int
	Debug             bool
}

// AddFlags registers every setting on the flag set.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("root-url", "https://slobsterble.com", "base URL of the game service")
	fs.String("username", "", "account username")
	fs.String("password", "", "account password")
	fs.String("display-name", "", "display name of the bot player")
	fs.String("dictionary-path", "./data/dictionary.txt", "newline-delimited word list")
	fs.Duration("poll-interval", 15*time.Second, "time between poll cycles")
	fs.Bool("verify-scores", false, "compare server-reported scores against local ones after each play")
	fs.Int("max-submit-attempts", 10, "top candidates to try submitting per turn")
	fs.Bool("debug", false, "enable debug logging")
}

// Load resolves the final configuration from the parsed flag set, the
// environment, and an optional config file.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("AIPLAYER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(".aiplayer")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		RootURL:           v.GetString("root-url"),
		Username:          v.GetString("username"),
		Password:          v.GetString("password"),
		DisplayName:       v.GetString("display-name"),
		DictionaryPath:    v.GetString("dictionary-path"),
		PollInterval:      v.GetDuration("poll-interval"),
		VerifyScores:      v.GetBool("verify-scores"),
		MaxSubmitAttempts: v.GetInt("max-submit-attempts"),
		Debug:             v.GetBool("debug"),
	}, nil
}
