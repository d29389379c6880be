package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/showcase/internal/clipboard"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

const envPrefix = "SHOWCASE"

// settings are the resolved values of every persistent flag, after config
// file and environment overrides.
type settings struct {
	theme     components.Theme
	content   string
	watch     bool
	ackWindow time.Duration
	logLevel  string
	logFile   string
	width     int
	clipboard clipboard.Mode
}

func bindSettings(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "settings file (default .showcase.yaml, or SHOWCASE_CONFIG)")
	flags.String("theme", "auto", "colour theme: auto, light or dark")
	flags.String("content", "", "content YAML file (default: built-in document)")
	flags.Bool("watch", false, "reload the content file when it changes")
	flags.Duration("ack-window", gallery.DefaultAckWindow, "how long a copy button shows \"Copied!\"")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.Int("width", 0, "page width in columns (0 follows the terminal)")
	flags.String("clipboard", "auto", "clipboard mechanism: auto, system or osc52")

	_ = v.BindPFlags(flags)
}

// initConfig reads the optional settings file and enables SHOWCASE_*
// environment overrides.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	switch file := v.GetString("config"); {
	case file != "":
		v.SetConfigFile(file)
	default:
		v.AddConfigPath(".")
		v.SetConfigName(".showcase")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	return nil
}

func loadSettings(v *viper.Viper) (settings, error) {
	theme, err := components.ThemeByName(v.GetString("theme"))
	if err != nil {
		return settings{}, err
	}
	mode, err := clipboard.ParseMode(v.GetString("clipboard"))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		theme:     theme,
		content:   v.GetString("content"),
		watch:     v.GetBool("watch"),
		ackWindow: v.GetDuration("ack-window"),
		logLevel:  v.GetString("log-level"),
		logFile:   v.GetString("log-file"),
		width:     v.GetInt("width"),
		clipboard: mode,
	}
	if s.ackWindow <= 0 {
		return settings{}, fmt.Errorf("ack-window must be positive, got %s", s.ackWindow)
	}
	if s.width < 0 {
		return settings{}, fmt.Errorf("width must not be negative, got %d", s.width)
	}
	if s.watch && s.content == "" {
		return settings{}, errors.New("--watch needs --content")
	}
	return s, nil
}

// newLogger opens the log file when one is configured. Without one the
// terminal belongs to the UI and entries are dropped.
func (s settings) newLogger() (*logger.Logger, func() error, error) {
	if s.logFile == "" {
		return logger.Discard(), func() error { return nil }, nil
	}
	log, closer, err := logger.OpenFile(s.logFile, logger.Options{Level: s.logLevel})
	if err != nil {
		return nil, nil, err
	}
	return log, closer.Close, nil
}
