// Package corpus loads whole corpora: it fans session files out to
// parsers, unifies speakers across sessions, and writes the resulting
// graphs to the store.
package corpus

import (
	"fmt"

	"github.com/spf13/viper"
)

// CorpusConfig describes one corpus to load.
type CorpusConfig struct {
	// Name is the corpus identifier used in the database.
	Name string `mapstructure:"name"`

	// Language is the main language of the corpus.
	Language string `mapstructure:"language"`

	// Sessions is a glob matching the session files.
	Sessions string `mapstructure:"sessions"`

	// MorphTiers names the dependent tiers carrying morphology, in
	// lookup order. Defaults to mor.
	MorphTiers []string `mapstructure:"morph_tiers"`

	// MorphemeDelimiter splits morpheme words. Defaults to -.
	MorphemeDelimiter string `mapstructure:"morpheme_delimiter"`

	// MainMorphemeTier is gloss or segment. Defaults to gloss.
	MainMorphemeTier string `mapstructure:"main_morpheme_tier"`

	// LabelMacroRoles maps corpus-specific speaker labels to macro
	// roles, used as a last-resort fallback.
	LabelMacroRoles map[string]string `mapstructure:"label_macro_roles"`
}

// Config is the loader configuration.
type Config struct {
	// DB is the SQLite file to write. Empty means in-memory.
	DB string `mapstructure:"db"`

	// Workers bounds the number of sessions parsed concurrently.
	Workers int `mapstructure:"workers"`

	LogLevel string `mapstructure:"log_level"`

	Corpora []CorpusConfig `mapstructure:"corpora"`
}

// LoadConfig reads the loader configuration from the given file, or
// from acquigo.yaml in the working directory when path is empty.
// Environment variables prefixed with ACQUIGO override file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("workers", 4)
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("acquigo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("acquigo")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Corpora) == 0 {
		return nil, fmt.Errorf("config %s: no corpora defined", v.ConfigFileUsed())
	}
	for i := range cfg.Corpora {
		if cfg.Corpora[i].Name == "" {
			return nil, fmt.Errorf("config %s: corpus %d has no name", v.ConfigFileUsed(), i)
		}
		if cfg.Corpora[i].Sessions == "" {
			return nil, fmt.Errorf("config %s: corpus %s has no sessions glob", v.ConfigFileUsed(), cfg.Corpora[i].Name)
		}
	}
	return &cfg, nil
}
