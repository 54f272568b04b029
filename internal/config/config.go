package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Theme string     `yaml:"theme" mapstructure:"theme" validate:"oneof=green plain"`
	Log   LogConfig  `yaml:"log" mapstructure:"log"`
	Quiz  QuizConfig `yaml:"quiz" mapstructure:"quiz"`
}

// LogConfig controls the diagnostic logger on stderr. It has nothing to do
// with the session transcript saved by the "log" command.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=text json"`
}

type QuizConfig struct {
	// Seed fixes the order cards are asked in. Zero means random.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: "green",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "flashcards"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "flashcards"))
	}
	return paths
}

// Load reads config.yaml from the working directory or the user config
// directory, then applies FLASHCARDS_* environment overrides. A missing file
// is not an error.
func Load() (*Config, error) {
	return load(viper.New(), searchPaths())
}

func load(v *viper.Viper, paths []string) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("quiz.seed", def.Quiz.Seed)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("FLASHCARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate normalizes case and checks every field against its allowed values.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			key := strings.TrimPrefix(strings.ToLower(fe.Namespace()), "config.")
			return fmt.Errorf("config: %s has invalid value %q (must be one of: %s)", key, fe.Value(), fe.Param())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
