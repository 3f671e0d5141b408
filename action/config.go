package action

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config tunes leaf behavior.
type Config struct {
	// Stackable makes relative movement leaves (MoveBy, JumpBy, BezierBy and
	// the splines) fold any drift of the target's position since their last
	// tick into their baseline. Several such actions running on the same
	// target then add up instead of overwriting each other.
	Stackable bool `yaml:"stackable" env:"STACKABLE" envDefault:"true"`
}

var defaultConfig = Config{Stackable: true}

// DefaultConfig returns the configuration new leaves are created with.
func DefaultConfig() Config {
	return defaultConfig
}

// SetDefaultConfig replaces the configuration applied to leaves created
// afterwards. Existing actions keep the values they were created with.
func SetDefaultConfig(c Config) {
	defaultConfig = c
}

// LoadConfigEnv reads the configuration from WILLOW_ACTIONS_* environment
// variables, falling back to the defaults for unset ones.
func LoadConfigEnv() (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "WILLOW_ACTIONS_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// stacking is embedded by leaves that honor Config.Stackable.
type stacking struct {
	stackable bool
}

func newStacking() stacking {
	return stacking{stackable: defaultConfig.Stackable}
}

// Stackable reports whether the leaf folds target drift into its baseline.
func (s *stacking) Stackable() bool { return s.stackable }

// SetStackable overrides the configured stacking behavior for this leaf.
func (s *stacking) SetStackable(v bool) { s.stackable = v }
