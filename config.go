package labgroups

import (
	"fmt"

	"github.com/lucabaldini/labgroups/types"
)

// Config is the configuration for the Allocator.
//
// The defaults reproduce the standard lab hierarchy: four macro-groups
// (A1, B1, A2, B2), three rooms per macro-group, two turns per room, for 24
// leaf turn-groups in total.
type Config struct {
	// MacroGroups is the ordered set of top-level cohort labels.
	// Order matters: the default-group rule indexes into it by
	// identifier modulo its length, and turn-group enumeration
	// (hence tie-breaking) follows it.
	MacroGroups []string `yaml:"macroGroups"`

	// RoomsPerMacroGroup is the number of physical rooms under each
	// macro-group.
	RoomsPerMacroGroup int `yaml:"roomsPerMacroGroup"`

	// TurnsPerRoom is the number of time slots under each room.
	TurnsPerRoom int `yaml:"turnsPerRoom"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MacroGroups:        []string{"A1", "B1", "A2", "B2"},
		RoomsPerMacroGroup: 3,
		TurnsPerRoom:       2,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if len(cfg.MacroGroups) == 0 {
		cfg.MacroGroups = defaults.MacroGroups
	}
	if cfg.RoomsPerMacroGroup == 0 {
		cfg.RoomsPerMacroGroup = defaults.RoomsPerMacroGroup
	}
	if cfg.TurnsPerRoom == 0 {
		cfg.TurnsPerRoom = defaults.TurnsPerRoom
	}
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) on the first violation
func (c *Config) Validate() error {
	if err := c.Taxonomy().Validate(); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidConfig, err)
	}

	return nil
}

// Taxonomy materializes the group hierarchy described by the configuration.
//
// Returns:
//   - types.Taxonomy: The taxonomy to allocate against
func (c *Config) Taxonomy() types.Taxonomy {
	macros := make([]types.MacroGroup, len(c.MacroGroups))
	for i, m := range c.MacroGroups {
		macros[i] = types.MacroGroup(m)
	}

	return types.Taxonomy{
		MacroGroups:        macros,
		RoomsPerMacroGroup: c.RoomsPerMacroGroup,
		TurnsPerRoom:       c.TurnsPerRoom,
	}
}
