package labgroups

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, []string{"A1", "B1", "A2", "B2"}, cfg.MacroGroups)
	require.Equal(t, 3, cfg.RoomsPerMacroGroup)
	require.Equal(t, 2, cfg.TurnsPerRoom)
	require.Len(t, cfg.Taxonomy().TurnGroups(), 24)
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills every empty field", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{MacroGroups: []string{"X", "Y"}, TurnsPerRoom: 4}
		SetDefaults(&cfg)
		require.Equal(t, []string{"X", "Y"}, cfg.MacroGroups)
		require.Equal(t, 3, cfg.RoomsPerMacroGroup)
		require.Equal(t, 4, cfg.TurnsPerRoom)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects duplicate macro-groups", func(t *testing.T) {
		cfg := Config{MacroGroups: []string{"A1", "A1"}, RoomsPerMacroGroup: 3, TurnsPerRoom: 2}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		cfg := Config{MacroGroups: []string{"A1"}, RoomsPerMacroGroup: -1, TurnsPerRoom: 2}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}
