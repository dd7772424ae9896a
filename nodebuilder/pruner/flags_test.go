package pruner

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: DefaultConfig(),
		},
		{
			name: "windows and batch",
			args: []string{"--pruner.batch-size=10", "--pruner.ledger-window=100", "--pruner.state-window=50"},
			expected: Config{
				EnableLedger: true,
				EnableState:  true,
				BatchSize:    10,
				LedgerWindow: 100,
				StateWindow:  50,
			},
		},
		{
			name: "disabled domains",
			args: []string{"--pruner.disable-ledger", "--pruner.disable-state=true"},
			expected: func() Config {
				cfg := DefaultConfig()
				cfg.EnableLedger = false
				cfg.EnableState = false
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().AddFlagSet(Flags())
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := DefaultConfig()
			require.NoError(t, ParseFlags(cmd, &cfg))
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.BatchSize = 0
	require.Error(t, cfg.Validate())
}
