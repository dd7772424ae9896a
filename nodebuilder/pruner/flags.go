package pruner

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/celestiaorg/ledger-node/pruner"
)

var (
	batchSizeFlag     = "pruner.batch-size"
	ledgerWindowFlag  = "pruner.ledger-window"
	stateWindowFlag   = "pruner.state-window"
	disableLedgerFlag = "pruner.disable-ledger"
	disableStateFlag  = "pruner.disable-state"
)

// Flags gives a set of hardcoded pruner module flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.Uint64(
		batchSizeFlag,
		pruner.DefaultBatchSize,
		"Max amount of versions pruned per domain in one cycle",
	)
	flags.Uint64(
		ledgerWindowFlag,
		pruner.DefaultLedgerPruneWindow,
		"Amount of recent versions of transactions and events to keep",
	)
	flags.Uint64(
		stateWindowFlag,
		pruner.DefaultStatePruneWindow,
		"Amount of recent versions of the state to keep",
	)
	flags.Bool(
		disableLedgerFlag,
		false,
		"Disables pruning of transactions and events. "+
			"Note that a node which pruned the ledger before cannot disable it.",
	)
	flags.Bool(
		disableStateFlag,
		false,
		"Disables pruning of the state. "+
			"Note that a node which pruned the state before cannot disable it.",
	)
	return flags
}

// ParseFlags parses pruner flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) error {
	if cmd.Flags().Changed(batchSizeFlag) {
		size, err := cmd.Flags().GetUint64(batchSizeFlag)
		if err != nil {
			return err
		}
		cfg.BatchSize = size
	}
	if cmd.Flags().Changed(ledgerWindowFlag) {
		window, err := cmd.Flags().GetUint64(ledgerWindowFlag)
		if err != nil {
			return err
		}
		cfg.LedgerWindow = window
	}
	if cmd.Flags().Changed(stateWindowFlag) {
		window, err := cmd.Flags().GetUint64(stateWindowFlag)
		if err != nil {
			return err
		}
		cfg.StateWindow = window
	}
	if cmd.Flags().Changed(disableLedgerFlag) {
		disabled, err := cmd.Flags().GetBool(disableLedgerFlag)
		if err != nil {
			return err
		}
		cfg.EnableLedger = !disabled
	}
	if cmd.Flags().Changed(disableStateFlag) {
		disabled, err := cmd.Flags().GetBool(disableStateFlag)
		if err != nil {
			return err
		}
		cfg.EnableState = !disabled
	}
	return nil
}
