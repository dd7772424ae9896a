package ledger

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var txnCacheSizeFlag = "ledger.txn-cache-size"

// Flags gives a set of hardcoded ledger module flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.Int(
		txnCacheSizeFlag,
		DefaultConfig().TxnCacheSize,
		"Amount of recently read transactions kept in memory",
	)
	return flags
}

// ParseFlags parses ledger flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) error {
	if !cmd.Flags().Changed(txnCacheSizeFlag) {
		return nil
	}
	size, err := cmd.Flags().GetInt(txnCacheSizeFlag)
	if err != nil {
		return err
	}
	cfg.TxnCacheSize = size
	return nil
}
