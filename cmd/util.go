package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/celestiaorg/ledger-node/nodebuilder/gateway"
	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
	"github.com/celestiaorg/ledger-node/nodebuilder/pruner"
)

// Flags returns every flag set the node commands accept.
func Flags() []*flag.FlagSet {
	return []*flag.FlagSet{
		NodeFlags(),
		MiscFlags(),
		ledger.Flags(),
		pruner.Flags(),
		gateway.Flags(),
	}
}

// PersistentPreRunEnv loads the existing config into the command's context and
// overrides it with the values of the passed flags.
func PersistentPreRunEnv(cmd *cobra.Command, _ []string) error {
	var (
		ctx = cmd.Context()
		err error
	)

	// loads existing config into the environment
	ctx, err = ParseNodeFlags(ctx, cmd)
	if err != nil {
		return err
	}

	cfg := NodeConfig(ctx)

	err = ledger.ParseFlags(cmd, &cfg.Ledger)
	if err != nil {
		return err
	}

	err = pruner.ParseFlags(cmd, &cfg.Pruner)
	if err != nil {
		return err
	}

	gateway.ParseFlags(cmd, &cfg.Gateway)

	ctx, err = ParseMiscFlags(ctx, cmd)
	if err != nil {
		return err
	}

	// set config
	ctx = WithNodeConfig(ctx, &cfg)
	cmd.SetContext(ctx)
	return nil
}

// WithFlagSet adds the given flagset to the command.
func WithFlagSet(fset []*flag.FlagSet) func(*cobra.Command) {
	return func(c *cobra.Command) {
		for _, set := range fset {
			c.Flags().AddFlagSet(set)
		}
	}
}
