package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/celestiaorg/ledger-node/nodebuilder"
)

// Init constructs a CLI command to initialize Ledger Node with the given flags.
func Init(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialization for Ledger Node. Passed flags have persisted effect.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return nodebuilder.Init(NodeConfig(ctx), StorePath(ctx))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}

// RemoveConfig constructs a CLI command to remove the config of an initialized store.
func RemoveConfig(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-remove",
		Short: "Deletes the node's config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return nodebuilder.RemoveConfig(StorePath(cmd.Context()))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}

// UpdateConfig constructs a CLI command to fill the config with fields
// introduced by newer versions of the node.
func UpdateConfig(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-update",
		Short: "Updates the node's outdated config",
		Long: "Updates the node's outdated config with default values from newly-added fields. Check the config " +
			" afterwards to ensure all old custom values were preserved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return nodebuilder.UpdateConfig(StorePath(cmd.Context()))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}
