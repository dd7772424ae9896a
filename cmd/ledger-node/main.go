package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	cmdnode "github.com/celestiaorg/ledger-node/cmd"
)

func init() {
	rootCmd.AddCommand(
		withEnv(cmdnode.Init(cmdnode.Flags()...)),
		withEnv(cmdnode.Start(cmdnode.Flags()...)),
		withEnv(cmdnode.UpdateConfig(cmdnode.Flags()...)),
		withEnv(cmdnode.RemoveConfig(cmdnode.Flags()...)),
		versionCmd,
	)
	rootCmd.SetHelpCommand(&cobra.Command{})
}

func main() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	return rootCmd.ExecuteContext(context.Background())
}

var rootCmd = &cobra.Command{
	Use:   "ledger-node [subcommand]",
	Short: "Versioned ledger storage node with background pruning",
	Args:  cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// withEnv makes the command parse its flags into the environment before running.
func withEnv(cmd *cobra.Command) *cobra.Command {
	cmd.PersistentPreRunE = cmdnode.PersistentPreRunEnv
	return cmd
}
