package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paysign",
		Short:         "Prepare and sign CSOB payment requests",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("env", ".env", "Path to the env file with merchant settings")

	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(stringCmd())
	rootCmd.AddCommand(verifyCmd())

	return rootCmd
}
