package main

import (
	"fmt"
	"os"

	"chatlens/internal/core/version"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "chatlens",
		Short:   "Analyze exported chat transcripts from the command line",
		Version: version.Info().Version,
	}

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(authorsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
