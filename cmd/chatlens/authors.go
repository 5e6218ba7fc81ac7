package main

import (
	"fmt"
	"os"

	"chatlens/internal/core/transcript"

	"github.com/spf13/cobra"
)

func authorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors <export-file>",
		Short: "List the senders detected in an exported chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			col, err := transcript.Parse(string(raw))
			if err != nil {
				return err
			}

			for _, a := range col.Authors() {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}
	return cmd
}
