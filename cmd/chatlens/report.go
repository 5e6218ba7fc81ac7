package main

import (
	"context"
	"encoding/json"
	"os"

	"chatlens/internal/core/analyze"
	"chatlens/internal/core/emojis"
	"chatlens/internal/core/links"
	"chatlens/internal/core/stopwords"
	"chatlens/internal/services/api/analytics/domain"
	ansvc "chatlens/internal/services/api/analytics/service"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var author, stopwordsPath string
	var compact bool

	cmd := &cobra.Command{
		Use:   "report <export-file>",
		Short: "Run the full aggregation suite over an exported chat",
		Long:  `Parses the export, runs every aggregation (summary, rankings, timelines, activity grids), and prints the bundle as JSON on stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			svc := newService(stopwordsPath)
			rep, err := svc.Report(context.Background(), domain.AnalyzeInput{
				Content: string(raw),
				Author:  author,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(rep)
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Narrow the report to one sender")
	cmd.Flags().StringVar(&stopwordsPath, "stopwords", "", "Stop-word file overriding the embedded list")
	cmd.Flags().BoolVar(&compact, "compact", false, "Emit compact JSON")

	return cmd
}

// newService builds the analytics service the same way the API does
func newService(stopwordsPath string) ansvc.Service {
	stop := stopwords.Load(stopwordsPath)
	return ansvc.New(analyze.New(links.New(), emojis.New(), stop))
}
