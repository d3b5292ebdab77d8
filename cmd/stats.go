package cmd

import (
	"context"
	"encoding/json"
	"os"

	"result-checker/core/stats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsJSON bool

// statsCmd prints the aggregate statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print pass/fail counts, average CGPA and top referred subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := setup(ctx, true, connectTimeout)
		if err != nil {
			return err
		}
		defer s.close()

		snap, err := stats.New(s.backend, s.log).Summarize(ctx)
		if err != nil {
			return err
		}

		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		s.log.Info("Statistics",
			zap.Int("total", snap.Total),
			zap.Int("passed", snap.Passed),
			zap.Int("failed", snap.Failed),
			zap.String("avg_cgpa", snap.AvgCGPA),
		)
		for i, sc := range snap.TopSubjects {
			s.log.Info("Top subject", zap.Int("rank", i+1), zap.String("code", sc.Code), zap.Int("count", sc.Count))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the snapshot as JSON")
	RootCmd.AddCommand(statsCmd)
}
