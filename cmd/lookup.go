package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"result-checker/core/results"

	"github.com/spf13/cobra"
)

// lookupCmd prints one record as JSON.
var lookupCmd = &cobra.Command{
	Use:   "lookup <roll>",
	Short: "Print the result record for a roll number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roll := args[0]
		if !results.ValidRoll(roll) {
			return fmt.Errorf("invalid roll number %q: expected 6 digits", roll)
		}

		ctx := context.Background()
		s, err := setup(ctx, true, connectTimeout)
		if err != nil {
			return err
		}
		defer s.close()

		rec, err := s.backend.FindByKey(ctx, roll)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("roll %s: %w", roll, results.ErrNotFound)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
}
