package cmd

import (
	"context"
	"fmt"

	"result-checker/core/importer"
	"result-checker/core/results"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadFile string
	uploadMode string
)

// uploadCmd reconciles a local batch file against the store.
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a JSON or CSV batch of results",
	Long: `Reads a batch file and reconciles it against the store.

JSON files hold {"results": [...]} or a bare array. CSV files need a header
row with at least a roll column; s lists subject codes separated by ';'.

Examples:
  # Merge a batch (default)
  result-checker upload --file results.json

  # Replace every record in the batch
  result-checker upload --file results.csv --mode replace`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Batch file (.json or .csv)")
	uploadCmd.Flags().StringVar(&uploadMode, "mode", "", "Force upload mode for every item (merge or replace)")
	_ = uploadCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(uploadCmd)
}

func parseMode(mode string) (results.UploadMode, error) {
	switch results.UploadMode(mode) {
	case "":
		return "", nil
	case results.ModeMerge, results.ModeReplace:
		return results.UploadMode(mode), nil
	default:
		return "", fmt.Errorf("invalid --mode %q: expected merge or replace", mode)
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(uploadMode)
	if err != nil {
		return err
	}

	items, err := importer.ParseFile(uploadFile)
	if err != nil {
		return err
	}
	if mode != "" {
		importer.ForceMode(items, mode)
	}

	ctx := context.Background()
	s, err := setup(ctx, true, connectTimeout)
	if err != nil {
		return err
	}
	defer s.close()

	s.log.Info("Uploading batch", zap.String("file", uploadFile), zap.Int("items", len(items)))
	res, err := s.reconciler().Apply(ctx, items)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	logBatch(s.log, res)
	return nil
}
