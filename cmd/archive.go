package cmd

import (
	"context"
	"fmt"

	"result-checker/core/storage"
	"result-checker/feature/archive"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importMode string

// exportCmd writes a snapshot of the corpus to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all results as a JSON snapshot to the archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, svc, err := archiveSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		res, err := svc.Export(ctx)
		if err != nil {
			return err
		}
		s.log.Info("Snapshot written",
			zap.String("bucket", res.Bucket),
			zap.String("object", res.Object),
			zap.Int("records", res.Records),
		)
		return nil
	},
}

// importCmd applies a batch object from the archive bucket.
var importCmd = &cobra.Command{
	Use:   "import <object>",
	Short: "Import a JSON or CSV batch object from the archive bucket",
	Long: `Reads a batch object from the archive bucket and reconciles it against the store.

Examples:
  result-checker import batches/2026-regular.csv
  result-checker import snapshots/results-20260101T000000Z-1a2b3c4d.json --mode replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseMode(importMode)
		if err != nil {
			return err
		}

		ctx := context.Background()
		s, svc, err := archiveSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		res, err := svc.Import(ctx, args[0], mode)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		logBatch(s.log, res)
		return nil
	},
}

func archiveSession(ctx context.Context) (*session, *archive.Service, error) {
	s, err := setup(ctx, true, connectTimeout)
	if err != nil {
		return nil, nil, err
	}

	client, err := storage.NewClient(s.cfg.Storage)
	if err != nil {
		s.close()
		return nil, nil, err
	}

	svc := archive.NewService(client, s.cfg.Storage.Bucket, s.cfg.Storage.Region, s.backend, s.reconciler(), s.log)
	return s, svc, nil
}

func init() {
	importCmd.Flags().StringVar(&importMode, "mode", "", "Force upload mode for every item (merge or replace)")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
}
