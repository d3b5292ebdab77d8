package reconcile

import (
	"context"
	"fmt"

	"result-checker/core/results"

	"go.uber.org/zap"
)

// mergeFields are the only fields a merge copies from the incoming record.
var mergeFields = []string{
	results.FieldCGPA,
	"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8",
	results.FieldSubjects,
}

// Reconciler applies upload batches to a results store.
type Reconciler struct {
	store     results.Store
	logger    *zap.Logger
	chunkSize int
}

// New creates a Reconciler.
func New(store results.Store, logger *zap.Logger, opts Options) *Reconciler {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		store:     store,
		logger:    logger,
		chunkSize: chunkSize,
	}
}

// Apply reconciles every item of batch against the store.
//
// It fails as a whole only for an empty batch (ErrValidation) or an
// unreachable store (ErrStoreUnavailable). Otherwise it returns a result whose
// counts and Errors describe each item.
func (r *Reconciler) Apply(ctx context.Context, batch []results.UploadItem) (*BatchResult, error) {
	if len(batch) == 0 {
		return nil, results.NewValidationError("No results")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("apply batch: %w", results.Unavailable(err))
	}

	r.logger.Info("Applying upload batch", zap.Int("items", len(batch)), zap.Int("chunk_size", r.chunkSize))

	res := &BatchResult{
		Success: true,
		Total:   len(batch),
		Errors:  []string{},
	}

	for start := 0; start < len(batch); start += r.chunkSize {
		end := min(start+r.chunkSize, len(batch))

		if err := ctx.Err(); err != nil {
			// Already-written items stay written; the rest are reported, not attempted.
			for _, item := range batch[start:] {
				res.record(OutcomeFailed, &results.ItemError{Roll: item.RawRoll(), Err: err})
			}
			r.logger.Warn("Upload batch cancelled", zap.Int("remaining", len(batch)-start), zap.Error(err))
			break
		}

		for _, item := range batch[start:end] {
			outcome, err := r.applyItem(ctx, item)
			if err != nil {
				r.logger.Warn("Upload item failed", zap.Error(err))
			}
			res.record(outcome, err)
		}
	}

	r.logger.Info("Upload batch complete",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
		zap.Int("total", res.Total),
	)

	return res, nil
}

// applyItem validates and writes a single item.
func (r *Reconciler) applyItem(ctx context.Context, item results.UploadItem) (Outcome, error) {
	raw := item.RawRoll()
	roll, ok := raw.(string)
	if !ok || !results.ValidRoll(roll) {
		return OutcomeFailed, &results.ItemError{Roll: raw, Err: results.ErrInvalidRoll}
	}

	clean := item.Clean()

	var (
		outcome Outcome
		err     error
	)
	switch item.Mode() {
	case results.ModeReplace:
		outcome, err = r.replace(ctx, roll, clean)
	default:
		outcome, err = r.merge(ctx, roll, clean)
	}
	if err != nil {
		return OutcomeFailed, &results.ItemError{Roll: roll, Err: err}
	}

	r.logger.Debug("Upload item applied",
		zap.String("roll", roll),
		zap.String("mode", string(item.Mode())),
		zap.String("outcome", string(outcome)),
	)
	return outcome, nil
}

// replace upserts clean as the full record for roll.
func (r *Reconciler) replace(ctx context.Context, roll string, clean results.Record) (Outcome, error) {
	res, err := r.store.ReplaceOne(ctx, roll, clean, true)
	if err != nil {
		return OutcomeFailed, err
	}
	if res.Upserted {
		return OutcomeInserted, nil
	}
	return OutcomeUpdated, nil
}

// merge inserts clean when roll is new, otherwise overlays its known fields
// onto the stored record and writes the result back.
func (r *Reconciler) merge(ctx context.Context, roll string, clean results.Record) (Outcome, error) {
	existing, err := r.store.FindByKey(ctx, roll)
	if err != nil {
		return OutcomeFailed, err
	}

	if existing == nil {
		if err := r.store.InsertOne(ctx, clean); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeInserted, nil
	}

	merged := MergeRecords(existing, clean)
	res, err := r.store.ReplaceOne(ctx, roll, merged, false)
	if err != nil {
		return OutcomeFailed, err
	}
	if !res.Matched {
		r.logger.Warn("Merge target vanished before write", zap.String("roll", roll))
		return OutcomeSkipped, nil
	}
	return OutcomeUpdated, nil
}

// MergeRecords returns a copy of existing with c, g1..g8 and s taken from
// incoming wherever incoming carries them. A provided s replaces the stored
// list wholesale. Every other stored field is kept; other incoming fields
// are ignored.
func MergeRecords(existing, incoming results.Record) results.Record {
	merged := existing.Clone()
	if merged == nil {
		merged = results.Record{}
	}
	src := incoming.Clone()
	for _, field := range mergeFields {
		if v, ok := src[field]; ok {
			merged[field] = v
		}
	}
	return merged
}
