// Package reconcile applies bulk result uploads to the results store.
//
// Each incoming record is reconciled against the stored record with the same
// roll, one item at a time:
//
//   - replace: the incoming record is upserted verbatim, dropping every stored field
//   - merge (default): a new roll is inserted as-is; an existing record keeps all
//     of its fields except c, g1..g8 and s, which are overwritten when the
//     incoming record carries them
//
// # Failure domains
//
// A batch is only rejected as a whole when it is empty or the store cannot be
// reached before processing starts. After that every problem is confined to
// its item and reported in BatchResult.Errors; the remaining items still run.
//
// # Chunking
//
// Items are walked in fixed-size chunks purely to pace the store. Chunk
// boundaries are where cancellation is observed; they never change results.
//
// # Concurrency
//
// The reconciler holds no locks. Merge is a read followed by a full-record
// write, so two batches merging the same roll at the same moment can lose one
// side's fields. The store's unique roll index and atomic single-record
// writes are the only guarantees; last writer wins.
//
// # Usage Example
//
//	r := reconcile.New(store, logger, reconcile.Options{ChunkSize: 100})
//	res, err := r.Apply(ctx, items)
//	if errors.Is(err, results.ErrValidation) {
//	    // reject request
//	}
//	fmt.Println(res.Inserted, res.Updated, res.Errors)
package reconcile
