package reconcile

// DefaultChunkSize is the number of items processed per chunk.
const DefaultChunkSize = 100

// Outcome classifies what happened to a single batch item.
type Outcome string

const (
	// OutcomeInserted means the roll did not exist and a record was created.
	OutcomeInserted Outcome = "inserted"
	// OutcomeUpdated means an existing record was overwritten, even with identical content.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means a merge found a record but the write matched nothing,
	// because the record disappeared between the read and the write.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the item was rejected or a store call failed.
	OutcomeFailed Outcome = "failed"
)

// Options controls batch processing.
type Options struct {
	// ChunkSize is the number of items per chunk. Values <= 0 use DefaultChunkSize.
	ChunkSize int
}

// BatchResult is the outcome of one Apply call.
type BatchResult struct {
	// Success is true whenever the batch was accepted, even with item errors.
	Success bool `json:"success"`

	// Inserted counts items that created a new record.
	Inserted int `json:"inserted"`

	// Updated counts items whose write matched an existing record.
	Updated int `json:"updated"`

	// Failed counts items that ended up in Errors.
	Failed int `json:"failed"`

	// Total is the number of items submitted.
	Total int `json:"total"`

	// Errors holds one human readable message per failed item, in batch order.
	Errors []string `json:"errors"`
}

func (b *BatchResult) record(outcome Outcome, err error) {
	switch outcome {
	case OutcomeInserted:
		b.Inserted++
	case OutcomeUpdated:
		b.Updated++
	case OutcomeFailed:
		b.Failed++
		b.Errors = append(b.Errors, err.Error())
	}
}
