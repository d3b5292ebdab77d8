package stats

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"result-checker/core/results"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// NotApplicable is reported as the average when no record has a usable CGPA.
	NotApplicable = "N/A"
	// TopSubjectLimit is the number of subjects kept in a snapshot.
	TopSubjectLimit = 10
	// ScanTimeout bounds a shared scan once it no longer follows its caller.
	ScanTimeout = time.Minute
)

// SubjectCount is how many records are referred in one subject.
type SubjectCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// Snapshot is a point-in-time summary of the corpus.
type Snapshot struct {
	Total       int            `json:"total"`
	Passed      int            `json:"passed"`
	Failed      int            `json:"failed"`
	AvgCGPA     string         `json:"avgCGPA"`
	TopSubjects []SubjectCount `json:"topSubjects"`
}

// Aggregator computes snapshots from a results store.
type Aggregator struct {
	store  results.Store
	logger *zap.Logger
	sf     singleflight.Group
}

// New creates an Aggregator.
func New(store results.Store, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{store: store, logger: logger}
}

// Summarize scans the whole store and returns a fresh snapshot.
// A store that cannot be reached yields ErrStoreUnavailable.
//
// Concurrent calls share one scan. The scan is detached from the caller that
// started it, so one caller giving up does not fail the others; each caller
// still returns as soon as its own ctx ends.
func (a *Aggregator) Summarize(ctx context.Context) (*Snapshot, error) {
	ch := a.sf.DoChan("summary", func() (any, error) {
		scanCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ScanTimeout)
		defer cancel()

		records, err := a.store.ScanAll(scanCtx)
		if err != nil {
			return nil, err
		}
		return Compute(records), nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("summarize results: %w", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("summarize results: %w", res.Err)
	}

	snap := res.Val.(*Snapshot)
	a.logger.Debug("Statistics computed",
		zap.Int("total", snap.Total),
		zap.Int("passed", snap.Passed),
		zap.Int("failed", snap.Failed),
		zap.Bool("shared", res.Shared),
	)
	return snap.clone(), nil
}

// Compute derives a snapshot from records in a single pass.
func Compute(records []results.Record) *Snapshot {
	snap := &Snapshot{
		Total:       len(records),
		AvgCGPA:     NotApplicable,
		TopSubjects: []SubjectCount{},
	}
	if len(records) == 0 {
		return snap
	}

	var (
		cgpaSum   float64
		cgpaCount int
		// counts is indexed by position in seen so ties keep scan order.
		seen   = make(map[string]int)
		counts []SubjectCount
	)

	for _, r := range records {
		if r.IsReferred() {
			snap.Failed++
		} else {
			snap.Passed++
		}

		if c, ok := r.CGPA(); ok {
			cgpaSum += c
			cgpaCount++
		}

		for _, code := range r.Subjects() {
			idx, ok := seen[code]
			if !ok {
				idx = len(counts)
				seen[code] = idx
				counts = append(counts, SubjectCount{Code: code})
			}
			counts[idx].Count++
		}
	}

	if cgpaCount > 0 {
		snap.AvgCGPA = strconv.FormatFloat(cgpaSum/float64(cgpaCount), 'f', 2, 64)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > TopSubjectLimit {
		counts = counts[:TopSubjectLimit]
	}
	snap.TopSubjects = append(snap.TopSubjects, counts...)

	return snap
}

func (s *Snapshot) clone() *Snapshot {
	cp := *s
	cp.TopSubjects = append([]SubjectCount{}, s.TopSubjects...)
	return &cp
}
