package clone

import (
	"context"
	"fmt"

	"github.com/clonelens/clonelens/internal/abi"
)

// ProfileJob builds one profile and delivers it tagged with its input
// position, so collection order never depends on scheduling.
type ProfileJob struct {
	Index   int
	Iface   abi.Interface
	Results chan<- ProfileResult
}

// ProfileResult carries a built profile back to its input slot.
type ProfileResult struct {
	Index   int
	Profile Profile
}

// Execute builds the profile.
func (j *ProfileJob) Execute(ctx context.Context) error {
	result := ProfileResult{Index: j.Index, Profile: BuildProfile(j.Iface)}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case j.Results <- result:
		return nil
	}
}

// BuildProfiles extracts profiles for all interfaces through the pool.
// Results land in input order regardless of completion order.
func BuildProfiles(ctx context.Context, pool *WorkerPool, ifaces []abi.Interface) ([]Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make(chan ProfileResult, len(ifaces))

	for i := range ifaces {
		job := &ProfileJob{Index: i, Iface: ifaces[i], Results: results}
		if err := pool.Submit(job); err != nil {
			return nil, fmt.Errorf("failed to submit profile job: %w", err)
		}
	}

	profiles := make([]Profile, len(ifaces))
	for received := 0; received < len(ifaces); received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-results:
			profiles[r.Index] = r.Profile
		}
	}

	return profiles, nil
}

// PairJob compares one profile pair.
type PairJob struct {
	Index   int
	A       Profile
	B       Profile
	Results chan<- PairResult
}

// PairResult carries one pair report back to its enumeration slot.
type PairResult struct {
	Index  int
	Report PairReport
}

// Execute compares the pair.
func (j *PairJob) Execute(ctx context.Context) error {
	result := PairResult{Index: j.Index, Report: Compare(j.A, j.B)}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case j.Results <- result:
		return nil
	}
}

// CompareAll produces the full ranked pair listing for the given profiles.
// Every unordered pair is computed, no pruning; ranking happens after the
// last result arrives, so ties keep pair enumeration order.
func CompareAll(ctx context.Context, pool *WorkerPool, profiles []Profile) ([]PairReport, error) {
	n := len(profiles)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 profiles, got %d", n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := n * (n - 1) / 2
	results := make(chan PairResult, total)

	index := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			job := &PairJob{Index: index, A: profiles[i], B: profiles[j], Results: results}
			index++
			if err := pool.Submit(job); err != nil {
				return nil, fmt.Errorf("failed to submit pair job: %w", err)
			}
		}
	}

	reports := make([]PairReport, total)
	for received := 0; received < total; received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-results:
			reports[r.Index] = r.Report
		}
	}

	Rank(reports)
	return reports, nil
}
