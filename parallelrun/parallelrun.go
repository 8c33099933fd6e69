// Package parallelrun partitions a fixed-size job into contiguous chunks
// and runs them across a worker pool: each job gets n/workers indices
// (rounded down), job i starting at i*(n/workers), and the last job also
// takes the remainder.
package parallelrun

import (
	"runtime"

	"github.com/grailbio/base/traverse"
)

// Workers returns the default worker count for a parallel run: the number
// of logical CPUs, matching pileup/snp's runtime.NumCPU() fallback when no
// explicit parallelism is configured.
func Workers() int { return runtime.NumCPU() }

// bounds returns the half-open [start, end) chunk of [0, n) owned by job
// jobIdx of workers total jobs.
func bounds(n, workers, jobIdx int) (int, int) {
	chunk := n / workers
	start := jobIdx * chunk
	end := start + chunk
	if jobIdx == workers-1 {
		end = n
	}
	return start, end
}

// ForEach calls fn(i) for every i in [0, n), distributed across workers
// goroutines, and returns the first error encountered (if any).
func ForEach(n, workers int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	return traverse.Each(workers, func(jobIdx int) error {
		start, end := bounds(n, workers, jobIdx)
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	})
}

// Transform applies fn to every element of in, in parallel, preserving
// order: result[i] = fn(in[i]).
func Transform[T, U any](in []T, workers int, fn func(T) U) []U {
	out := make([]U, len(in))
	_ = ForEach(len(in), workers, func(i int) error {
		out[i] = fn(in[i])
		return nil
	})
	return out
}

// TransformFilter applies fn to every element of in, in parallel, keeping
// only the results where ok is true. Input order is preserved among
// surviving elements; each worker accumulates its own slice so no locking
// is needed on the hot path, then results are concatenated in job order.
func TransformFilter[T, U any](in []T, workers int, fn func(T) (U, bool)) []U {
	if len(in) == 0 {
		return nil
	}
	if workers <= 0 || workers > len(in) {
		workers = len(in)
		if workers > Workers() {
			workers = Workers()
		}
		if workers < 1 {
			workers = 1
		}
	}

	partials := make([][]U, workers)
	_ = traverse.Each(workers, func(jobIdx int) error {
		start, end := bounds(len(in), workers, jobIdx)
		var local []U
		for i := start; i < end; i++ {
			if u, ok := fn(in[i]); ok {
				local = append(local, u)
			}
		}
		partials[jobIdx] = local
		return nil
	})

	total := 0
	for _, p := range partials {
		total += len(p)
	}
	out := make([]U, 0, total)
	for _, p := range partials {
		out = append(out, p...)
	}
	return out
}

// Reduce folds in, in parallel chunks, combining each worker's partial
// result with combine in worker order (so combine need not be
// commutative, only associative).
func Reduce[T, A any](in []T, workers int, zero A, fn func(A, T) A, combine func(A, A) A) A {
	if len(in) == 0 {
		return zero
	}
	if workers <= 0 {
		workers = Workers()
	}
	if workers > len(in) {
		workers = len(in)
	}

	partials := make([]A, workers)
	_ = traverse.Each(workers, func(jobIdx int) error {
		start, end := bounds(len(in), workers, jobIdx)
		acc := zero
		for i := start; i < end; i++ {
			acc = fn(acc, in[i])
		}
		partials[jobIdx] = acc
		return nil
	})

	acc := zero
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
