// Command vecadd runs the SIMD array-addition exercise.
//
// Usage:
//
//	vecadd [flags]
//
// It initializes the input arrays, computes the scalar reference, then runs
// each vector path (SSE, AVX, and "auto", the widest the CPU supports) and
// checks it against the reference. For every
// path it prints the result of both comparators, the time per call and the
// speedup over the scalar loop.
//
// Examples:
//
//	vecadd
//	vecadd -n 10
//	vecadd -n 1000003 -iter 200 -kernel avx
//	vecadd -generic
//	vecadd -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-vecadd/arrayadd"
	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd"
)

const auto = "auto"

type pathEntry struct {
	name string
	add  func(*arrayadd.Buffers) arrayadd.Status
}

var paths = []pathEntry{
	{vecadd.Generic, func(b *arrayadd.Buffers) arrayadd.Status { return b.AddWith(vecadd.Generic) }},
	{vecadd.SSE, (*arrayadd.Buffers).AddSSE},
	{vecadd.AVX, (*arrayadd.Buffers).AddAVX},
	{auto, (*arrayadd.Buffers).AddAuto},
}

// describe returns the table name and lane count of a path. Lane counts come
// from the kernel registry; the auto path reports the kernel it dispatched to.
func (p pathEntry) describe() (string, int) {
	if p.name == auto {
		name, lanes := vecadd.Selected()
		return auto + "(" + name + ")", lanes
	}
	return p.name, vecadd.Lanes(p.name)
}

func main() {
	n := flag.Int("n", arrayadd.DefaultLength, "array length M")
	iter := flag.Int("iter", 1000, "timed repetitions per path")
	kernel := flag.String("kernel", "", "run only this vector path (see -list)")
	list := flag.Bool("list", false, "list vector paths and CPU support")
	forceGeneric := flag.Bool("generic", false, "disable SIMD kernels as if the CPU had none")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecadd [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the scalar, SSE and AVX array additions and compares them.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecadd -n 10\n")
		fmt.Fprintf(os.Stderr, "  vecadd -kernel avx -iter 200\n")
		fmt.Fprintf(os.Stderr, "  vecadd -list\n")
	}
	flag.Parse()

	if *n < 0 {
		fmt.Fprintf(os.Stderr, "error: -n must be non-negative, got %d\n", *n)
		os.Exit(2)
	}
	if *iter < 1 {
		fmt.Fprintf(os.Stderr, "error: -iter must be at least 1, got %d\n", *iter)
		os.Exit(2)
	}

	// Must precede the first dispatch: the auto path caches its kernel.
	if *forceGeneric {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	}

	if *list {
		printList(os.Stdout)
		return
	}

	selected, err := selectPaths(*kernel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	results := runExercise(*n, *iter, selected)
	printResults(os.Stdout, *n, results)

	for _, r := range results {
		if r.output == arrayadd.StatusMismatch {
			os.Exit(1)
		}
	}
}

func printList(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "arch: %s\n", f.Architecture)
	for _, name := range vecadd.Names() {
		_, _, ok := vecadd.Kernel(name)
		support := "unsupported"
		if ok {
			support = "supported"
		}
		fmt.Fprintf(w, "%-8s %d lanes  %s\n", name, vecadd.Lanes(name), support)
	}
	name, lanes := vecadd.Selected()
	fmt.Fprintf(w, "%-8s %d lanes  uses %s\n", auto, lanes, name)
}

func selectPaths(kernel string) ([]pathEntry, error) {
	kernel = strings.ToLower(strings.TrimSpace(kernel))
	if kernel == "" {
		return paths, nil
	}
	for _, p := range paths {
		if p.name == kernel {
			return []pathEntry{p}, nil
		}
	}
	return nil, fmt.Errorf("unknown kernel %q (use -list to see available)", kernel)
}

type result struct {
	pathEntry
	label   string
	lanes   int
	add     arrayadd.Status
	output  arrayadd.Status // CompareOutput on the path's own result
	compare arrayadd.Status // Compare, which recomputes Test2 first
	perCall time.Duration
	speedup float64
	report  arrayadd.Report
}

// runExercise follows the exercise sequence for each path: initialize,
// scalar reference, vector add, then both comparators. Compare runs last
// because it overwrites Test2.
func runExercise(m, iter int, selected []pathEntry) []result {
	b := arrayadd.New(m)
	b.Initialize()
	scalar := timeCalls(iter, func() { b.AddDefault() })

	results := make([]result, 0, len(selected))
	for _, p := range selected {
		b.Initialize()
		b.AddDefault()

		r := result{pathEntry: p, add: p.add(b)}
		r.label, r.lanes = p.describe()
		if r.add == arrayadd.StatusUnsupported {
			results = append(results, r)
			continue
		}

		r.perCall = timeCalls(iter, func() { p.add(b) })
		if r.perCall > 0 {
			r.speedup = float64(scalar) / float64(r.perCall)
		}
		r.output = b.CompareOutput()
		r.report = b.Diagnose()
		r.compare = b.Compare()
		results = append(results, r)
	}
	return results
}

func timeCalls(iter int, fn func()) time.Duration {
	start := time.Now()
	for i := 0; i < iter; i++ {
		fn()
	}
	return time.Since(start) / time.Duration(iter)
}

func printResults(w io.Writer, m int, results []result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tLanes\tM\tOutput\tCompare\tns/call\tSpeedup\tMax |diff|\tMax rounding\tFirst mismatch\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t-\t------\t-------\t-------\t-------\t----------\t------------\t--------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, r := range results {
		var err error
		if r.add == arrayadd.StatusUnsupported {
			_, err = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t-\t-\t-\t-\t-\t-\n", r.label, r.lanes, m, r.add)
		} else {
			mismatch := "-"
			if r.report.FirstMismatch >= 0 {
				mismatch = fmt.Sprintf("%d", r.report.FirstMismatch)
			}
			_, err = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\t%.2fx\t%.3g\t%.3g\t%s\n",
				r.label,
				r.lanes,
				m,
				r.output,
				r.compare,
				r.perCall.Nanoseconds(),
				r.speedup,
				r.report.MaxAbsDiff,
				r.report.MaxRoundingError,
				mismatch,
			)
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
