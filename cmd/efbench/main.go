// efbench measures construction time, the total time of a batch of random
// queries (--queries of them; the time is not divided per query), and
// space usage (in bits per element) of the eliasfano package's sequence
// types, across a range of sizes sharing one upper bound.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/vigna/eliasfano/pkg/eliasfano"
)

// config holds the benchmark's command-line configuration.
type config struct {
	sizes      []int
	upperBound uint64
	queries    int
	seed       int64
	asJSON     bool
}

// result holds one structure's measurements for one size.
type result struct {
	Structure     string        `json:"structure"`
	N             int           `json:"n"`
	BuildTime     time.Duration `json:"build_time_ns"` //nolint:tagliatelle
	QueryTime     time.Duration `json:"query_time_ns"` //nolint:tagliatelle
	BitsPerValue  float64       `json:"bits_per_value"`
	TotalBitBytes int           `json:"total_bytes"`
}

func main() {
	flagSet := flag.NewFlagSet("efbench", flag.ExitOnError)

	sizes := flagSet.IntSlice("sizes", []int{1_000, 100_000, 1_000_000}, "sequence sizes to benchmark")
	upperBound := flagSet.Uint64("upper-bound", 1<<32, "upper bound for generated monotone sequences")
	queries := flagSet.Int("queries", 10_000, "number of random queries per structure")
	seed := flagSet.Int64("seed", 1, "random seed")
	asJSON := flagSet.Bool("json", false, "report results as JSON instead of a table")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "efbench:", err)
		os.Exit(1)
	}

	cfg := config{sizes: *sizes, upperBound: *upperBound, queries: *queries, seed: *seed, asJSON: *asJSON}

	results := run(cfg)

	if cfg.asJSON {
		reportJSON(results)
	} else {
		report(results)
	}
}

func run(cfg config) []result {
	rng := rand.New(rand.NewSource(cfg.seed))

	var out []result

	for _, n := range cfg.sizes {
		vals := monotoneSequence(rng, n, cfg.upperBound)

		out = append(out, benchIndexedMonotone(vals, cfg.upperBound, cfg.queries, rng))
		out = append(out, benchLongBigList(vals, cfg.queries, rng))
		out = append(out, benchTwoSizes(vals, cfg.queries, rng))
	}

	return out
}

func monotoneSequence(rng *rand.Rand, n int, u uint64) []int64 {
	vals := make([]int64, n)

	var cur uint64

	if n == 0 {
		return vals
	}

	step := u / uint64(n+1)

	for i := range vals {
		if step > 0 {
			cur += uint64(rng.Int63n(int64(step) + 1))
		}

		if cur > u {
			cur = u
		}

		vals[i] = int64(cur)
	}

	return vals
}

func benchIndexedMonotone(vals []int64, u uint64, queries int, rng *rand.Rand) result {
	start := time.Now()

	seq, err := eliasfano.NewIndexedMonotoneLongBigList(u, len(vals), eliasfano.SliceIterator(vals))
	if err != nil {
		panic(err)
	}

	buildTime := time.Since(start)

	start = time.Now()

	for i := 0; i < queries; i++ {
		q := int64(rng.Int63n(int64(u) + 1))
		_ = seq.Successor(q)
	}

	queryTime := time.Since(start)

	bits := seq.SpaceBits()

	return result{
		Structure:     "EliasFanoIndexedMonotoneLongBigList",
		N:             len(vals),
		BuildTime:     buildTime,
		QueryTime:     queryTime,
		BitsPerValue:  bitsPerValue(bits, len(vals)),
		TotalBitBytes: bits / 8,
	}
}

func benchLongBigList(vals []int64, queries int, rng *rand.Rand) result {
	start := time.Now()

	l, err := eliasfano.NewLongBigList(0, eliasfano.SliceIterator(vals))
	if err != nil {
		panic(err)
	}

	buildTime := time.Since(start)

	start = time.Now()

	n := l.Len()

	for i := 0; i < queries && n > 0; i++ {
		_ = l.Get(rng.Intn(n))
	}

	queryTime := time.Since(start)

	bits := l.SpaceBits()

	return result{
		Structure:     "EliasFanoLongBigList",
		N:             n,
		BuildTime:     buildTime,
		QueryTime:     queryTime,
		BitsPerValue:  bitsPerValue(bits, n),
		TotalBitBytes: bits / 8,
	}
}

func benchTwoSizes(vals []int64, queries int, rng *rand.Rand) result {
	start := time.Now()

	l, err := eliasfano.NewTwoSizesLongBigList(vals)
	if err != nil {
		panic(err)
	}

	buildTime := time.Since(start)

	start = time.Now()

	n := l.Len()

	for i := 0; i < queries && n > 0; i++ {
		_ = l.Get(rng.Intn(n))
	}

	queryTime := time.Since(start)

	bits := l.SpaceBits()

	return result{
		Structure:     "TwoSizesLongBigList",
		N:             n,
		BuildTime:     buildTime,
		QueryTime:     queryTime,
		BitsPerValue:  bitsPerValue(bits, n),
		TotalBitBytes: bits / 8,
	}
}

func bitsPerValue(totalBits, n int) float64 {
	if n == 0 {
		return 0
	}

	return float64(totalBits) / float64(n)
}

func report(results []result) {
	fmt.Printf("%-38s %10s %14s %14s %12s %12s\n", "structure", "n", "build", "queries", "bits/value", "bytes")

	for _, r := range results {
		fmt.Printf("%-38s %10d %14s %14s %12.2f %12d\n",
			r.Structure, r.N, r.BuildTime.Round(time.Microsecond), r.QueryTime.Round(time.Microsecond),
			r.BitsPerValue, r.TotalBitBytes)
	}
}

func reportJSON(results []result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(results); err != nil {
		fmt.Fprintln(os.Stderr, "efbench:", err)
		os.Exit(1)
	}
}
