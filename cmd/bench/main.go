package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/lzindex/rightmost"
)

type variant struct {
	name   string
	config func(*rightmost.IndexBuilder) *rightmost.IndexBuilder
}

var variants = map[string]variant{
	"full":   {name: "full", config: func(b *rightmost.IndexBuilder) *rightmost.IndexBuilder { return b }},
	"no_lce": {name: "no_lce", config: func(b *rightmost.IndexBuilder) *rightmost.IndexBuilder { return b.SkipLCE() }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// makeText builds a benchmark text of length n. Low density is uniform
// random lower-case bytes; high density repeats a short random motif so the
// repeat index carries most of the parse work.
func makeText(r *rand.Rand, n, motifLen int, density densityType) string {
	text := make([]byte, n)
	if density == densityHigh {
		motif := make([]byte, motifLen)
		for i := range motif {
			motif[i] = byte(r.Intn(26) + 'a')
		}
		for i := range text {
			text[i] = motif[i%motifLen]
		}
	} else {
		for i := range text {
			text[i] = byte(r.Intn(26) + 'a')
		}
	}
	return string(text)
}

func measureBuild(text string, config func(*rightmost.IndexBuilder) *rightmost.IndexBuilder) (time.Duration, uint64, uint64, *rightmost.Index) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := config(rightmost.NewBuilder(text))
	idx, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, idx
}

type window struct {
	start, length int
}

func measureQuery(idx *rightmost.Index, windows []window) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, w := range windows {
		if _, err := idx.Parse(w.start, w.length); err != nil {
			panic(err)
		}
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func runBenchmark(v variant, n, l, q, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := makeText(r, n, 8, density)

		bt, bp, ba, idx := measureBuild(text, v.config)

		windows := make([]window, q)
		for i := range windows {
			start := r.Intn(n - l + 1)
			windows[i] = window{start: start, length: l}
		}
		qt, qp, qa := measureQuery(idx, windows)

		fmt.Printf("%s,%d,%d,%d,%s,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, n, l, q, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	l := flag.Int("l", 0, "Query window length L")
	q := flag.Int("q", 0, "Number of queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *l <= 0 || *q <= 0 || *l > *n {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -l=<L> -q=<Q> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *l, *q, *runs, densityType(*d))
}
