// Command bench runs a synthetic workload against the cache and exposes optional pprof/Prometheus endpoints.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/genlru/cache"
	"github.com/IvanBrykalov/genlru/internal/util"
	pmet "github.com/IvanBrykalov/genlru/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		dist    = flag.String("dist", "zipf", "key distribution: zipf | uniform")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	if *readPct < 0 || *readPct > 100 {
		log.Fatalf("reads must be in [0..100], got %d", *readPct)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	var metrics cache.Metrics
	if *metricsAddr != "" {
		metrics = pmet.New(nil, "genlru", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	c := cache.New[string, string](cache.Options[string, string]{
		Capacity: *capacity,
		Metrics:  metrics,
	})

	r := rand.New(rand.NewSource(*seed))

	// Key pickers. The uniform path rounds the keyspace up to a power of two
	// so a mask replaces the modulo on the hot path.
	var nextKey func() int
	switch *dist {
	case "zipf":
		z := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
		nextKey = func() int { return int(z.Uint64()) }
	case "uniform":
		mask := int(util.NextPow2(uint64(*keys))) - 1
		if !util.IsPowerOfTwo(uint64(*keys)) {
			log.Printf("uniform: keyspace rounded up to %d", mask+1)
		}
		nextKey = func() int { return r.Int() & mask }
	default:
		log.Fatalf("unknown dist %q", *dist)
	}

	// Warm the cache.
	pre := *preload
	if pre <= 0 {
		pre = *capacity / 2
	}
	for i := 0; i < pre; i++ {
		if err := c.Set("k:"+strconv.Itoa(i), "v"); err != nil {
			log.Fatalf("preload: %v", err)
		}
	}

	// ---- Workload: single goroutine, read/write mix until the deadline ----
	var ops, hits, reads uint64
	deadline := time.Now().Add(*duration)
	start := time.Now()
	for time.Now().Before(deadline) {
		// Batch the clock check; time.Now per op would dominate the loop.
		for i := 0; i < 4096; i++ {
			k := "k:" + strconv.Itoa(nextKey())
			if r.Intn(100) < *readPct {
				reads++
				_, err := c.Get(k)
				switch {
				case err == nil:
					hits++
				case errors.Is(err, cache.ErrCacheMiss):
					// ordinary miss
				default:
					log.Fatalf("get: %v", err)
				}
			} else {
				if err := c.Set(k, "v"); err != nil {
					log.Fatalf("set: %v", err)
				}
			}
			ops++
		}
	}
	elapsed := time.Since(start)

	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads) * 100
	}
	fmt.Printf("ops: %d in %v (%.0f ops/sec)\n", ops, elapsed.Round(time.Millisecond),
		float64(ops)/elapsed.Seconds())
	fmt.Printf("reads: %d, hit rate: %.1f%%\n", reads, hitRate)
	fmt.Printf("resident entries: %d / %d\n", c.Len(), c.Cap())
}
