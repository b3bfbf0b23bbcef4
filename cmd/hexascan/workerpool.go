package main

import (
	"runtime"
	"sync"

	"github.com/boxesandglue/hexascan"
)

// analyzeAll fans lines across a bounded pool of hexascan.Analyze calls and
// fans the results back in the original order. This is the one concurrency
// point the core's pure, call-independent design leaves to an external
// caller: nothing here needs to coordinate beyond collecting results.
func analyzeAll(lines []string, workers, fallbackCost int) [][]hexascan.Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers == 0 {
		return nil
	}
	if fallbackCost <= 0 {
		fallbackCost = hexascan.DefaultFallbackCost
	}

	results := make([][]hexascan.Result, len(lines))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = hexascan.AnalyzeWithFallbackCost(lines[i], fallbackCost)
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
