package fontdup

import (
	"runtime"
	"sync"
)

// GroupAll groups letterforms for every character in chars, sharding
// characters across workers. Grouping is embarrassingly parallel by
// character: nothing is shared between comparisons except each worker's
// own scratch and its own group lists.
//
// outlines must return one letterform per source for the given character
// and must be safe for concurrent calls. workers ≤ 0 means
// runtime.GOMAXPROCS(0). The result carries no ordering across
// characters.
func GroupAll(chars []rune, outlines func(c rune) []Letterform, rules Rules, workers int) map[rune][]*Group {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		work   = make(chan rune)
		mu     sync.Mutex
		byChar = make(map[rune][]*Group, len(chars))
		wg     sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var scratch Scratch
			for c := range work {
				groups := GroupLetterforms(outlines(c), rules, &scratch)
				mu.Lock()
				byChar[c] = groups
				mu.Unlock()
			}
		}()
	}
	for _, c := range chars {
		work <- c
	}
	close(work)
	wg.Wait()
	return byChar
}
