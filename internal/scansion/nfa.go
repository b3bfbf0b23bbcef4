// Package scansion implements the weighted nondeterministic automaton that
// searches all legal hexameter scansions of a syllable-tag sequence and
// returns the minimum-cost accepting paths.
//
// The automaton itself is a flat, data-driven transition table (tables.go):
// explicit numbered states, a switch-free transition lookup, one pass over
// the input, in the spirit of a compiled syllable machine, except this one
// is hand-written rather than generated, since the grammar here is a
// handful of foot shapes rather than a general script grammar.
package scansion

import (
	"sort"
	"sync"

	"github.com/boxesandglue/hexascan/internal/prosody"
)

// Match is one minimum-cost accepting path: its total cost and the
// scansion string it emits.
type Match struct {
	Cost     int
	Scansion string
}

// path is one active simulation thread, carried forward tag by tag.
type path struct {
	state    int
	cost     int
	scansion string
}

// tableCache memoizes BuildTransitionTable by fallback cost: a CLI run
// calls Search with the same configured cost on every line, so building the
// table once per distinct cost avoids redoing the work per line.
var tableCache sync.Map // map[int]map[stateTag][]transitionRule

func transitionTableFor(fallbackCost int) map[stateTag][]transitionRule {
	if t, ok := tableCache.Load(fallbackCost); ok {
		return t.(map[stateTag][]transitionRule)
	}
	t := BuildTransitionTable(fallbackCost)
	actual, _ := tableCache.LoadOrStore(fallbackCost, t)
	return actual.(map[stateTag][]transitionRule)
}

// Search runs the weighted NFA over tags, using fallbackCost as the weight
// of reading a short syllable as long when no ordinary reading allows the
// line to scan, and returns all accepting paths tied at the minimum cost,
// sorted by scansion string for determinism. Returns nil if tags is empty
// or no accepting path exists at any cost.
func Search(tags []prosody.Tag, fallbackCost int) []Match {
	if len(tags) == 0 {
		return nil
	}
	table := transitionTableFor(fallbackCost)

	active := []path{{state: StartState}}
	for _, tag := range tags {
		var next []path
		for _, p := range active {
			for _, t := range table[stateTag{p.state, tag}] {
				next = append(next, path{
					state:    t.to,
					cost:     p.cost + t.cost,
					scansion: p.scansion + t.emit,
				})
			}
		}
		active = next
		if len(active) == 0 {
			return nil
		}
	}

	var accepted []path
	for _, p := range active {
		if p.state == AcceptState {
			accepted = append(accepted, p)
		}
	}
	if len(accepted) == 0 {
		return nil
	}

	sort.Slice(accepted, func(i, j int) bool {
		if accepted[i].cost != accepted[j].cost {
			return accepted[i].cost < accepted[j].cost
		}
		return accepted[i].scansion < accepted[j].scansion
	})

	best := accepted[0].cost
	matches := make([]Match, 0, len(accepted))
	for _, p := range accepted {
		if p.cost != best {
			break
		}
		matches = append(matches, Match{Cost: p.cost, Scansion: p.scansion})
	}
	return matches
}
