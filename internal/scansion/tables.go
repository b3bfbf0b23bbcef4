package scansion

import "github.com/boxesandglue/hexascan/internal/prosody"

// Tag classes group the six input tags by which NFA transitions accept
// them.
var (
	longable           = []prosody.Tag{prosody.Long, prosody.Indeterminate, prosody.LongCorreption, prosody.IndeterminateCorreption}
	shortable          = []prosody.Tag{prosody.Short, prosody.Indeterminate, prosody.IndeterminateCorreption, prosody.ShortSynizesis}
	correpted          = []prosody.Tag{prosody.LongCorreption}
	correptedSynizesis = []prosody.Tag{prosody.LongCorreption, prosody.IndeterminateCorreption}
	synizesisClass     = []prosody.Tag{prosody.ShortSynizesis}
	allTags            = []prosody.Tag{
		prosody.Long, prosody.Short, prosody.Indeterminate,
		prosody.LongCorreption, prosody.IndeterminateCorreption, prosody.ShortSynizesis,
	}
)

// DefaultFallbackCost is the weight given to reading a short syllable as
// long when no ordinary reading exists, unless a caller configures a
// different one. It only needs to be large enough that the search never
// prefers it over any scan that avoids it.
const DefaultFallbackCost = 15

// a transitionRule is one row of the static transition table: from state,
// the tag class it accepts, the destination state, the cost, and the
// symbol(s) emitted into the scansion string.
type transitionRule struct {
	from    int
	classes []prosody.Tag
	to      int
	cost    int
	emit    string
}

// footStates names the seven states a single foot 1-5 occupies.
type footStates struct {
	entry, a, m         int
	sz1, sz2, sz3, sz4  int
	exit                int
}

// buildFoot emits the sixteen transitions of one normal foot, parameterized
// by its state numbers, the cost of falling back to a short-as-long
// reading, and a spondee cost bonus (0 for feet 1-4, 1 for foot 5, which
// prefers a dactylic reading).
func buildFoot(s footStates, fallbackCost, spondeeBonus int) []transitionRule {
	return []transitionRule{
		// long first syllable
		{s.entry, longable, s.a, 0, "+"},
		{s.entry, shortable, s.a, fallbackCost, "+"},
		// synizesis producing long first syllable
		{s.entry, synizesisClass, s.sz1, 1, "."},
		{s.sz1, allTags, s.a, 0, "+"},
		// long second syllable of spondee
		{s.a, longable, s.exit, 0 + spondeeBonus, "+|"},
		{s.a, shortable, s.exit, fallbackCost + spondeeBonus, "+|"},
		// synizesis producing long second syllable of spondee
		{s.a, synizesisClass, s.sz2, 1, "."},
		{s.sz2, allTags, s.exit, 0 + spondeeBonus, "+|"},
		// short second syllable of dactyl
		{s.a, shortable, s.m, 0, "-"},
		{s.a, correpted, s.m, 1, "-"},
		// synizesis and correption producing short second syllable of dactyl
		{s.a, synizesisClass, s.sz3, 1, "."},
		{s.sz3, correptedSynizesis, s.m, 1, "-"},
		// short third syllable of dactyl
		{s.m, shortable, s.exit, 0, "-|"},
		{s.m, correpted, s.exit, 1, "-|"},
		// synizesis and correption producing short third syllable of dactyl
		{s.m, synizesisClass, s.sz4, 1, "."},
		{s.sz4, correptedSynizesis, s.exit, 1, "-|"},
	}
}

// buildTerminalFoot emits the sixth foot: a normal-foot first half followed
// by "any syllable" accepted as long, into the accept state.
func buildTerminalFoot(entry, mid, sz1, sz2, accept, fallbackCost int) []transitionRule {
	return []transitionRule{
		{entry, longable, mid, 0, "+"},
		{entry, shortable, mid, fallbackCost, "+"},
		{entry, synizesisClass, sz1, 1, "."},
		{sz1, allTags, mid, 0, "+"},

		{mid, allTags, accept, 0, "+"},
		{mid, synizesisClass, sz2, 1, "."},
		{sz2, allTags, accept, 0, "+"},
	}
}

// StartState is the NFA's single start state; AcceptState is the single
// accept state, valid only at end of input.
const (
	StartState  = 0
	AcceptState = 37
)

func allRules(fallbackCost int) []transitionRule {
	var rules []transitionRule
	// Feet 1-4: no spondee bonus.
	feet := []footStates{
		{entry: 0, a: 1, m: 2, sz1: 3, sz2: 4, sz3: 5, sz4: 6, exit: 7},
		{entry: 7, a: 8, m: 9, sz1: 10, sz2: 11, sz3: 12, sz4: 13, exit: 14},
		{entry: 14, a: 15, m: 16, sz1: 17, sz2: 18, sz3: 19, sz4: 20, exit: 21},
		{entry: 21, a: 22, m: 23, sz1: 24, sz2: 25, sz3: 26, sz4: 27, exit: 28},
	}
	for _, f := range feet {
		rules = append(rules, buildFoot(f, fallbackCost, 0)...)
	}
	// Foot 5 prefers a dactylic reading: its spondee exit carries a cost
	// bonus of 1.
	fifth := footStates{entry: 28, a: 29, m: 30, sz1: 31, sz2: 32, sz3: 33, sz4: 34, exit: 35}
	rules = append(rules, buildFoot(fifth, fallbackCost, 1)...)
	// Foot 6: terminal.
	rules = append(rules, buildTerminalFoot(35, 36, 38, 39, AcceptState, fallbackCost)...)
	return rules
}

type stateTag struct {
	state int
	tag   prosody.Tag
}

// BuildTransitionTable maps (state, tag) to the list of transitions it
// admits, for the given short-as-long fallback cost.
func BuildTransitionTable(fallbackCost int) map[stateTag][]transitionRule {
	t := make(map[stateTag][]transitionRule)
	for _, r := range allRules(fallbackCost) {
		for _, tag := range r.classes {
			key := stateTag{r.from, tag}
			t[key] = append(t[key], r)
		}
	}
	return t
}
