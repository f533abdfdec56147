package fontdup

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Letterform is the outline one source (usually a font file) contributed
// for one character.
type Letterform struct {
	Source string
	Path   *IndexedPath
}

// Group collects the sources whose letterforms for one character look the
// same. Membership means the letterform approximately equals at least one
// member that was already present, not that all members are pairwise
// similar: chains of near-duplicates can link outlines that would not
// match each other directly.
type Group struct {
	Members map[string]*IndexedPath
}

func newGroup(lf Letterform) *Group {
	return &Group{Members: map[string]*IndexedPath{lf.Source: lf.Path}}
}

// Matches reports whether lf belongs in g, i.e. whether any current
// member approximately equals the offered outline. Samples come from the
// member and nearest-point queries run against the offered outline;
// downstream tuning assumes this direction, so don't flip it.
func (g *Group) Matches(lf Letterform, rules Rules, scratch *Scratch) bool {
	for _, member := range g.Members {
		if ApproximatelyEqual(member, lf.Path, rules, scratch) == nil {
			return true
		}
	}
	return false
}

// Sources returns the group's source identifiers, sorted.
func (g *Group) Sources() []string {
	return slices.Sorted(maps.Keys(g.Members))
}

// GroupLetterforms partitions one character's letterforms into groups.
// Letterforms are taken in the given order; each joins the first existing
// group it matches, or founds a new singleton group.
//
// Offering the same source twice is a caller bug and panics.
func GroupLetterforms(forms []Letterform, rules Rules, scratch *Scratch) []*Group {
	var groups []*Group
	seen := make(map[string]bool, len(forms))

next:
	for _, lf := range forms {
		if seen[lf.Source] {
			panic(fmt.Sprintf("fontdup: multiple letterforms from %q", lf.Source))
		}
		seen[lf.Source] = true
		for _, g := range groups {
			if g.Matches(lf, rules, scratch) {
				g.Members[lf.Source] = lf.Path
				continue next
			}
		}
		groups = append(groups, newGroup(lf))
	}
	return groups
}

// SharedSet records that one set of sources drew the same letterform for
// Chars of the tested characters.
type SharedSet struct {
	Sources []string
	Chars   int
}

// sharedSetSep joins source lists into map keys. Unit separator, so it
// can't collide with anything in a file path.
const sharedSetSep = "\x1f"

// SharedSets finds, across all tested characters, every set of two or
// more sources that co-occur in a group, and counts the characters they
// co-occur on. It's really much more interesting when a group has
// multiple members, so singleton groups contribute nothing.
//
// The result is ordered by descending count, then by source list, so
// reports are deterministic.
func SharedSets(byChar map[rune][]*Group) []SharedSet {
	counts := make(map[string]int)
	for _, groups := range byChar {
		for _, g := range groups {
			if len(g.Members) < 2 {
				continue
			}
			counts[strings.Join(g.Sources(), sharedSetSep)]++
		}
	}

	sets := make([]SharedSet, 0, len(counts))
	for key, n := range counts {
		sets = append(sets, SharedSet{
			Sources: strings.Split(key, sharedSetSep),
			Chars:   n,
		})
	}
	slices.SortFunc(sets, func(a, b SharedSet) int {
		if a.Chars != b.Chars {
			return cmp.Compare(b.Chars, a.Chars)
		}
		return slices.Compare(a.Sources, b.Sources)
	})
	return sets
}
