package fontio

import (
	"maps"
	"slices"
)

// DefaultTestString is the set of characters compared when the caller
// doesn't supply one. It is a reduced form of the GF_Latin_Core glyph
// set: enough coverage to tell families apart without testing every
// glyph a font carries.
const DefaultTestString = `abcdefghijklmnopqrstuvwxyz` +
	`ABCDEFGHIJKLMNOPQRSTUVWXYZ` +
	`1234567890` +
	`!?#$%&'()*+,-./:;<=>[\]^_,{|}`

// TestChars returns the unique characters to compare, sorted. namPath,
// when nonempty, overrides testString.
func TestChars(testString, namPath string) ([]rune, error) {
	set := make(map[rune]bool)
	if namPath != "" {
		runes, err := ParseNam(namPath)
		if err != nil {
			return nil, err
		}
		for _, c := range runes {
			set[c] = true
		}
	} else {
		for _, c := range testString {
			set[c] = true
		}
	}
	return slices.Sorted(maps.Keys(set)), nil
}
