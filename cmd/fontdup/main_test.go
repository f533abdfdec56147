package main

import (
	"strings"
	"testing"

	"github.com/fontwork/fontdup"
)

func TestReport(t *testing.T) {
	chars := []rune("abcd")
	sets := []fontdup.SharedSet{
		{Sources: []string{"a.ttf", "b.ttf"}, Chars: 4},
		{Sources: []string{"a.ttf", "c.ttf"}, Chars: 1},
	}

	var buf strings.Builder
	report(&buf, chars, 75, sets)
	got := buf.String()

	if !strings.Contains(got, "at least 3/4 glyphs") {
		t.Errorf("missing threshold line in %q", got)
	}
	if !strings.Contains(got, "[a.ttf b.ttf], 4/4") {
		t.Errorf("missing qualifying set in %q", got)
	}
	if strings.Contains(got, "c.ttf") {
		t.Errorf("set below the threshold reported in %q", got)
	}
}
