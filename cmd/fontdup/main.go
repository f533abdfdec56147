// Command fontdup detects font files that draw the same letterforms.
//
// Give it font files (and/or --google-fonts pointing at a checkout of
// the google/fonts repository) and it compares the outlines of a test
// set of characters across all of them, printing the sets of files whose
// letterforms agree on at least --match-pct of the tested characters.
//
// Really the test string should be shaped, but we don't have a safe
// shaper; per-character comparison suffices for copied Latin, which is
// the primary use case.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/fontwork/fontdup"
	"github.com/fontwork/fontdup/internal/fontio"
	"github.com/fontwork/fontdup/internal/svgdump"
)

type config struct {
	equivalence float64
	budget      float64
	errorLimit  float64
	matchPct    float64
	testString  string
	testNam     string
	dumpGlyphs  bool
	dumpGroups  bool
	workingDir  string
	googleFonts string
	jobs        int
	files       []string
}

func main() {
	var (
		cfg     config
		verbose bool
		debug   bool
	)
	flag.Float64Var(&cfg.equivalence, "equivalence", 2.0,
		"how near the nearest point must be to count as the same, relative to 1000 upem")
	flag.Float64Var(&cfg.budget, "budget", 100.0,
		"total squared distance-to-nearest the comparison may accumulate, relative to 1000 upem")
	flag.Float64Var(&cfg.errorLimit, "error", 25.0,
		"letterforms with any test point further apart than this are different")
	flag.Float64Var(&cfg.matchPct, "match-pct", 80.0,
		"fonts matching on this percentage of the test characters are reported")
	flag.StringVar(&cfg.testString, "test-string", fontio.DefaultTestString,
		"compare these characters to detect duplication")
	flag.StringVar(&cfg.testNam, "test-nam", "",
		"use a .nam file as the source of test characters, overriding -test-string")
	flag.BoolVar(&cfg.dumpGlyphs, "dump-glyphs", false,
		"write an SVG per test character showing the variants")
	flag.BoolVar(&cfg.dumpGroups, "dump-groups", false,
		"write the per-character groups as JSON")
	flag.StringVar(&cfg.workingDir, "working-dir", "build",
		"where to write dumps")
	flag.StringVar(&cfg.googleFonts, "google-fonts", "",
		"path to a checkout of the google/fonts repository; one exemplar per family is compared")
	flag.IntVar(&cfg.jobs, "jobs", 0,
		"worker count, 0 means one per CPU")
	flag.BoolVar(&verbose, "v", false, "log progress")
	flag.BoolVar(&debug, "vv", false, "log every comparison (noisy)")
	flag.Parse()
	cfg.files = flag.Args()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	fontdup.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("fontdup failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	files, err := fontio.Discover(cfg.files, cfg.googleFonts)
	if err != nil {
		return err
	}
	fonts, err := fontio.LoadAll(files)
	if err != nil {
		return err
	}
	if len(fonts) == 0 {
		slog.Warn("not much to do with no fonts specified")
		return nil
	}

	chars, err := fontio.TestChars(cfg.testString, cfg.testNam)
	if err != nil {
		return err
	}

	// All outlines are compared on the largest grid seen; smaller-upem
	// fonts are scaled up and the rules are scaled with them.
	maxUpem := fontio.MaxUpem(fonts)
	rules := fontdup.Rules{
		Equivalence: cfg.equivalence,
		Budget:      cfg.budget,
		Error:       cfg.errorLimit,
	}.ForUpem(maxUpem)
	slog.Info("comparing",
		"fonts", len(fonts), "chars", len(chars), "upem", maxUpem,
		"equivalence", rules.Equivalence, "budget", rules.Budget, "error", rules.Error)

	byChar := fontdup.GroupAll(chars, func(c rune) []fontdup.Letterform {
		forms := make([]fontdup.Letterform, 0, len(fonts))
		for _, f := range fonts {
			scale := 1.0
			if f.Upem() != maxUpem {
				scale = float64(maxUpem) / float64(f.Upem())
			}
			forms = append(forms, fontdup.Letterform{
				Source: f.Path,
				Path:   fontdup.Index(f.Letterform(c, scale)),
			})
		}
		return forms
	}, rules, cfg.jobs)

	for _, c := range chars {
		groups := byChar[c]
		slog.Debug("grouped", "char", string(c), "groups", len(groups))
		for i, g := range groups {
			slog.Debug("group", "char", string(c), "n", i, "members", g.Sources())
		}
	}

	if cfg.dumpGlyphs || cfg.dumpGroups {
		if err := os.MkdirAll(cfg.workingDir, 0o755); err != nil {
			return err
		}
	}
	if cfg.dumpGlyphs {
		fmt.Printf("Dumping glyphs to %s\n", cfg.workingDir)
		if err := svgdump.Dump(cfg.workingDir, byChar); err != nil {
			return err
		}
	}
	if cfg.dumpGroups {
		if err := dumpGroups(filepath.Join(cfg.workingDir, "groups.json"), byChar); err != nil {
			return err
		}
	}

	report(os.Stdout, chars, cfg.matchPct, fontdup.SharedSets(byChar))
	return nil
}

// dumpGroups records which sources grouped together for every character.
func dumpGroups(path string, byChar map[rune][]*fontdup.Group) error {
	out := make(map[string][][]string, len(byChar))
	for c, groups := range byChar {
		sets := make([][]string, len(groups))
		for i, g := range groups {
			sets[i] = g.Sources()
		}
		out[string(c)] = sets
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func report(w io.Writer, chars []rune, matchPct float64, sets []fontdup.SharedSet) {
	limit := int(math.Ceil(float64(len(chars)) * matchPct / 100))
	fmt.Fprintf(w, "Showing groups where at least %d/%d glyphs match\n\nGroup, Score\n", limit, len(chars))
	for _, s := range sets {
		if s.Chars >= limit {
			fmt.Fprintf(w, "%v, %d/%d\n", s.Sources, s.Chars, len(chars))
		}
	}
}
