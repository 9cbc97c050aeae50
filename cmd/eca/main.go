package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"cellauto/internal/app"
	"cellauto/internal/ccl"
	"cellauto/internal/export"
	"cellauto/internal/sims/elementary"
)

type ruleResult struct {
	rule       uint8
	components int
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindExport(flag.CommandLine)
	all := flag.Bool("all", false, "run every rule 0..255")
	inequivalent := flag.Bool("inequivalent", false, "run the 88 inequivalent rules")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	label := flag.Bool("label", false, "label connected components before exporting")
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	base := elementary.FromMap(cfg.Params)
	rules := []uint8{base.Rule}
	switch {
	case *all:
		rules = elementary.AllRules()
	case *inequivalent:
		rules = elementary.InequivalentRules[:]
	}
	if ec := cfg.Export; ec.CSV || ec.PNG {
		if err := os.MkdirAll(ec.Dir, 0o755); err != nil {
			log.Fatalf("creating export directory: %v", err)
		}
	}

	start := time.Now()
	var mu sync.Mutex
	results := make([]ruleResult, 0, len(rules))
	opts := elementary.BatchOptions{Workers: *workers, Label: *label}
	err := elementary.GenerateRules(context.Background(), base, rules, opts, func(a *elementary.Automaton) error {
		if err := write(cfg.Export, a); err != nil {
			return err
		}
		r := ruleResult{rule: a.Rule()}
		if *label {
			r.components = ccl.Count(a.Universe())
		}
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].rule < results[j].rule })
	for _, r := range results {
		if *label {
			fmt.Printf("rule %3d: components=%d\n", r.rule, r.components)
			continue
		}
		fmt.Printf("rule %3d: done\n", r.rule)
	}
	fmt.Printf("%d rules at %dx%d in %s\n", len(results), base.Width, base.Height, time.Since(start).Round(time.Millisecond))
}

func write(ec app.ExportConfig, a *elementary.Automaton) error {
	size := a.Size()
	if ec.CSV {
		path := filepath.Join(ec.Dir, export.RuleName(a.Rule(), size.W, "csv"))
		if err := export.SaveCSV(path, a.Universe()); err != nil {
			return err
		}
	}
	if ec.PNG {
		path := filepath.Join(ec.Dir, export.RuleName(a.Rule(), size.W, "png"))
		opts := export.PNGOptions{Width: ec.Width, Height: ec.Height}
		if err := export.SavePNG(path, a.Universe(), opts); err != nil {
			return err
		}
	}
	return nil
}
