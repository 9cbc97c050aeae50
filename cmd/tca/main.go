package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cellauto/internal/app"
	"cellauto/internal/ccl"
	"cellauto/internal/core"
	"cellauto/internal/export"
	"cellauto/internal/render"
	_ "cellauto/internal/sims/elementary"
	"cellauto/internal/sims/tca2d"
	"cellauto/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Sim = "tca2d"
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	cfg.BindRun(flag.CommandLine)
	cfg.BindExport(flag.CommandLine)
	pages := flag.Int("pages", 0, "generate this many pages in finite mode (overrides the depth param)")
	ticks := flag.Int("ticks", 0, "run this many rolling ticks instead of finite pages")
	label := flag.Bool("label", false, "report connected components and colour PNGs by label")
	viewer := flag.Bool("term", false, "show the simulation in the terminal")
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	if ec := cfg.Export; ec.CSV || ec.PNG || ec.GIF {
		if err := os.MkdirAll(ec.Dir, 0o755); err != nil {
			log.Fatalf("creating export directory: %v", err)
		}
	}

	switch {
	case *viewer:
		if err := runTerminal(cfg); err != nil {
			log.Fatal(err)
		}
	case *ticks > 0:
		if err := runRolling(cfg, *ticks, *label); err != nil {
			log.Fatal(err)
		}
	default:
		if err := runFinite(cfg, *pages, *label); err != nil {
			log.Fatal(err)
		}
	}
}

func newSim(cfg *app.Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	return factory(cfg.Params)
}

func runTerminal(cfg *app.Config) error {
	sim, err := newSim(cfg)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.NewViewer(screen, sim, cfg.Seed).Run(ctx, cfg.TPS)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runRolling(cfg *app.Config, ticks int, label bool) error {
	sim, err := newSim(cfg)
	if err != nil {
		return err
	}
	ts, ok := sim.(*tca2d.Sim)
	if !ok {
		return fmt.Errorf("sim %q does not run on a 2D engine", cfg.Sim)
	}
	for i := 0; i < ticks; i++ {
		ts.Step()
		if label {
			report(ts.Engine().Generation(), ts.Labels())
		}
	}
	fmt.Println(ts.Title())
	e := ts.Engine()
	return exportPage(cfg.Export, e.Page(0), e.Generation(), labelsIf(label, e.Page(0), e.Neighborhood()))
}

func runFinite(cfg *app.Config, pages int, label bool) error {
	c := tca2d.FromMap(cfg.Params)
	if pages > 0 {
		c.Depth = pages
	}
	e, err := tca2d.NewEngine(c, c.RandomLattice(c.Seed))
	if err != nil {
		return err
	}
	if err := e.Generate(); err != nil {
		return err
	}
	for i, p := range e.Pages() {
		labels := labelsIf(label, p, e.Neighborhood())
		if labels != nil {
			report(i, labels)
		}
		if err := exportPage(cfg.Export, p, i, labels); err != nil {
			return err
		}
	}
	last := e.Page(len(e.Pages()) - 1)
	if cfg.Export.CSV {
		path := filepath.Join(cfg.Export.Dir, export.GridName(c.Width, c.Height, "csv"))
		if err := export.SaveCSV(path, last); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	if cfg.Export.GIF {
		all := e.Pages()
		path := filepath.Join(cfg.Export.Dir, export.GridName(c.Width, c.Height, "gif"))
		opts := export.GIFOptions{Delay: 10, Scale: cfg.Export.Scale}
		if err := export.SaveGIF(path, all, opts); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames)\n", path, len(all))
	}
	return nil
}

func labelsIf(on bool, page *core.Lattice, n core.Neighborhood) *core.Lattice {
	if !on {
		return nil
	}
	return ccl.Label(page, ccl.ConnectivityFor(n), true)
}

func report(generation int, labels *core.Lattice) {
	s := ccl.Summarize(labels)
	fmt.Printf("gen %d: components=%d largest=%d mean=%.2f sd=%.2f\n",
		generation, s.Components, s.Largest, s.MeanSize, s.StdDevSize)
}

// exportPage writes a PNG of page; with labels the image is coloured by component.
func exportPage(ec app.ExportConfig, page *core.Lattice, generation int, labels *core.Lattice) error {
	if !ec.PNG {
		return nil
	}
	opts := export.PNGOptions{Width: ec.Width, Height: ec.Height}
	src := page
	if labels != nil {
		src, opts.Fill = labels, render.FillLabelRGBA
	}
	path := filepath.Join(ec.Dir, export.PageName(page.W, page.H, generation, "png"))
	if err := export.SavePNG(path, src, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
