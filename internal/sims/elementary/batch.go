package elementary

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AllRules returns the codes 0..255.
func AllRules() []uint8 {
	rules := make([]uint8, 256)
	for i := range rules {
		rules[i] = uint8(i)
	}
	return rules
}

// BatchOptions controls GenerateRules.
type BatchOptions struct {
	// Workers bounds the number of automata in flight; zero means unbounded.
	Workers int
	// Label relabels every universe by connected component before fn runs.
	Label bool
}

// GenerateRules builds and runs one automaton per rule using base for
// everything but the rule, then hands it to fn. fn may be called from several
// goroutines at once. The first error cancels the remaining rules.
func GenerateRules(ctx context.Context, base Config, rules []uint8, opts BatchOptions, fn func(*Automaton) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for _, rule := range rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Rule = rule
			a, err := NewFromConfig(cfg)
			if err != nil {
				return err
			}
			a.Generate()
			if opts.Label {
				a.ConnectedComponents()
			}
			return fn(a)
		})
	}
	return g.Wait()
}
