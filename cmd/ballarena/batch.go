package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ballarena/combat"
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/engine"
	"github.com/lixenwraith/ballarena/registry"
	"github.com/lixenwraith/ballarena/status"
	"github.com/lixenwraith/ballarena/vmath"
)

const randomVariant = "random"

var errNoVariants = errors.New("no variants given")

// parseSide splits a comma list into variant names, resolving "random" from the registry
func parseSide(reg *registry.Registry, list string, seed uint64) ([]string, error) {
	rng := vmath.NewFastRand(matchSeed(seed, 0))
	all := reg.Names("")

	var out []string
	for _, part := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		switch {
		case name == "":
			continue
		case name == randomVariant:
			name = all[rng.Intn(len(all))]
		default:
			if _, ok := reg.Get(name); !ok {
				return nil, fmt.Errorf("%w: %q", registry.ErrUnknown, name)
			}
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, errNoVariants
	}
	return out, nil
}

// matchSeed spreads consecutive match indices across the generator state space
func matchSeed(seed uint64, i int) uint64 {
	return (seed + uint64(i) + 1) * 0x9E3779B97F4A7C15
}

// batch runs independent headless matches concurrently into one tally
type batch struct {
	cfg     *config.Config
	reg     *registry.Registry
	left    []string
	right   []string
	seed    uint64
	count   int
	workers int
	log     logrus.FieldLogger
}

func (b batch) run(ctx context.Context) (*status.Tally, []*engine.Result, error) {
	if b.count <= 0 {
		b.count = 1
	}
	workers := b.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tally := status.NewTally()
	results := make([]*engine.Result, b.count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < b.count; i++ {
		g.Go(func() error {
			m, err := engine.NewMatch(b.cfg, b.reg, b.left, b.right,
				vmath.NewFastRand(matchSeed(b.seed, i)), engine.WithLogger(b.log))
			if err != nil {
				return err
			}
			res, err := m.Run(ctx)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			res.Record(tally)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return tally, results, nil
}

// printSummary writes per-match outcomes followed by batch totals
func printSummary(w io.Writer, tally *status.Tally, results []*engine.Result) {
	for i, r := range results {
		fmt.Fprintf(w, "#%d %s %s in %d frames, parries %d\n", i, r.Match[:8], r.Outcome, r.Frames, r.Parries)
		for side, s := range r.Sides {
			fmt.Fprintf(w, "    %-5s %-30s alive %d hp %.1f hits %d dealt %.1f supers %d\n",
				engine.SideName(combat.Side(side)), strings.Join(s.Variants, ","),
				s.Alive, s.HP, s.Hits, s.DamageDealt, s.Supers)
		}
	}

	matches := tally.Count("matches")
	if matches == 0 {
		return
	}
	fmt.Fprintf(w, "matches %d  left %d  right %d  draw %d  avg frames %.0f  longest %.0f  parries %d\n",
		matches,
		tally.Count("outcome.left"), tally.Count("outcome.right"), tally.Count("outcome.draw"),
		float64(tally.Count("frames"))/float64(matches), tally.Sum("frames.max"), tally.Count("parries"))
	tally.Counts.Range(func(key string, n *atomic.Int64) {
		if variant, ok := strings.CutPrefix(key, "wins."); ok {
			fmt.Fprintf(w, "  wins %-12s %d\n", variant, n.Load())
		}
	})
}

// printVariants lists registered variants grouped by tag, ungrouped last
func printVariants(w io.Writer, reg *registry.Registry) {
	for _, g := range reg.Groups() {
		fmt.Fprintf(w, "%-10s %s\n", g, strings.Join(reg.Names(g), " "))
	}
	var loose []string
	for _, name := range reg.Names("") {
		if e, _ := reg.Get(name); e.Group == "" {
			loose = append(loose, name)
		}
	}
	fmt.Fprintf(w, "%-10s %s\n", "other", strings.Join(loose, " "))
}
