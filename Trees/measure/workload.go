package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"
)

// ErrIncoherent is returned when a container's content differed from the
// reference.
var ErrIncoherent = errors.New("container content differs from the reference")

// Phases in the order they run.
const (
	phaseInsert  = "insert"
	phaseFind    = "find"
	phaseIterate = "iterate"
	phaseRemove  = "remove"
	phaseDrain   = "drain"
	phaseDrainK  = "drain_key"
)

// Result of one phase on one container.
type Result struct {
	Container string        `yaml:"container" json:"container"`
	Phase     string        `yaml:"phase" json:"phase"`
	Ops       int           `yaml:"ops" json:"ops"`
	Hits      int           `yaml:"hits" json:"hits"`
	Elapsed   time.Duration `yaml:"elapsed" json:"elapsed_ns"`
	NsPerOp   float64       `yaml:"ns_per_op" json:"ns_per_op"`
}

// Coherence of a container's content with the reference at some stage.
type Coherence struct {
	Container string `yaml:"container" json:"container"`
	Stage     string `yaml:"stage" json:"stage"`
	OK        bool   `yaml:"ok" json:"ok"`
	Detail    string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Report of a whole run.
type Report struct {
	Config    *Config     `yaml:"config" json:"config"`
	Results   []Result    `yaml:"results" json:"results"`
	Coherence []Coherence `yaml:"coherence" json:"coherence"`
}

// Coherent reports whether every check passed.
func (r *Report) Coherent() bool {
	for _, c := range r.Coherence {
		if !c.OK {
			return false
		}
	}
	return true
}

// generate n items with keys drawn from [0, n], so some keys repeat.
func generate(n int, seed int64) []item {
	rg := rand.New(rand.NewSource(seed))
	all := make([]item, n)
	for i := range all {
		all[i].key = rg.Intn(n + 1)
	}
	return all
}

type runner struct {
	cfg   *Config
	items []item
	half  int
	// keys of the reference after inserting every item, and after removing
	// items[:half].
	full, rest []int
	lat        *latencies
	log        *slog.Logger
}

func newRunner(cfg *Config, lat *latencies, log *slog.Logger) *runner {
	r := &runner{cfg: cfg, items: generate(cfg.N, cfg.Seed), half: cfg.N / 2, lat: lat, log: log}
	ref := newBTree()
	for i := range r.items {
		ref.insert(&r.items[i])
	}
	r.full = keys(ref)
	for i := range r.items[:r.half] {
		ref.remove(&r.items[i])
	}
	r.rest = keys(ref)
	log.Debug("reference built", "items", cfg.N, "distinct", len(r.full), "after_remove", len(r.rest))
	return r
}

func keys(c container) []int {
	ks := make([]int, 0, c.len())
	c.ascend(func(k int) { ks = append(ks, k) })
	return ks
}

// timed runs op on every element of es in batches, feeding each batch's
// average to the latency histogram. Returns the result with Hits counting
// the calls that returned true.
func (r *runner) timed(name, phase string, es []item, op func(e *item) bool) Result {
	res := Result{Container: name, Phase: phase, Ops: len(es)}
	for lo := 0; lo < len(es); lo += r.cfg.Batch {
		hi := min(lo+r.cfg.Batch, len(es))
		start := time.Now()
		for i := lo; i < hi; i++ {
			if op(&es[i]) {
				res.Hits++
			}
		}
		d := time.Since(start)
		res.Elapsed += d
		r.lat.observe(name, phase, float64(d.Nanoseconds())/float64(hi-lo))
	}
	if res.Ops > 0 {
		res.NsPerOp = float64(res.Elapsed.Nanoseconds()) / float64(res.Ops)
	}
	return res
}

// coherent compares the keys of c with want.
func coherent(name, stage string, c container, want []int) Coherence {
	co := Coherence{Container: name, Stage: stage, OK: true}
	if got := keys(c); !slices.Equal(got, want) {
		co.OK = false
		co.Detail = fmt.Sprintf("%d keys, want %d", len(got), len(want))
		if i, ok := firstDiff(got, want); ok {
			co.Detail += fmt.Sprintf(", first difference at %d", i)
		}
	}
	return co
}

func firstDiff(a, b []int) (int, bool) {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i, true
		}
	}
	return min(len(a), len(b)), len(a) != len(b)
}

// measure one container through every phase.
func (r *runner) measure(ctx context.Context, name string) ([]Result, []Coherence, error) {
	c, err := newContainer(name, r.cfg)
	if err != nil {
		return nil, nil, err
	}
	ordered := c.ascend(func(int) {})
	var rs []Result
	var cs []Coherence
	check := func(stage string, want []int) {
		if ordered {
			cs = append(cs, coherent(name, stage, c, want))
		} else if c.len() != len(want) {
			cs = append(cs, Coherence{Container: name, Stage: stage, Detail: fmt.Sprintf("%d elements, want %d", c.len(), len(want))})
		} else {
			cs = append(cs, Coherence{Container: name, Stage: stage, OK: true})
		}
	}

	rs = append(rs, r.timed(name, phaseInsert, r.items, c.insert))
	if g, ok := c.(interface{ Growths() uint64 }); ok {
		r.lat.setGrowths(name, g.Growths())
	}
	check("after insert", r.full)
	if err := ctx.Err(); err != nil {
		return rs, cs, err
	}

	rs = append(rs, r.timed(name, phaseFind, r.items, c.find))
	if ordered {
		start := time.Now()
		n := 0
		c.ascend(func(int) { n++ })
		d := time.Since(start)
		res := Result{Container: name, Phase: phaseIterate, Ops: n, Hits: n, Elapsed: d}
		if n > 0 {
			res.NsPerOp = float64(d.Nanoseconds()) / float64(n)
			r.lat.observe(name, phaseIterate, res.NsPerOp)
		}
		rs = append(rs, res)
	}
	if err := ctx.Err(); err != nil {
		return rs, cs, err
	}

	rs = append(rs, r.timed(name, phaseRemove, r.items[:r.half], c.remove))
	check("after remove", r.rest)
	if kr, ok := c.(keyRemover); ok {
		rs = append(rs, r.timed(name, phaseDrainK, r.items[r.half:], func(e *item) bool { return kr.removeKey(e.key) }))
	} else {
		rs = append(rs, r.timed(name, phaseDrain, r.items[r.half:], c.remove))
	}
	check("drained", nil)
	return rs, cs, nil
}

// run every configured container in turn.
func run(ctx context.Context, cfg *Config, lat *latencies, log *slog.Logger) (*Report, error) {
	r := newRunner(cfg, lat, log)
	rep := &Report{Config: cfg}
	for _, name := range cfg.Containers {
		log.Info("measuring", "container", name, "n", cfg.N)
		rs, cs, err := r.measure(ctx, name)
		rep.Results = append(rep.Results, rs...)
		rep.Coherence = append(rep.Coherence, cs...)
		if err != nil {
			return rep, fmt.Errorf("measure %s: %w", name, err)
		}
		for _, c := range cs {
			if !c.OK {
				log.Warn("incoherent", "container", name, "stage", c.Stage, "detail", c.Detail)
			}
		}
	}
	return rep, nil
}
