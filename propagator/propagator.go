package propagator

import (
	"fmt"

	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/wave"
)

// New builds a Propagator over a fresh height x width Wave (every cell
// allowing every pattern) and initializes the support-counter grid from
// compat: supports[y][x][p][d] = |compat[p][opposite(d)]| for every cell,
// since initially every pattern is allowed everywhere so the bound is
// simply the size of the opposite-direction compat list.
// Complexity: O(height*width*patterns) time and memory.
func New(height, width int, weights []float64, compat *CompatTable, toric bool) (*Propagator, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("propagator.New(%d,%d): %w", height, width, ErrInvalidDimensions)
	}
	if compat.NumPatterns() != len(weights) {
		return nil, fmt.Errorf("propagator.New: compat has %d patterns, weights has %d: %w",
			compat.NumPatterns(), len(weights), ErrCompatSizeMismatch)
	}

	w, err := wave.New(height, width, weights)
	if err != nil {
		return nil, fmt.Errorf("propagator.New: %w", err)
	}
	counters, err := grid2d.NewGrid3D(height, width, len(weights))
	if err != nil {
		return nil, fmt.Errorf("propagator.New: %w", err)
	}

	p := &Propagator{
		wave:     w,
		counters: counters,
		compat:   compat,
		toric:    toric,
	}
	p.initCounters()

	return p, nil
}

// initCounters fills every cell's counters from the compat table sizes,
// identical to the formula New uses (shared so Reset need not reallocate).
// Complexity: O(height*width*patterns).
func (p *Propagator) initCounters() {
	h, w, n := p.wave.Height(), p.wave.Width(), p.wave.NumPatterns()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for pat := 0; pat < n; pat++ {
				for _, d := range direction.Directions() {
					count := int32(len(p.compat.Get(pat, d.Opposite())))
					p.counters.Set(y, x, pat, d.Index(), count)
				}
			}
		}
	}
}

// Wave returns the propagator's underlying Wave, for the solver's entropy
// queries and for front-ends reading back a finished result.
func (p *Propagator) Wave() *wave.Wave { return p.wave }

// Toric reports whether this propagator treats the grid as wrapping.
func (p *Propagator) Toric() bool { return p.toric }

// Reset restores the wave to allowing every pattern everywhere and
// recomputes the counter grid in place, without reallocating the H*W*P*4
// counter slice.
// Complexity: O(height*width*patterns).
func (p *Propagator) Reset() {
	p.wave.Reset()
	p.counters.Reset()
	p.initCounters()
	p.queue = p.queue[:0]
}

// neighbor computes the coordinates one step from (y, x) in direction d.
// In toric mode it wraps; in non-toric mode ok is false when the result
// would fall outside the grid.
// Complexity: O(1).
func (p *Propagator) neighbor(y, x int, d direction.Direction) (ny, nx int, ok bool) {
	dy, dx := d.Unit()
	ny, nx = y+dy, x+dx
	h, w := p.wave.Height(), p.wave.Width()
	if p.toric {
		ny = ((ny % h) + h) % h
		nx = ((nx % w) + w) % w
		return ny, nx, true
	}
	if ny < 0 || ny >= h || nx < 0 || nx >= w {
		return 0, 0, false
	}

	return ny, nx, true
}

// Ban removes pattern p from the allow-set at (y, x), if not already
// banned, and then runs propagation to a fixpoint. Idempotent: banning an
// already-banned pattern is a no-op.
// Complexity: amortized O(patterns) per actually-banned (cell,pattern),
// O(1) otherwise.
func (p *Propagator) Ban(y, x, pat int) error {
	banned, err := p.wave.Ban(y, x, pat)
	if err != nil {
		return fmt.Errorf("propagator.Ban(%d,%d,%d): %w", y, x, pat, err)
	}
	if !banned {
		return nil
	}
	p.counters.ZeroAllDirections(y, x, pat)
	p.queue = append(p.queue, queueItem{y: y, x: x, p: pat})
	p.propagate()

	return nil
}

// propagate drains the queue to a fixpoint. Recursion is broken by the
// queue, never by a recursive call: popping (y1,x1,p1)
// decrements the counters of every pattern that relied on p1 as a
// direction-d neighbor, and any counter that reaches zero triggers an
// inline ban that pushes its own queue entry rather than recursing.
// Complexity: total work across one Ban call and its propagation is
// O(patterns) per (cell,pattern) banned, each banned at most once.
func (p *Propagator) propagate() {
	for len(p.queue) > 0 {
		last := len(p.queue) - 1
		item := p.queue[last]
		p.queue = p.queue[:last]

		for _, d := range direction.Directions() {
			ny, nx, ok := p.neighbor(item.y, item.x, d)
			if !ok {
				continue
			}
			for _, q := range p.compat.Get(item.p, d) {
				newVal := p.counters.Decrement(ny, nx, q, d.Index())
				if newVal != 0 {
					continue
				}
				stillAllowed, _ := p.wave.Get(ny, nx, q)
				if !stillAllowed {
					continue
				}
				banned, _ := p.wave.Ban(ny, nx, q)
				if banned {
					p.counters.ZeroAllDirections(ny, nx, q)
					p.queue = append(p.queue, queueItem{y: ny, x: nx, p: q})
				}
			}
		}
	}
}
