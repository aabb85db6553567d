// Package traffic implements the passenger-demand generator: a cosine-
// interpolated spline over a day's anchor points, scaled so its per-step
// Poisson-sampled output sums to a requested origin-destination total.
package traffic

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator reports how many passengers depart on a given simulation step.
type Generator interface {
	Flow(step int) int
}

// Table is an S x S map of optional Generators, one per origin-destination
// pair. A nil entry means that pair never produces traffic.
type Table [][]Generator

// N returns the number of origin stations (rows) in the table.
func (t Table) N() int { return len(t) }

// Row returns the destination-indexed generator slice for origin.
func (t Table) Row(origin int) []Generator { return t[origin] }

// Anchor pins the relative demand curve's value at a given hour of the day.
type Anchor struct {
	Time  int
	Value float64
}

const defaultAnchorValue = 1.0
const minutesPerHour = 60

// TimeSteps returns the number of simulation steps between timeBegin and
// timeEnd at the given resolution (steps per minute).
func TimeSteps(timeBegin, timeEnd, minuteResolution int) int {
	return (timeEnd - timeBegin) * minuteResolution * minutesPerHour
}

type splineKey struct {
	t, v float64
}

// SimpleGenerator is a cosine-spline demand curve scaled to a total
// passenger count over its window, sampled per step with a Poisson
// distribution.
type SimpleGenerator struct {
	keys  []splineKey
	scale float64
	src   rand.Source
}

// NewSimpleGenerator builds a generator over [timeBegin, timeEnd) (hours),
// sampled minuteResolution times per minute, whose expected total output
// across the whole window is totalTraffic. anchors need not cover the
// window's endpoints; missing endpoints default to relative weight 1.0.
func NewSimpleGenerator(anchors []Anchor, timeBegin, timeEnd, minuteResolution, totalTraffic int, src rand.Source) *SimpleGenerator {
	steps := TimeSteps(timeBegin, timeEnd, minuteResolution)
	keys := convertAnchors(anchors, timeBegin, timeEnd, steps)
	g := &SimpleGenerator{keys: keys, src: src}
	magnitude := g.integrate(steps)
	if magnitude == 0 {
		g.scale = 0
	} else {
		g.scale = float64(totalTraffic) / magnitude
	}
	return g
}

func (g *SimpleGenerator) probabilityAt(step int) float64 {
	return g.sample(float64(step)) * g.scale
}

func (g *SimpleGenerator) integrate(steps int) float64 {
	var sum float64
	for i := 0; i < steps; i++ {
		sum += g.sample(float64(i))
	}
	return sum
}

// sample evaluates the cosine-interpolated spline at time t, clamping to
// the boundary anchors outside [keys[0].t, keys[last].t].
func (g *SimpleGenerator) sample(t float64) float64 {
	last := len(g.keys) - 1
	if t <= g.keys[0].t {
		return g.keys[0].v
	}
	if t >= g.keys[last].t {
		return g.keys[last].v
	}
	for i := 0; i < last; i++ {
		if t >= g.keys[i].t && t <= g.keys[i+1].t {
			mu := (t - g.keys[i].t) / (g.keys[i+1].t - g.keys[i].t)
			mu2 := (1 - math.Cos(mu*math.Pi)) / 2
			return g.keys[i].v*(1-mu2) + g.keys[i+1].v*mu2
		}
	}
	return g.keys[last].v
}

// Flow draws a Poisson sample from the demand curve's value at step.
func (g *SimpleGenerator) Flow(step int) int {
	lambda := g.probabilityAt(step)
	if lambda <= 0 {
		return 0
	}
	poi := distuv.Poisson{Lambda: lambda, Src: g.src}
	return int(poi.Rand())
}

// convertAnchors pads anchors with default boundary points if timeBegin or
// timeEnd is missing, then rescales time values onto [0, steps].
func convertAnchors(anchors []Anchor, timeBegin, timeEnd, steps int) []splineKey {
	a := setBoundary(anchors, timeBegin, true)
	a = setBoundary(a, timeEnd, false)
	return scaleAnchors(a, timeBegin, timeEnd, steps)
}

func setBoundary(anchors []Anchor, time int, front bool) []Anchor {
	if len(anchors) == 0 {
		return []Anchor{{Time: time, Value: defaultAnchorValue}}
	}
	var existing Anchor
	if front {
		existing = anchors[0]
	} else {
		existing = anchors[len(anchors)-1]
	}
	if existing.Time == time {
		return anchors
	}
	out := make([]Anchor, 0, len(anchors)+1)
	if front {
		out = append(out, Anchor{Time: time, Value: defaultAnchorValue})
		out = append(out, anchors...)
	} else {
		out = append(out, anchors...)
		out = append(out, Anchor{Time: time, Value: defaultAnchorValue})
	}
	return out
}

func scaleAnchors(anchors []Anchor, t0, tf, steps int) []splineKey {
	scale := float64(steps) / float64(tf-t0)
	out := make([]splineKey, len(anchors))
	for i, a := range anchors {
		out[i] = splineKey{t: float64(a.Time-t0) * scale, v: a.Value}
	}
	return out
}
