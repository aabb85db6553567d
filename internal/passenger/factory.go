package passenger

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/FilippoRanza/metrosim/internal/traffic"
)

// StationSink is the one thing Factory needs from a station: somewhere to
// deposit a newly generated passenger. Station satisfies this implicitly.
type StationSink interface {
	EnterPassenger(p *Passenger)
}

// Factory turns a traffic.Table's per-step flow counts into Passenger
// values and deposits them at the originating station.
type Factory struct {
	traffic   traffic.Table
	callbacks CallbackFactory
	nextID    atomic.Uint64
}

// NewFactory builds a Factory over the given traffic table. A nil
// callbacks factory defaults to NoopCallbackFactory.
func NewFactory(table traffic.Table, callbacks CallbackFactory) *Factory {
	if callbacks == nil {
		callbacks = NoopCallbackFactory{}
	}
	return &Factory{traffic: table, callbacks: callbacks}
}

// Generated reports how many passengers this factory has created so far,
// for end-of-run reporting.
func (f *Factory) Generated() uint64 {
	return f.nextID.Load()
}

// Generate asks every origin-destination generator in the traffic table how
// many passengers start this step, and deposits each one at its origin
// station. Rows (origins) are independent of each other, so they are
// generated in parallel; within a row, destinations are visited in order so
// that passengers are enqueued deterministically at any one station.
func (f *Factory) Generate(step int, stations []StationSink) error {
	g := new(errgroup.Group)
	for origin := 0; origin < f.traffic.N() && origin < len(stations); origin++ {
		origin := origin
		g.Go(func() error {
			f.generateRow(step, origin, stations[origin])
			return nil
		})
	}
	return g.Wait()
}

func (f *Factory) generateRow(step, origin int, sink StationSink) {
	row := f.traffic.Row(origin)
	for dest, gen := range row {
		if gen == nil {
			continue
		}
		count := gen.Flow(step)
		for i := 0; i < count; i++ {
			id := f.nextID.Add(1)
			p := New(id, origin, dest, f.callbacks.New())
			sink.EnterPassenger(p)
		}
	}
}
