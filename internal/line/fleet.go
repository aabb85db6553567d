package line

// Fleet is the set of trains running on one line. There is no retirement in
// the current design: once dispatched a car runs for the life of the
// simulation.
type Fleet struct {
	running []*Car
}

// NewFleet returns an empty fleet with room for capacity cars before its
// backing slice must grow.
func NewFleet(capacity int) *Fleet {
	return &Fleet{running: make([]*Car, 0, capacity)}
}

// RunningCars returns every car currently running, in dispatch order.
func (f *Fleet) RunningCars() []*Car { return f.running }

// InStationCars returns the subset of running cars currently stopped at a
// station.
func (f *Fleet) InStationCars() []*Car {
	out := make([]*Car, 0, len(f.running))
	for _, c := range f.running {
		if c.InStation() {
			out = append(out, c)
		}
	}
	return out
}

// StartTrain adds a newly dispatched car to the fleet.
func (f *Fleet) StartTrain(c *Car) { f.running = append(f.running, c) }

// Len returns the number of running cars.
func (f *Fleet) Len() int { return len(f.running) }

// IsEmpty reports whether the fleet has no running cars.
func (f *Fleet) IsEmpty() bool { return len(f.running) == 0 }
