// Package passenger implements the Passenger entity and the factory that
// turns per-step traffic-generator output into new passengers entering
// stations.
package passenger

// Callback lets an observer react to passenger movement. The zero-value
// NoopCallback satisfies it with no side effects, matching the reference
// design's unit-type default.
type Callback interface {
	EnterStation(station int)
	LeaveTrain(station int)
}

// NoopCallback is a Callback that does nothing.
type NoopCallback struct{}

func (NoopCallback) EnterStation(int) {}
func (NoopCallback) LeaveTrain(int)  {}

// CallbackFactory builds one Callback per passenger. NoopCallbackFactory is
// the default used when nothing needs to observe passenger movement.
type CallbackFactory interface {
	New() Callback
}

// NoopCallbackFactory builds NoopCallback values.
type NoopCallbackFactory struct{}

func (NoopCallbackFactory) New() Callback { return NoopCallback{} }

// Passenger tracks one rider's itinerary: where they started, where they
// are ultimately headed, and the next direction/stop they must reach to get
// there. NextDirection and NextStop are set by Station.EnterPassenger each
// time the passenger enters a station: at its origin, and again when it
// alights at an intermediate NextStop and is re-entered there.
type Passenger struct {
	ID            uint64
	Start         int
	Destination   int
	NextDirection int
	NextStop      int
	callback      Callback
}

// New creates a passenger travelling from start to dest, not yet assigned a
// direction or next stop.
func New(id uint64, start, dest int, callback Callback) *Passenger {
	if callback == nil {
		callback = NoopCallback{}
	}
	return &Passenger{ID: id, Start: start, Destination: dest, callback: callback}
}

// IsAtNextStop reports whether station is the passenger's current
// intermediate destination.
func (p *Passenger) IsAtNextStop(station int) bool {
	return p.NextStop == station
}

// IsAtFinalDestination reports whether station is the passenger's ultimate
// destination.
func (p *Passenger) IsAtFinalDestination(station int) bool {
	return p.Destination == station
}

// SetNextDirection records the terminus station of the train the passenger
// must board to make progress.
func (p *Passenger) SetNextDirection(dir int) {
	p.NextDirection = dir
}

// SetNextStop records the next station (interchange or final destination)
// the passenger must physically reach.
func (p *Passenger) SetNextStop(stop int) {
	p.NextStop = stop
}

// NextStopIndex satisfies line.OnboardPassenger, letting a Car bucket
// boarded passengers by where they get off next without importing this
// package.
func (p *Passenger) NextStopIndex() int {
	return p.NextStop
}

// EnterStation notifies the callback that the passenger has entered a
// station queue.
func (p *Passenger) EnterStation() {
	p.callback.EnterStation(p.Start)
}

// LeaveTrain notifies the callback that the passenger has alighted at
// NextStop.
func (p *Passenger) LeaveTrain() {
	p.callback.LeaveTrain(p.NextStop)
}
