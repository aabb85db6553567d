package line

import "github.com/FilippoRanza/metrosim/internal/counter"

// Terminus is a line's end station acting as a train deposit: it holds a
// bounded number of trains and releases one onto the railway at most once
// per inter-train delay.
type Terminus struct {
	stationID    int
	depoCounter  counter.Counter
	trainCounter counter.CyclicCounter
}

// NewTerminus builds a terminus at stationID with depoSize trains available
// in its deposit and trainDelay steps required between dispatches.
func NewTerminus(stationID, depoSize, trainDelay int) *Terminus {
	return &Terminus{
		stationID:    stationID,
		depoCounter:  counter.New(depoSize),
		trainCounter: counter.NewCyclic(trainDelay),
	}
}

// CanStartNewTrain reports whether the deposit still has a train to give and
// the inter-train delay has elapsed.
func (t *Terminus) CanStartNewTrain() bool {
	if t.depoCounter.IsDone() {
		return false
	}
	return t.trainCounter.IsDone()
}

// Step advances the inter-train delay counter by one tick.
func (t *Terminus) Step() { t.trainCounter.Count() }

// AddNewTrain consumes one train from the deposit.
func (t *Terminus) AddNewTrain() { t.depoCounter.Step() }

// StationID returns the station this terminus sits at.
func (t *Terminus) StationID() int { return t.stationID }
