package line

import "github.com/FilippoRanza/metrosim/internal/counter"

// Station is the narrow view Line needs of a station during the boarding
// phase, kept here (rather than importing package station) to avoid an
// import cycle: package station needs nothing from package line beyond this
// shape, expressed structurally.
type Station interface {
	LandPassenger(c *Car)
	BoardPassengers(c *Car)
}

// Line owns one metro line's railway, its two termini, its running fleet,
// and the global quota on how many trains may ever be dispatched on it.
type Line struct {
	trainCounter counter.Counter
	terminusA    *Terminus
	terminusB    *Terminus
	railway      *Railway
	fleet        *Fleet
	networkSize  int
}

// NewLine assembles a line. trainQuota bounds the total number of trains
// ever dispatched across both directions over the line's lifetime.
func NewLine(trainQuota int, terminusA, terminusB *Terminus, railway *Railway, fleet *Fleet, networkSize int) *Line {
	return &Line{
		trainCounter: counter.New(trainQuota),
		terminusA:    terminusA,
		terminusB:    terminusB,
		railway:      railway,
		fleet:        fleet,
		networkSize:  networkSize,
	}
}

// Step runs one simulation tick: move every running train, try to dispatch
// a new one in each direction, then advance both termini's cadence
// counters.
func (l *Line) Step() {
	l.moveTrains()
	l.startTrains()
	l.terminusA.Step()
	l.terminusB.Step()
}

// BoardingOperations lets every in-station car land arriving passengers
// before boarding waiting ones, per station. Land-then-board is the order
// that must hold: boarding first would let just-boarded passengers be
// immediately re-landed.
func (l *Line) BoardingOperations(stations []Station) {
	for _, car := range l.fleet.InStationCars() {
		s := stations[car.CurrentStation()]
		s.LandPassenger(car)
		s.BoardPassengers(car)
	}
}

func (l *Line) moveTrains() {
	for _, car := range l.fleet.RunningCars() {
		if !car.RunStep() {
			continue
		}
		info, ok := l.railway.nextStep(car.CurrentSegment(), car.Direction())
		if ok {
			car.NextStep(info.time, info.kind, info.loc)
		}
	}
}

func (l *Line) startTrains() {
	l.tryStartNewTrain(DirectionA)
	l.tryStartNewTrain(DirectionB)
}

func (l *Line) tryStartNewTrain(dir Direction) {
	if l.canStartNewTrain(dir) {
		l.startNewTrain(dir)
	}
}

func (l *Line) canStartNewTrain(dir Direction) bool {
	if l.trainCounter.IsDone() {
		return false
	}
	if !l.railway.TerminusSegment(dir).IsFree(dir) {
		return false
	}
	return l.terminus(dir).CanStartNewTrain()
}

func (l *Line) startNewTrain(dir Direction) {
	term := l.terminus(dir)
	term.AddNewTrain()
	l.trainCounter.Step()

	stationID := term.StationID()
	segmentIndex := l.terminusIndex(dir)
	location := StationLocation(segmentIndex, stationID)
	duration := l.railway.GetSegmentDuration(dir, segmentIndex)
	destination := l.terminus(dir.Swap()).StationID()

	car := NewCar(destination, l.terminusA.StationID(), l.terminusB.StationID(), location, dir, l.networkSize, duration)
	l.fleet.StartTrain(car)
}

// terminusIndex returns the railway index a train departing in dir starts
// from: DirectionA departs from the last segment, DirectionB from the first.
func (l *Line) terminusIndex(dir Direction) int {
	return Choose(dir, l.railway.LastIndex(), 0)
}

// DispatchedTrains reports how many trains this line has ever dispatched,
// across both directions, for end-of-run reporting.
func (l *Line) DispatchedTrains() int {
	return l.trainCounter.Current()
}

// RunningTrains reports how many trains are currently in service on this
// line, for end-of-run reporting.
func (l *Line) RunningTrains() int {
	return l.fleet.Len()
}

// terminus returns the Terminus a train departing in dir leaves from:
// DirectionA leaves terminus B's end, DirectionB leaves terminus A's end.
func (l *Line) terminus(dir Direction) *Terminus {
	return Choose(dir, l.terminusB, l.terminusA)
}
