package line

import "github.com/FilippoRanza/metrosim/internal/bucket"

// CarLocation is either a station stop (a segment index paired with the
// station id it represents) or a plain rail segment.
type CarLocation struct {
	segment   int
	station   int
	inStation bool
}

// StationLocation builds a location at a station stop.
func StationLocation(segment, station int) CarLocation {
	return CarLocation{segment: segment, station: station, inStation: true}
}

// RailLocation builds a location on a plain rail segment.
func RailLocation(segment int) CarLocation {
	return CarLocation{segment: segment}
}

// InStation reports whether this location is a station stop.
func (l CarLocation) InStation() bool { return l.inStation }

// Segment returns the railway index this location sits at.
func (l CarLocation) Segment() int { return l.segment }

// Station returns the station id this location represents. Only valid when
// InStation is true.
func (l CarLocation) Station() int {
	if !l.inStation {
		panic("line: Station() called on a non-station CarLocation")
	}
	return l.station
}

// Car is one running train: its countdown to the next movement, its current
// location, the direction it is travelling, the terminus it currently heads
// toward, and the passengers it carries, bucketed by their next stop.
type Car struct {
	countdown   int
	location    CarLocation
	direction   Direction
	destination int
	terminusA   int
	terminusB   int
	onboard     *bucket.List[OnboardPassenger]
}

// OnboardPassenger is the narrow view a Car needs of a rider: just enough to
// bucket it by where it gets off next.
type OnboardPassenger interface {
	NextStopIndex() int
}

// NewCar creates a train currently in location, heading in direction toward
// destination (one of the line's two terminus station ids), with the line's
// other terminus recorded so the train knows where to turn back to once it
// arrives. countdown is the crossing duration of the segment it currently
// occupies.
func NewCar(destination, terminusA, terminusB int, location CarLocation, direction Direction, networkSize, countdown int) *Car {
	return &Car{
		countdown:   countdown,
		location:    location,
		direction:   direction,
		destination: destination,
		terminusA:   terminusA,
		terminusB:   terminusB,
		onboard:     bucket.New[OnboardPassenger](networkSize, OnboardPassenger.NextStopIndex),
	}
}

// InStation reports whether the car is currently stopped at a station.
func (c *Car) InStation() bool { return c.location.InStation() }

// CurrentStation returns the station id the car is stopped at. Only valid
// when InStation is true.
func (c *Car) CurrentStation() int { return c.location.Station() }

// CurrentSegment returns the railway index the car currently occupies.
func (c *Car) CurrentSegment() int { return c.location.segment }

// Direction returns the car's direction of travel.
func (c *Car) Direction() Direction { return c.direction }

// Destination returns the terminus station id this car currently heads
// toward.
func (c *Car) Destination() int { return c.destination }

// RunStep reports whether the car's countdown has already run out, meaning
// the car is due to attempt its next move this step; otherwise it decrements
// the countdown by one. A car whose move is blocked keeps a zero countdown
// and tries again on every later step.
func (c *Car) RunStep() bool {
	if c.countdown <= 0 {
		return true
	}
	c.countdown--
	return false
}

// NextStep commits a successful move: the car now sits at loc, its
// countdown resets to duration, and if it has just entered a terminus
// segment it turns around, swapping direction and destination.
func (c *Car) NextStep(duration int, kind SegmentType, loc CarLocation) {
	c.countdown = duration
	c.location = loc
	if kind.Kind == KindTerminus {
		c.direction = c.direction.Swap()
		c.destination = c.otherTerminus()
	}
}

func (c *Car) otherTerminus() int {
	if c.destination == c.terminusA {
		return c.terminusB
	}
	return c.terminusA
}

// Board appends passengers to the car, in order, bucketed by their next
// stop.
func (c *Car) Board(ps []OnboardPassenger) {
	for _, p := range ps {
		c.onboard.Push(p)
	}
}

// Land drains and returns every onboard passenger whose next stop is
// station, removing them from the car.
func (c *Car) Land(station int) []OnboardPassenger {
	return c.onboard.Take(station)
}
