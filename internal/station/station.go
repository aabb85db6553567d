// Package station implements the station side of passenger movement:
// queuing newly-arrived passengers by the direction they must board, and the
// land-then-board exchange with a train stopped at the platform.
package station

import (
	"sync"

	"github.com/FilippoRanza/metrosim/internal/bucket"
	"github.com/FilippoRanza/metrosim/internal/line"
	"github.com/FilippoRanza/metrosim/internal/passenger"
	"github.com/FilippoRanza/metrosim/internal/routing"
)

// Station holds one station's waiting passengers, bucketed by the terminus
// they must board toward, plus the shared direction/interchange matrices
// used to route every passenger that enters. An interchange station is
// served by more than one line, so its waiting list can be touched by two
// lines' boarding phases in the same step; mu serializes that access rather
// than relying on each line's railway being privately owned.
type Station struct {
	id          int
	direction   routing.Direction
	interchange routing.Interchange
	mu          sync.Mutex
	waiting     *bucket.List[*passenger.Passenger]
}

// New builds a station. direction and interchange are shared, read-only
// across every station in the network; networkSize sizes the waiting
// buckets (one per possible next-direction terminus).
func New(id, networkSize int, direction routing.Direction, interchange routing.Interchange) *Station {
	return &Station{
		id:          id,
		direction:   direction,
		interchange: interchange,
		waiting: bucket.New(networkSize, func(p *passenger.Passenger) int {
			return p.NextDirection
		}),
	}
}

// ID returns this station's network index.
func (s *Station) ID() int { return s.id }

// EnterPassenger routes p for its next leg (the terminus it must board
// toward and the stop at which it next alights), fires its enter-station
// callback, and queues it in the matching direction bucket.
func (s *Station) EnterPassenger(p *passenger.Passenger) {
	p.SetNextDirection(s.direction.GetDirection(s.id, p.Destination))
	p.SetNextStop(s.interchange.NextStation(s.id, p.Destination))
	p.EnterStation()
	s.mu.Lock()
	s.waiting.Push(p)
	s.mu.Unlock()
}

// BoardPassengers moves every passenger waiting for c's heading onto c, in
// queue order.
func (s *Station) BoardPassengers(c *line.Car) {
	s.mu.Lock()
	waiting := s.waiting.Take(c.Destination())
	s.mu.Unlock()
	if len(waiting) == 0 {
		return
	}
	onboard := make([]line.OnboardPassenger, len(waiting))
	for i, p := range waiting {
		onboard[i] = p
	}
	c.Board(onboard)
}

// LandPassenger drains every passenger on c whose next stop is this
// station, fires each one's leave-train callback, and either lets it exit
// the system (if this station is its final destination) or re-enters it so
// it is routed for its next leg.
func (s *Station) LandPassenger(c *line.Car) {
	landed := c.Land(s.id)
	for _, op := range landed {
		p := op.(*passenger.Passenger)
		p.LeaveTrain()
		if p.IsAtFinalDestination(s.id) {
			continue
		}
		s.EnterPassenger(p)
	}
}
