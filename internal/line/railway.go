package line

// Railway is the ordered chain of segments a line's trains run along, index
// 0 at terminus A's end and the last index at terminus B's end.
type Railway struct {
	segments []Segment
}

// NewRailway wraps an already-built segment chain.
func NewRailway(segments []Segment) *Railway {
	return &Railway{segments: segments}
}

// LastIndex returns the index of the railway's final segment.
func (r *Railway) LastIndex() int { return len(r.segments) - 1 }

// GetSegmentDuration returns the crossing duration of segment index in dir.
func (r *Railway) GetSegmentDuration(dir Direction, index int) int {
	return r.segments[index].Duration(dir)
}

// TerminusSegment returns the segment at the end of the railway a train in
// dir departs from: DirectionA departs from the last segment, DirectionB
// from the first.
func (r *Railway) TerminusSegment(dir Direction) *Segment {
	return Choose(dir, &r.segments[r.LastIndex()], &r.segments[0])
}

func getNextTrunk(curr int, dir Direction) int {
	return Choose(dir, curr-1, curr+1)
}

// nextStepInfo describes the segment a car is about to enter.
type nextStepInfo struct {
	kind SegmentType
	time int
	loc  CarLocation
}

// isFree reports whether the segment a car at curr would move into, in dir,
// is currently unoccupied.
func (r *Railway) isFree(curr int, dir Direction) bool {
	next := getNextTrunk(curr, dir)
	return r.segments[next].IsFree(dir)
}

// nextStep checks whether the segment ahead of curr (in dir) is free and, if
// so, claims it and releases curr, returning information about the car's new
// location. Occupancy is claimed before curr is freed, so two trains on the
// same railway can never both believe a segment is free.
func (r *Railway) nextStep(curr int, dir Direction) (nextStepInfo, bool) {
	if !r.isFree(curr, dir) {
		return nextStepInfo{}, false
	}
	return r.updateCarLocation(curr, dir), true
}

func (r *Railway) updateCarLocation(curr int, dir Direction) nextStepInfo {
	next := getNextTrunk(curr, dir)
	r.segments[next].SetOccupied(dir)
	r.segments[curr].SetFree(dir)
	return nextStepInfo{
		kind: r.segments[next].Type(dir),
		time: r.segments[next].Duration(dir),
		loc:  r.segments[next].MakeLocation(dir, next),
	}
}
