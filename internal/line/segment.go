package line

// SegmentKind says what a railway segment physically is.
type SegmentKind int

const (
	KindLine SegmentKind = iota
	KindStation
	KindTerminus
)

// SegmentType pairs a segment's kind with the station id it represents, for
// Station and Terminus kinds; Station is unused for KindLine.
type SegmentType struct {
	Kind    SegmentKind
	Station int
}

// SegmentInfo carries one direction-slot's occupancy and crossing duration.
type SegmentInfo struct {
	kind     SegmentType
	occupied bool
	duration int
}

// NewSegmentInfo builds a free SegmentInfo of the given kind and duration.
func NewSegmentInfo(kind SegmentType, duration int) SegmentInfo {
	return SegmentInfo{kind: kind, duration: duration}
}

func (s *SegmentInfo) isFree() bool        { return !s.occupied }
func (s *SegmentInfo) setOccupied()        { s.occupied = true }
func (s *SegmentInfo) setFree()            { s.occupied = false }
func (s *SegmentInfo) getDuration() int    { return s.duration }
func (s *SegmentInfo) getType() SegmentType { return s.kind }

func (s *SegmentInfo) makeLocation(index int) CarLocation {
	switch s.kind.Kind {
	case KindStation, KindTerminus:
		return StationLocation(index, s.kind.Station)
	default:
		return RailLocation(index)
	}
}

// Segment is a single railway cell. A Single segment shares one occupancy
// slot between both directions (occupying it in A also occupies it in B); a
// Double segment gives each direction an independent slot.
type Segment struct {
	double bool
	slots  [2]SegmentInfo
}

// NewSingleSegment builds a segment whose single slot is shared by both
// directions.
func NewSingleSegment(info SegmentInfo) Segment {
	return Segment{double: false, slots: [2]SegmentInfo{info, info}}
}

// NewDoubleSegment builds a segment with independent slots per direction.
func NewDoubleSegment(a, b SegmentInfo) Segment {
	return Segment{double: true, slots: [2]SegmentInfo{a, b}}
}

func (s *Segment) choose(dir Direction) *SegmentInfo {
	if s.double {
		return &s.slots[dir]
	}
	return &s.slots[0]
}

func (s *Segment) IsFree(dir Direction) bool        { return s.choose(dir).isFree() }
func (s *Segment) SetOccupied(dir Direction)        { s.choose(dir).setOccupied() }
func (s *Segment) SetFree(dir Direction)            { s.choose(dir).setFree() }
func (s *Segment) Duration(dir Direction) int       { return s.choose(dir).getDuration() }
func (s *Segment) Type(dir Direction) SegmentType   { return s.choose(dir).getType() }
func (s *Segment) MakeLocation(dir Direction, index int) CarLocation {
	return s.choose(dir).makeLocation(index)
}
