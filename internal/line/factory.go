package line

import "fmt"

// chunkSplitCount is how many pieces a rail chunk is split into once its
// length reaches the split threshold: single, double, single, so that two
// trains travelling in opposite directions can cross mid-chunk.
const chunkSplitCount = 3

// StationSpec names one station along a line and its dwell duration.
type StationSpec struct {
	ID       int
	Duration int
}

// LineFactoryConfig fully describes a line's physical layout: its stations
// in order (first and last are the two termini) and the rail length between
// each consecutive pair.
type LineFactoryConfig struct {
	Stations     []StationSpec
	ChunkLengths []int
	SplitLength  int
	DepoSize     int
	TrainDelay   int
	NetworkSize  int
}

// trainCounterQuota caps the total number of trains ever dispatched on a
// line, across both directions, at twice its per-terminus deposit size.
func trainCounterQuota(depoSize int) int {
	return depoSize * 2
}

// BuildLine assembles a Line from a factory config, panicking if the layout
// is structurally invalid: this runs at network-build time, where a
// data-model invariant violation is a fatal configuration error, not a
// recoverable one.
func BuildLine(cfg LineFactoryConfig) *Line {
	if len(cfg.Stations) < 2 {
		panic(fmt.Sprintf("line: need at least 2 stations, got %d", len(cfg.Stations)))
	}
	if len(cfg.ChunkLengths) != len(cfg.Stations)-1 {
		panic(fmt.Sprintf("line: %d stations need %d chunk lengths, got %d",
			len(cfg.Stations), len(cfg.Stations)-1, len(cfg.ChunkLengths)))
	}

	first, last := cfg.Stations[0], cfg.Stations[len(cfg.Stations)-1]
	terminusA := NewTerminus(first.ID, cfg.DepoSize, cfg.TrainDelay)
	terminusB := NewTerminus(last.ID, cfg.DepoSize, cfg.TrainDelay)

	segments := buildRailwaySegments(cfg.Stations, cfg.ChunkLengths, cfg.SplitLength)
	railway := NewRailway(segments)
	fleet := NewFleet(trainCounterQuota(cfg.DepoSize))

	return NewLine(trainCounterQuota(cfg.DepoSize), terminusA, terminusB, railway, fleet, cfg.NetworkSize)
}

// buildRailwaySegments interleaves a station segment for every StationSpec
// with the rail-chunk segments between it and the next station. The first
// and last stations are tagged KindTerminus so that a train arriving there
// triggers the movement algorithm's direction swap; every interior station
// is tagged KindStation.
func buildRailwaySegments(stations []StationSpec, chunkLengths []int, splitLength int) []Segment {
	segments := make([]Segment, 0, len(stations)+len(chunkLengths)*chunkSplitCount)
	last := len(stations) - 1
	for i, st := range stations {
		kind := KindStation
		if i == 0 || i == last {
			kind = KindTerminus
		}
		segments = append(segments, stationSegment(kind, st))
		if i < len(chunkLengths) {
			for _, c := range buildChunks(splitLength, chunkLengths[i]) {
				segments = append(segments, chunkSegment(c))
			}
		}
	}
	return segments
}

func stationSegment(kind SegmentKind, st StationSpec) Segment {
	t := SegmentType{Kind: kind, Station: st.ID}
	return NewDoubleSegment(NewSegmentInfo(t, st.Duration), NewSegmentInfo(t, st.Duration))
}

type chunkSpec struct {
	duration int
	double   bool
}

func chunkSegment(c chunkSpec) Segment {
	t := SegmentType{Kind: KindLine}
	if c.double {
		return NewDoubleSegment(NewSegmentInfo(t, c.duration), NewSegmentInfo(t, c.duration))
	}
	return NewSingleSegment(NewSegmentInfo(t, c.duration))
}

// buildChunks splits one rail length into the physical segments a train
// crosses: a single undivided segment if length is below splitLength,
// otherwise three segments (single, double, single) of length/3 each, the
// remainder folded into the middle double segment. The middle segment is
// doubled so two trains travelling in opposite directions can both be
// mid-chunk at once without blocking each other.
func buildChunks(splitLength, length int) []chunkSpec {
	if length < splitLength {
		return []chunkSpec{{duration: length, double: false}}
	}
	base := length / chunkSplitCount
	rem := length % chunkSplitCount
	return []chunkSpec{
		{duration: base, double: false},
		{duration: base + rem, double: true},
		{duration: base, double: false},
	}
}

// FastLineConfig is the condensed line-layout shorthand used when every
// station shares the same dwell duration: a run of evenly-dwelling stations
// connected by rail chunks of given lengths.
type FastLineConfig struct {
	StationIDs      []int
	StationDuration int
	ChunkLengths    []int
	SplitLength     int
	DepoSize        int
	TrainDelay      int
}

// BuildFastLine expands a FastLineConfig into a full LineFactoryConfig and
// builds the line. networkSize is the total number of stations in the whole
// network (used to size each dispatched car's onboard passenger buckets).
func BuildFastLine(cfg FastLineConfig, networkSize int) *Line {
	stations := make([]StationSpec, len(cfg.StationIDs))
	for i, id := range cfg.StationIDs {
		stations[i] = StationSpec{ID: id, Duration: cfg.StationDuration}
	}
	return BuildLine(LineFactoryConfig{
		Stations:     stations,
		ChunkLengths: cfg.ChunkLengths,
		SplitLength:  cfg.SplitLength,
		DepoSize:     cfg.DepoSize,
		TrainDelay:   cfg.TrainDelay,
		NetworkSize:  networkSize,
	})
}
