package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertStationIndex(t *testing.T, car *Car, stationID, segment, iteration int) {
	t.Helper()
	assert.Truef(t, car.InStation(), "iteration %d", iteration)
	assert.Equalf(t, stationID, car.CurrentStation(), "iteration %d", iteration)
	assert.Equalf(t, segment, car.CurrentSegment(), "iteration %d", iteration)
}

func assertLineIndex(t *testing.T, car *Car, segment int) {
	t.Helper()
	assert.False(t, car.InStation())
	assert.Equal(t, segment, car.CurrentSegment())
}

func checkOccupiedSegments(t *testing.T, segments []Segment, occupied []int) {
	t.Helper()
	want := map[int]bool{}
	for _, i := range occupied {
		want[i] = true
	}
	for i := range segments {
		seg := &segments[i]
		if want[i] {
			assert.Falsef(t, seg.IsFree(DirectionA) && seg.IsFree(DirectionB), "segment %d", i)
		} else {
			assert.Truef(t, seg.IsFree(DirectionA) && seg.IsFree(DirectionB), "segment %d", i)
		}
	}
}

func fastLineFixture() *Line {
	cfg := FastLineConfig{
		StationIDs:      []int{0, 1, 2, 3},
		StationDuration: 6,
		ChunkLengths:    []int{4, 4, 4},
		SplitLength:     6,
		DepoSize:        1,
		TrainDelay:      0,
	}
	return BuildFastLine(cfg, 4)
}

func TestLineSetFree(t *testing.T) {
	l := fastLineFixture()
	l.Step()
	for i := 0; i < 6; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 3, 6, i)
		assertStationIndex(t, cars[1], 0, 0, i)
		l.Step()
	}
	l.Step()
	checkOccupiedSegments(t, l.railway.segments, []int{1, 5})

	for i := 0; i < 4; i++ {
		l.Step()
	}

	l.Step()
	checkOccupiedSegments(t, l.railway.segments, []int{2, 4})
}

func TestLineOneTrainMovement(t *testing.T) {
	l := fastLineFixture()
	l.Step()
	assert.Equal(t, 2, l.fleet.Len())
	for i := 0; i < 6; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 3, 6, i)
		assertStationIndex(t, cars[1], 0, 0, i)
		l.Step()
	}
	l.Step()
	for i := 0; i < 4; i++ {
		l.Step()
	}

	l.Step()
	for i := 0; i < 6; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 2, 4, i)
		assertStationIndex(t, cars[1], 1, 2, i)
		l.Step()
	}
	l.Step()
	for i := 0; i < 4; i++ {
		cars := l.fleet.RunningCars()
		assertLineIndex(t, cars[0], 3)
		assertStationIndex(t, cars[1], 1, 2, i)
		l.Step()
	}

	l.Step()
	for i := 0; i < 4; i++ {
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 1, 2, i)
		assertLineIndex(t, cars[1], 3)
		l.Step()
	}

	l.Step()
	for i := 0; i < 2; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 1, 2, i)
		assertStationIndex(t, cars[1], 2, 4, i)
		l.Step()
	}
	l.Step()

	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertLineIndex(t, cars[0], 1)
		assertStationIndex(t, cars[1], 2, 4, i)
		l.Step()
	}
	l.Step()
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 0, 0, i)
		assertLineIndex(t, cars[1], 5)
		l.Step()
	}

	for i := 0; i < 2; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 0, 0, i)
		assertStationIndex(t, cars[1], 3, 6, i)
		l.Step()
	}

	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertLineIndex(t, cars[0], 1)
		assertStationIndex(t, cars[1], 3, 6, i)
		l.Step()
	}
	l.Step()

	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 1, 2, i)
		assertLineIndex(t, cars[1], 5)
		l.Step()
	}
	l.Step()

	for i := 0; i < 2; i++ {
		assert.Equal(t, 2, l.fleet.Len())
		cars := l.fleet.RunningCars()
		assertStationIndex(t, cars[0], 1, 2, i)
		assertStationIndex(t, cars[1], 2, 4, i)
		l.Step()
	}
}

// singleTrainLineFixture builds a four-station line whose B terminus has no
// deposit, so exactly one train is ever dispatched (from terminus A). That
// keeps a multi-turnaround trace unambiguous: there is never a second car
// whose movement could be confused with the first's.
func singleTrainLineFixture() *Line {
	stations := []StationSpec{
		{ID: 0, Duration: 2},
		{ID: 1, Duration: 2},
		{ID: 2, Duration: 2},
		{ID: 3, Duration: 2},
	}
	segments := buildRailwaySegments(stations, []int{3, 3, 3}, 6)
	railway := NewRailway(segments)
	terminusA := NewTerminus(0, 1, 0)
	terminusB := NewTerminus(3, 0, 0)
	fleet := NewFleet(2)
	return NewLine(2, terminusA, terminusB, railway, fleet, 4)
}

// TestLineSecondTerminusTurnaround drives a single train through two
// consecutive direction swaps: terminus A out to terminus B, then all the
// way back to terminus A again. The first swap alone doesn't exercise the
// case where a train re-enters a terminus segment it has already vacated
// and freed once; the second swap does.
func TestLineSecondTerminusTurnaround(t *testing.T) {
	l := singleTrainLineFixture()

	l.Step()
	require.Equal(t, 1, l.fleet.Len())
	car := l.fleet.RunningCars()[0]
	assertStationIndex(t, car, 0, 0, 0)
	assert.Equal(t, DirectionB, car.Direction())
	assert.Equal(t, 3, car.Destination())

	const maxSteps = 200
	runUntil := func(cond func() bool) {
		t.Helper()
		for i := 0; i < maxSteps; i++ {
			if cond() {
				return
			}
			l.Step()
		}
		t.Fatalf("condition not reached within %d steps", maxSteps)
	}

	runUntil(func() bool {
		return car.InStation() && car.CurrentStation() == 3
	})
	assert.Equal(t, DirectionA, car.Direction(), "arriving at terminus B must swap direction to A")
	assert.Equal(t, 0, car.Destination(), "arriving at terminus B must head back toward terminus A")

	runUntil(func() bool {
		return car.InStation() && car.CurrentStation() == 0 && car.Direction() == DirectionB
	})
	assert.Equal(t, 3, car.Destination(), "the second turnaround at terminus A must again head for terminus B")
}

func TestLineStep(t *testing.T) {
	cfg := FastLineConfig{
		StationIDs:      []int{0, 1, 2},
		StationDuration: 6,
		ChunkLengths:    []int{3, 4},
		SplitLength:     6,
		DepoSize:        4,
		TrainDelay:      5,
	}
	l := BuildFastLine(cfg, 3)
	assert.True(t, l.fleet.IsEmpty())
	for i := 0; i < 5; i++ {
		l.Step()
		assert.True(t, l.fleet.IsEmpty())
	}

	l.Step()
	for i := 0; i < 5; i++ {
		l.Step()
		assert.Equal(t, 2, l.fleet.Len())
	}

	l.Step()
	for i := 0; i < 5; i++ {
		l.Step()
		assert.Equal(t, 4, l.fleet.Len())
	}

	l.Step()
	for i := 0; i < 5; i++ {
		l.Step()
		assert.Equal(t, 6, l.fleet.Len())
	}

	l.Step()
	for i := 0; i < 15; i++ {
		l.Step()
		assert.Equal(t, 8, l.fleet.Len())
	}
}
