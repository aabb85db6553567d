package routing

import "testing"

func TestLinesFromSuccessorMatrix(t *testing.T) {
	lines := LinesFromSuccessorMatrix(fixtureNextMatrix(), fixtureTerminus())
	if lines.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", lines.Len())
	}
	wantLine0 := []int{0, 1, 2, 5, 6}
	wantLine1 := []int{4, 3, 2, 7, 8}
	assertIntSliceEqual(t, lines.Stations(0), wantLine0)
	assertIntSliceEqual(t, lines.Stations(1), wantLine1)
}

func assertIntSliceEqual(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLineSetIsSameLine(t *testing.T) {
	lines := LinesFromSuccessorMatrix(fixtureNextMatrix(), fixtureTerminus())
	ls := NewLineSet(lines)

	lineOne := []int{0, 1, 2, 5, 6}
	lineTwo := []int{4, 3, 2, 7, 8}

	for _, i := range lineOne {
		for _, j := range lineOne {
			if !ls.IsSameLine(i, j) {
				t.Errorf("IsSameLine(%d,%d) = false, want true (both on line one)", i, j)
			}
		}
	}
	for _, i := range lineTwo {
		for _, j := range lineTwo {
			if !ls.IsSameLine(i, j) {
				t.Errorf("IsSameLine(%d,%d) = false, want true (both on line two)", i, j)
			}
		}
	}
	for _, i := range lineOne {
		for _, j := range lineTwo {
			if i != 2 && j != 2 {
				if ls.IsSameLine(i, j) {
					t.Errorf("IsSameLine(%d,%d) = true, want false (different lines)", i, j)
				}
			}
		}
	}
}

func TestLineSetFindInterchanges(t *testing.T) {
	lines := LinesFromSuccessorMatrix(fixtureNextMatrix(), fixtureTerminus())
	ls := NewLineSet(lines)
	got := ls.FindInterchanges()
	want := fixtureInterchanges()
	if len(got) != len(want) {
		t.Fatalf("FindInterchanges() = %v, want %v", got, want)
	}
	for k := range want {
		if _, ok := got[k]; !ok {
			t.Fatalf("FindInterchanges() = %v, want %v", got, want)
		}
	}
}
