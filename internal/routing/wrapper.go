package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// Direction answers, for a passenger travelling from one station to
// another, which terminus's train to board.
type Direction struct {
	mat matrixutil.Matrix[int]
}

// GetDirection returns the terminus station id of the train a passenger at
// start heading to dest must take.
func (d Direction) GetDirection(start, dest int) int {
	return d.mat.At(start, dest)
}

// Interchange answers, for a passenger travelling from one station to
// another, which station to walk to next (the final destination if it is
// on the same line, otherwise the next interchange).
type Interchange struct {
	mat matrixutil.Matrix[int]
}

// NextStation returns the next station a passenger at start heading to
// dest must physically reach.
func (i Interchange) NextStation(start, dest int) int {
	return i.mat.At(start, dest)
}
