// Package edge detects threshold crossings in a sampled signal.
package edge

import (
	"fmt"

	"github.com/sartorproj/gosignal/stats"
	"github.com/sartorproj/gosignal/timeseries"
)

// Direction selects which crossing a detection looks for.
type Direction int

const (
	// Rise flags transitions from below the threshold to at-or-above it.
	Rise Direction = iota
	// Down flags transitions from at-or-above the threshold to below it.
	Down
)

func (d Direction) String() string {
	switch d {
	case Rise:
		return "rise"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "rise" or "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "rise", "up", "":
		return Rise, nil
	case "down", "fall":
		return Down, nil
	default:
		return Rise, fmt.Errorf("unknown edge direction %q", s)
	}
}

// EdgeList holds the index values at which edges were detected, ascending.
type EdgeList []float64

// At returns the edge of the given 0-based occurrence and false if the
// list has no such edge.
func (l EdgeList) At(occurrence int) (float64, bool) {
	if occurrence < 0 || occurrence >= len(l) {
		return 0, false
	}
	return l[occurrence], true
}

// LevelColumn names the 0/1 binarized signal written by a detection.
func LevelColumn(signal string, dir Direction) string {
	if dir == Down {
		return signal + "_level_down"
	}
	return signal + "_level"
}

// PointColumn names the 0/1 edge flag written by a detection.
func PointColumn(signal string, dir Direction) string {
	if dir == Down {
		return signal + "_point_down"
	}
	return signal + "_point"
}

// DetectRise returns the index values where signal goes from below criteria
// to at-or-above it. The first row is never an edge.
//
// The binarized signal and the edge flag are added to the table as
// LevelColumn and PointColumn; the signal column itself is left untouched,
// so DetectRise and DetectDown can run on the same column in any order.
func DetectRise(t *timeseries.Table, signal string, criteria float64) (EdgeList, error) {
	return Detect(t, signal, criteria, Rise)
}

// DetectDown returns the index values where signal goes from at-or-above
// criteria to below it. It is the rise detection applied to the complement
// of the binarized signal, at the same threshold.
func DetectDown(t *timeseries.Table, signal string, criteria float64) (EdgeList, error) {
	return Detect(t, signal, criteria, Down)
}

// Detect runs a detection in the given direction.
func Detect(t *timeseries.Table, signal string, criteria float64, dir Direction) (EdgeList, error) {
	values, err := t.Column(signal)
	if err != nil {
		return nil, fmt.Errorf("detect %s: %w", dir, err)
	}

	level := Binarize(values, criteria, dir)
	diff := stats.Diff(level)

	points := make([]float64, len(level))
	edges := EdgeList{}
	for i, d := range diff {
		if d == 1 {
			points[i] = 1
			edges = append(edges, t.Index[i])
		}
	}

	if err := t.SetColumn(LevelColumn(signal, dir), level); err != nil {
		return nil, err
	}
	if err := t.SetColumn(PointColumn(signal, dir), points); err != nil {
		return nil, err
	}
	return edges, nil
}

// Binarize maps values to 1 at-or-above criteria and 0 otherwise, inverted
// for Down. NaN counts as below the threshold.
func Binarize(values []float64, criteria float64, dir Direction) []float64 {
	above, below := 1.0, 0.0
	if dir == Down {
		above, below = 0, 1
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if v >= criteria {
			out[i] = above
		} else {
			out[i] = below
		}
	}
	return out
}
