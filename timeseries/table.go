// Package timeseries provides the time-indexed table the signal packages operate on.
package timeseries

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Table is a set of named numeric columns sharing one ascending time index.
// Index values are seconds. Flag columns hold 0/1; see IsTrue.
type Table struct {
	Index []float64
	Name  string

	columns map[string][]float64
	order   []string
}

// New creates an empty table over the given index.
func New(index []float64) *Table {
	return &Table{
		Index:   index,
		columns: make(map[string][]float64),
	}
}

// NewUniform creates a table with n rows starting at start with a fixed step.
// Index values are computed as start + i*step.
func NewUniform(n int, start, step float64) *Table {
	index := make([]float64, n)
	for i := range index {
		index[i] = start + float64(i)*step
	}
	return New(index)
}

// FromColumns creates a table from an index and columns given in order.
func FromColumns(index []float64, names []string, columns ...[]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%d names for %d columns", len(names), len(columns))
	}
	t := New(index)
	for i, name := range names {
		if err := t.SetColumn(name, columns[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Index)
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// HasColumn reports whether a column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of a column. The slice is shared with the table.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return values, nil
}

// MustColumn is like Column but panics if the column does not exist.
func (t *Table) MustColumn(name string) []float64 {
	values, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return values
}

// SetColumn adds or replaces a column. Replacing keeps the original position.
func (t *Table) SetColumn(name string, values []float64) error {
	if len(values) != len(t.Index) {
		return fmt.Errorf("%w: %q has %d values, index has %d", ErrLengthMismatch, name, len(values), len(t.Index))
	}
	if t.columns == nil {
		t.columns = make(map[string][]float64)
	}
	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.columns[name] = values
	return nil
}

// Validate checks that the table has rows and that the index is strictly ascending.
func (t *Table) Validate() error {
	if len(t.Index) == 0 {
		return ErrEmptyTable
	}
	for i := 1; i < len(t.Index); i++ {
		if !(t.Index[i] > t.Index[i-1]) {
			return fmt.Errorf("%w: row %d (%v) after %v", ErrUnsortedIndex, i, t.Index[i], t.Index[i-1])
		}
	}
	return nil
}

// periodDigits is the number of significant digits SamplingPeriod keeps.
const periodDigits = 9

// SamplingPeriod returns the median step between consecutive index values,
// rounded to periodDigits significant digits, or NaN when the table has
// fewer than two rows. The rounding strips the float noise of differencing
// decimal timestamps, so 0.07-0.06 counts as 0.01.
func (t *Table) SamplingPeriod() float64 {
	if len(t.Index) < 2 {
		return math.NaN()
	}
	steps := make([]float64, len(t.Index)-1)
	for i := 1; i < len(t.Index); i++ {
		steps[i-1] = t.Index[i] - t.Index[i-1]
	}
	sort.Float64s(steps)

	n := len(steps)
	median := steps[n/2]
	if n%2 == 0 {
		median = (steps[n/2-1] + steps[n/2]) / 2
	}
	return significant(median, periodDigits)
}

func significant(v float64, digits int) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return v
	}
	places := int32(digits - 1 - int(math.Floor(math.Log10(v))))
	out, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return out
}

// Row returns the position of the first row whose index, rounded to the
// given number of decimals, equals at rounded the same way. ok is false when
// no row matches.
func (t *Table) Row(at float64, decimals int32) (int, bool) {
	target := decimal.NewFromFloat(at).Round(decimals)
	for i, v := range t.Index {
		if decimal.NewFromFloat(v).Round(decimals).Equal(target) {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the value of a column at the row matched by Row.
func (t *Table) Lookup(name string, at float64, decimals int32) (float64, error) {
	values, err := t.Column(name)
	if err != nil {
		return math.NaN(), err
	}
	i, ok := t.Row(at, decimals)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %v", ErrTimeNotFound, at)
	}
	return values[i], nil
}

// Slice returns an independent copy of rows start to end (exclusive).
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > len(t.Index) {
		end = len(t.Index)
	}
	if start >= end {
		start, end = 0, 0
	}

	index := make([]float64, end-start)
	copy(index, t.Index[start:end])

	out := New(index)
	out.Name = t.Name
	for _, name := range t.order {
		values := make([]float64, end-start)
		copy(values, t.columns[name][start:end])
		out.columns[name] = values
		out.order = append(out.order, name)
	}
	return out
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Slice(0, len(t.Index))
}

// Reindex replaces the index with start, start+step, start+2*step, ...
func (t *Table) Reindex(start, step float64) {
	for i := range t.Index {
		t.Index[i] = start + float64(i)*step
	}
}

// IsTrue reports whether a flag value counts as set.
func IsTrue(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}
