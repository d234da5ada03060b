package xfloat

// Sum is a Kahan (compensated) summation accumulator. Its zero value is a
// valid empty sum. Add never allocates and is safe to call in a hot loop.
type Sum struct {
	total float64
	comp  float64 // running compensation for lost low-order bits
}

// Add folds x into the running total.
func (s *Sum) Add(x float64) {
	y := x - s.comp
	t := s.total + y
	s.comp = (t - s.total) - y
	s.total = t
}

// Value returns the compensated total accumulated so far.
func (s *Sum) Value() float64 {
	return s.total
}

// KahanSum sums xs with compensation in one call.
func KahanSum(xs []float64) float64 {
	var s Sum
	for _, x := range xs {
		s.Add(x)
	}
	return s.Value()
}
