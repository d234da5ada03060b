// Package xfloat provides an extended-precision-equivalent summation
// helper: the original C implementation this system descends from
// accumulates modularity and attribute sums in 80-bit "long double" to
// keep large, nearly-cancelling sums (many positive community
// contributions against one negative term) from drifting enough to fool
// a relative-improvement termination test. Go has no type narrower than
// float64 and nothing wider without an external bignum dependency, so
// this package uses float64 with Kahan (compensated) summation instead.
package xfloat
