package wheel

import "math"

//go:generate go run gen.go

// invalidOffset marks the residues of numbers divisible by 2, 3 or 5 in the
// offsets table. A correctly configured caller never admits a prime from
// the wheel's excluded set; the sentinel makes a violating wheel index
// recognizably out of range rather than silently plausible.
const invalidOffset = 0xFF

// coprimeResidues are the residues modulo 30 a prime > 5 can have, in spoke
// order. The offsets table maps each to the base of its group in the
// element table.
var coprimeResidues = [8]int{7, 11, 13, 17, 19, 23, 29, 1}

// Wheel bundles the precomputed tables of one wheel instantiation. The set
// of instantiations is closed: Modulo30 skips multiples of 2, 3 and 5,
// Modulo210 additionally skips multiples of 7. Wheels are immutable and
// safe for concurrent use.
type Wheel struct {
	// Modulo is the product of the wheel's primes.
	Modulo uint64
	// Size is the number of spokes, i.e. residues coprime to Modulo.
	Size uint32

	init     []WheelInit
	elements []WheelElement
	offsets  [30]uint32
}

var (
	// Modulo30 is the 3rd wheel, skipping multiples of 2, 3 and 5.
	Modulo30 = newWheel(30, 8, wheel30Init[:], wheel30[:])
	// Modulo210 is the 4th wheel, skipping multiples of 2, 3, 5 and 7.
	Modulo210 = newWheel(210, 48, wheel210Init[:], wheel210[:])
)

func newWheel(modulo uint64, size uint32, init []WheelInit, elements []WheelElement) *Wheel {
	w := &Wheel{Modulo: modulo, Size: size, init: init, elements: elements}
	for r := range w.offsets {
		w.offsets[r] = invalidOffset
	}
	for spoke, r := range coprimeResidues {
		w.offsets[r] = uint32(spoke) * size
	}
	return w
}

// MaxFactor returns the largest quotient jump any table entry applies: 6
// for the modulo 30 wheel, 10 for the modulo 210 wheel. State 0 (spoke
// residue 1) always carries the widest gap.
func (w *Wheel) MaxFactor() uint64 {
	return uint64(w.elements[0].NextMultipleFactor)
}

// MaxStop returns the largest stop bound for which Add is free of 64-bit
// overflow: even the largest representable prime jumped by the widest table
// gap stays below 2^64.
func (w *Wheel) MaxStop() uint64 {
	return math.MaxUint64 - math.MaxUint32*w.MaxFactor()
}

// CrossOff clears the bit of the current multiple of sievingPrime within
// sieve and advances multipleIndex and wheelIndex to the prime's next
// multiple that is coprime to the wheel's primes. The updated values must
// replace the stored record for the next invocation, possibly in a later
// segment.
//
// The burden of knowledge is on the caller: sievingPrime is the prime
// divided by 30, multipleIndex must lie within sieve and wheelIndex within
// the wheel's element table. Callers advancing a record past the end of the
// active segment subtract the segment size from multipleIndex themselves
// before the next pass.
func (w *Wheel) CrossOff(sieve []byte, sievingPrime uint32, multipleIndex, wheelIndex *uint32) {
	e := &w.elements[*wheelIndex]
	sieve[*multipleIndex] &= e.UnsetBit
	*multipleIndex += uint32(e.NextMultipleFactor)*sievingPrime + uint32(e.Correct)
	*wheelIndex += uint32(int32(e.Next))
}
