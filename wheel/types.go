package wheel

import "errors"

// WheelInit describes, for one residue class of a quotient modulo the
// wheel, how to reach the first multiple that is coprime to the wheel's
// primes: the factor to add to the quotient and the spoke that multiple
// lands on. It is consulted once per prime, at admission.
type WheelInit struct {
	NextMultipleFactor uint8
	WheelIndex         uint8
}

// WheelElement is one transition of the cyclic wheel state machine,
// consulted once per cross-off in the hot loop.
type WheelElement struct {
	// UnsetBit is ANDed into the sieve byte to clear exactly the bit of
	// the current multiple.
	UnsetBit uint8
	// NextMultipleFactor is multiplied by the sieving prime to step the
	// byte offset to the next coprime multiple.
	NextMultipleFactor uint8
	// Correct compensates the byte offset for the truncation in
	// sievingPrime = prime / 30.
	Correct uint8
	// Next is the signed step to the next wheel state, wrapping within
	// the spoke cycle.
	Next int8
}

var (
	ErrSieveSize = errors.New("wheel: sieveSize exceeds bucket.MaxSieveSize")
	ErrStopBound = errors.New("wheel: stop exceeds MaxStop")
)
