package wheel

import (
	"github.com/gowtham-munukutla/primesieve/bucket"
)

// StoreFunc receives one admitted sieving prime: the prime divided by 30,
// the byte offset of its first multiple to cross off, and its initial wheel
// state. bucket.List.Store satisfies this signature.
type StoreFunc func(sievingPrime, multipleIndex, wheelIndex uint32)

// Factorization admits sieving primes for one wheel instantiation. It
// computes, per prime, the first multiple that must be crossed off and the
// wheel state to resume from, and hands the record to the injected store
// sink. The size-class strategies of the enclosing sieve decide what the
// sink does with it.
//
// A Factorization is owned by a single worker; independent ranges sieved in
// parallel need independent instances.
type Factorization struct {
	wheel *Wheel
	stop  uint64
	store StoreFunc
}

// New validates the configuration and returns an engine for w.
//
// sieveSize is the segment size in bytes and must be <= bucket.MaxSieveSize
// so that every byte offset fits the 23-bit multipleIndex field. stop is
// the inclusive upper bound for primes to be generated and must be <=
// w.MaxStop() to rule out 64-bit overflow in Add. Violations return
// ErrSieveSize or ErrStopBound and no engine.
func New(w *Wheel, stop uint64, sieveSize uint64, store StoreFunc) (*Factorization, error) {
	if sieveSize > bucket.MaxSieveSize {
		return nil, ErrSieveSize
	}
	if stop > w.MaxStop() {
		return nil, ErrStopBound
	}
	return &Factorization{wheel: w, stop: stop, store: store}, nil
}

// Stop returns the engine's inclusive upper bound.
func (f *Factorization) Stop() uint64 { return f.stop }

// Wheel returns the wheel instantiation the engine was built with.
func (f *Factorization) Wheel() *Wheel { return f.wheel }

// Add admits prime as a sieving prime for the segment starting at
// segmentLow. It calculates the first multiple > segmentLow that is coprime
// to the wheel's primes, never below prime*prime since smaller composites
// were already eliminated by smaller primes, then stores the prime via the
// sink. If that multiple exceeds stop the prime is retired: the sink is not
// called and the prime will never again be relevant.
//
// prime must be coprime to the wheel's modulus; the smallest primes (2, 3,
// 5 and, for Modulo210, 7) are the wheel's job to skip, not to sieve, and
// must be excluded upstream.
func (f *Factorization) Add(prime, segmentLow uint64) {
	w := f.wheel
	segmentLow += 6
	// first multiple > segmentLow
	quotient := segmentLow/prime + 1
	multiple := prime * quotient
	if multiple > f.stop {
		return
	}
	// prime^2 is the first multiple that must be crossed off
	if multiple < prime*prime {
		multiple = prime * prime
		quotient = prime
	}
	// snap forward to the next multiple coprime to the wheel's primes
	init := w.init[quotient%w.Modulo]
	multiple += prime * uint64(init.NextMultipleFactor)
	if multiple > f.stop {
		return
	}
	multipleIndex := uint32((multiple - segmentLow) / 30)
	wheelIndex := w.offsets[prime%30] + uint32(init.WheelIndex)
	f.store(uint32(prime/30), multipleIndex, wheelIndex)
}
