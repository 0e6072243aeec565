package wheel

/*

# Wheel factorization for the segmented sieve of Eratosthenes

Wheel factorization skips multiples of the first few primes so the sieve
never even considers them. A modulo 30 wheel (primes 2, 3, 5) leaves only 8
residue classes per 30 numbers: {1, 7, 11, 13, 17, 19, 23, 29}. Those 8
classes are the "spokes", and conveniently fit one byte: the enclosing sieve
stores 30 numbers per byte, byte i of a segment representing the numbers
[segmentLow+30i+1, segmentLow+30i+30] with bit k standing for
segmentLow+30i+{7,11,13,17,19,23,29,31}[k]. A modulo 210 wheel (primes 2, 3,
5, 7) has 48 spokes and uses the same byte layout.

This package holds the two wheel instantiations and the engine that drives
them. The set of wheels is closed, Modulo30 and Modulo210; their tables are
precomputed constants regenerated by gen.go, never computed at runtime.

## How a prime moves around the wheel

For each sieving prime the sieve stores a multipleIndex (byte offset of the
prime's next multiple within the segment) and a wheelIndex (position in the
cyclic transition table). One CrossOff call clears the bit of the current
multiple and advances both values to the prime's next multiple that is
coprime to the wheel's primes:

	sieve[multipleIndex] &= elements[wheelIndex].UnsetBit
	multipleIndex += elements[wheelIndex].NextMultipleFactor * sievingPrime
	multipleIndex += elements[wheelIndex].Correct
	wheelIndex    += elements[wheelIndex].Next

No division, no branches, no loops. The Correct term exists because
sievingPrime is the prime divided by 30; the residue arithmetic the division
discards is folded into the tables. The transition table is grouped by the
prime's residue modulo 30 (8 groups) with one state per spoke, so the
modulo 30 wheel has 8*8 = 64 states and the modulo 210 wheel 8*48 = 384.

Factorization.Add computes the entry point: given a prime and the lower
bound of the segment where it first becomes eligible, it finds the first
multiple that actually needs crossing off (never below the prime's square,
since smaller composites were eliminated by smaller primes), snaps it
forward to the next wheel-coprime multiple using the WheelInit table, and
hands the resulting record to the injected store sink. Primes whose first
multiple would exceed the stop bound are retired silently: no record, no
error, the prime is simply never needed.

## Bounds

Construction enforces two limits once, so that the hot path can run
unchecked. sieveSize must be <= bucket.MaxSieveSize because multipleIndex is
packed into 23 bits. stop must be <= MaxStop() = 2^64-1 - (2^32-1)*MaxFactor()
so that no addition in Add can overflow 64 bits even for the largest prime
and the largest table jump.

Tables are immutable after process start and safe for unsynchronized reads
from any number of workers. A Factorization instance is single-owner, like
the bucket lists it feeds.

*/
