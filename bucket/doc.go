package bucket

/*

# Sieving prime storage for the segmented sieve

This package provides the storage primitives for sieving primes: the primes
<= sqrt(stop) that a segmented sieve of Eratosthenes uses over and over to
cross off composites in each segment.

It mirrors the `wheel` package style:

- small, composable functions
- explicit bit layouts
- a burden of knowledge on the caller for hot paths

## Why records are packed

A sieve over a large range keeps millions of sieving primes live at once, and
the cross-off loop touches every one of them once per segment. Cache density
is therefore the dominant concern. Each record is exactly 8 bytes:

	+------------------------+------------------------+
	| indexes (uint32)       | sievingPrime (uint32)  |
	+------------------------+------------------------+
	  bits 0..22  multipleIndex (segment byte offset)
	  bits 23..31 wheelIndex    (wheel state)

sievingPrime is the prime divided by 30, matching the 30-numbers-per-byte
layout of the sieve array. The division is what makes the 32-bit field
sufficient, and it is also why wheel transitions carry a small `correct`
term: increments of the byte offset are computed from prime/30 and the
residue arithmetic is folded into the tables.

## Why a bucket list and not a slice

Records are appended as primes become eligible and re-appended as sieving
moves them between segments. A resizable contiguous array would copy records
on growth and invalidate any position handed out earlier. The Bucket chain
grows by linking a fresh fixed-capacity node instead: records already written
are never moved, only the chain link changes. Whole buckets are rewound with
Reset and reused by the owner once a sieving pass completes; there is no
in-place removal.

Buckets and lists are single-owner structures with no internal
synchronization. Workers sieving independent ranges must each own their own
lists.

*/
