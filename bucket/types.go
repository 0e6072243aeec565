package bucket

import "errors"

const (
	multipleIndexBits = 23

	// MaxMultipleIndex is the largest segment byte offset representable in
	// a packed record.
	MaxMultipleIndex = 1<<multipleIndexBits - 1

	// MaxWheelIndex is the largest wheel state representable in a packed
	// record. It covers both wheel instantiations: the modulo 210 wheel has
	// 8*48 = 384 states.
	MaxWheelIndex = 1<<9 - 1

	// MaxSieveSize is the largest sieve segment size in bytes for which
	// every byte position remains representable as a multipleIndex.
	MaxSieveSize = 1 << multipleIndexBits

	// Size is the number of records per bucket node. 1024 records of 8
	// bytes keeps a node at 8 KiB plus the link and cursor.
	Size = 1024
)

var (
	ErrMultipleIndexRange = errors.New("bucket: multipleIndex exceeds 2^23-1")
	ErrWheelIndexRange    = errors.New("bucket: wheelIndex exceeds 2^9-1")
)
