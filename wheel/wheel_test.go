package wheel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowtham-munukutla/primesieve/bucket"
)

func discard(sievingPrime, multipleIndex, wheelIndex uint32) {}

func TestNewStopBoundary(t *testing.T) {
	for name, w := range wheels() {
		t.Run(name, func(t *testing.T) {
			f, err := New(w, w.MaxStop(), 4096, discard)
			require.NoError(t, err)
			require.Equal(t, w.MaxStop(), f.Stop())
			require.Same(t, w, f.Wheel())

			f, err = New(w, w.MaxStop()+1, 4096, discard)
			require.ErrorIs(t, err, ErrStopBound)
			require.Nil(t, f)
		})
	}
}

func TestNewSieveSizeBoundary(t *testing.T) {
	_, err := New(Modulo30, 1000, bucket.MaxSieveSize, discard)
	require.NoError(t, err)

	f, err := New(Modulo30, 1000, bucket.MaxSieveSize+1, discard)
	require.ErrorIs(t, err, ErrSieveSize)
	require.Nil(t, f)
}

func TestAddRetiresBeyondStop(t *testing.T) {
	f, err := New(Modulo30, 100, 4096, func(sp, mi, wi uint32) {
		t.Fatalf("retired prime must not be stored: (%d, %d, %d)", sp, mi, wi)
	})
	require.NoError(t, err)

	// 11*11 = 121 > 100: the first multiple that needs crossing off is out
	// of range, even though smaller multiples of 11 exist below stop
	f.Add(11, 0)

	// first multiple > 90 is 7*14 = 98 <= 100, but snapping to the next
	// wheel-coprime quotient overshoots stop
	f.Add(7, 90)
}

func TestAddStartsAtSquare(t *testing.T) {
	var got [][3]uint32
	f, err := New(Modulo30, 100000, 4096, func(sp, mi, wi uint32) {
		got = append(got, [3]uint32{sp, mi, wi})
	})
	require.NoError(t, err)

	// first multiple > 6 of 7 would be 14, but sieving starts at 49:
	// multipleIndex (49-6)/30 = 1, group 0 (7 mod 30), spoke of quotient 7
	f.Add(7, 0)
	require.Equal(t, [][3]uint32{{0, 1, 1}}, got)

	// 31 stores sievingPrime 31/30 = 1 and starts at 961: multipleIndex
	// (961-6)/30 = 31, group 7 (1 mod 30), spoke of quotient 31
	got = nil
	f.Add(31, 0)
	require.Equal(t, [][3]uint32{{1, 31, 56}}, got)
}

func TestAddResumesPastSquare(t *testing.T) {
	var got [][3]uint32
	f, err := New(Modulo30, 100000, 4096, func(sp, mi, wi uint32) {
		got = append(got, [3]uint32{sp, mi, wi})
	})
	require.NoError(t, err)

	// past 7^2 the first multiple is derived from the segment bound: the
	// first quotient > (600+6)/7 = 86 with a coprime residue is 89, so the
	// multiple is 623 and multipleIndex (623-606)/30 = 0
	f.Add(7, 600)
	require.Len(t, got, 1)
	require.Equal(t, uint32(0), got[0][0])
	require.Equal(t, uint32(0), got[0][1])
	require.Equal(t, Modulo30.offsets[7]+uint32(wheel30Init[89%30].WheelIndex), got[0][2])
}

// Primes from the wheel's excluded set must be filtered upstream; the
// offsets table answers them with a sentinel so the mistake is visible in
// the stored wheel index instead of aliasing a valid state.
func TestAddExcludedPrimeYieldsSentinelState(t *testing.T) {
	for _, prime := range []uint64{2, 3, 5} {
		var got [][3]uint32
		f, err := New(Modulo30, 1<<40, 4096, func(sp, mi, wi uint32) {
			got = append(got, [3]uint32{sp, mi, wi})
		})
		require.NoError(t, err)

		f.Add(prime, 0)
		require.Len(t, got, 1)
		require.GreaterOrEqual(t, got[0][2], uint32(invalidOffset),
			"prime %d must map to the invalid offset sentinel", prime)
		require.Greater(t, got[0][2], uint32(8*Modulo30.Size)-1,
			"prime %d: sentinel state lies outside the element table", prime)
	}
}
