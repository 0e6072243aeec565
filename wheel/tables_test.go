package wheel

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// bitValues maps bit k of a sieve byte at offset i to the number
// segmentLow + 30*i + bitValues[k]. The layout belongs to the enclosing
// sieve; the tests need it to decode which number a transition touches.
var bitValues = [8]uint64{7, 11, 13, 17, 19, 23, 29, 31}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func wheels() map[string]*Wheel {
	return map[string]*Wheel{"modulo30": Modulo30, "modulo210": Modulo210}
}

// Every residue reaches a coprime quotient in exactly one correction step,
// with the smallest possible factor, landing on the spoke the table claims.
func TestWheelInitTotality(t *testing.T) {
	for name, w := range wheels() {
		t.Run(name, func(t *testing.T) {
			var spokes []uint64
			for c := uint64(1); c < w.Modulo; c++ {
				if gcd(c, w.Modulo) == 1 {
					spokes = append(spokes, c)
				}
			}
			require.Len(t, spokes, int(w.Size))

			for r := uint64(0); r < w.Modulo; r++ {
				factor := uint64(w.init[r].NextMultipleFactor)
				require.Equal(t, uint64(1), gcd(r+factor, w.Modulo),
					"residue %d: factor %d does not reach a coprime quotient", r, factor)
				for k := uint64(0); k < factor; k++ {
					require.NotEqual(t, uint64(1), gcd(r+k, w.Modulo),
						"residue %d: %d is a smaller valid factor than %d", r, k, factor)
				}
				require.Equal(t, r+factor, spokes[w.init[r].WheelIndex],
					"residue %d lands on the wrong spoke", r)
			}
		})
	}
}

// Each transition mask clears exactly one bit.
func TestUnsetBitClearsExactlyOneBit(t *testing.T) {
	for name, w := range wheels() {
		t.Run(name, func(t *testing.T) {
			for i, e := range w.elements {
				require.Equal(t, 7, bits.OnesCount8(e.UnsetBit), "element %d", i)
			}
		})
	}
}

// Within each spoke group the Next deltas form a single cycle and the
// quotient jumps sum to one full turn of the wheel.
func TestSpokeCycle(t *testing.T) {
	for name, w := range wheels() {
		t.Run(name, func(t *testing.T) {
			size := int(w.Size)
			require.Len(t, w.elements, 8*size)
			for g := 0; g < 8; g++ {
				sum := uint64(0)
				for s := 0; s < size; s++ {
					e := w.elements[g*size+s]
					sum += uint64(e.NextMultipleFactor)
					if s == size-1 {
						require.Equal(t, int8(-(size - 1)), e.Next, "group %d wraps", g)
					} else {
						require.Equal(t, int8(1), e.Next, "group %d state %d", g, s)
					}
				}
				require.Equal(t, w.Modulo, sum, "group %d", g)
			}
		})
	}
}

// The widest jump sits at state 0, as MaxFactor assumes.
func TestMaxFactor(t *testing.T) {
	require.Equal(t, uint64(6), Modulo30.MaxFactor())
	require.Equal(t, uint64(10), Modulo210.MaxFactor())
	for name, w := range wheels() {
		for i, e := range w.elements {
			require.LessOrEqual(t, uint64(e.NextMultipleFactor), w.MaxFactor(),
				"%s element %d", name, i)
		}
	}
}

// Repeated transitions from the state Add produces enumerate exactly the
// prime's multiples that are coprime to the wheel's primes, in strictly
// increasing order, matching trial division.
func TestTransitionsMatchTrialDivision(t *testing.T) {
	primes := []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 53, 61, 97, 101, 149, 211, 1009}
	segmentLows := []uint64{0, 30, 600, 370350}

	for name, w := range wheels() {
		t.Run(name, func(t *testing.T) {
			for _, prime := range primes {
				if gcd(prime, w.Modulo) != 1 {
					continue
				}
				for _, segmentLow := range segmentLows {
					testTransitions(t, w, prime, segmentLow)
				}
			}
		})
	}
}

func testTransitions(t *testing.T, w *Wheel, prime, segmentLow uint64) {
	var rec []uint32
	f, err := New(w, w.MaxStop(), 1<<16, func(sp, mi, wi uint32) {
		rec = []uint32{sp, mi, wi}
	})
	require.NoError(t, err)

	f.Add(prime, segmentLow)
	require.NotNil(t, rec, "prime %d low %d must be admitted", prime, segmentLow)
	sievingPrime, multipleIndex, wheelIndex := rec[0], rec[1], rec[2]
	require.Equal(t, uint32(prime/30), sievingPrime)

	const steps = 200
	sieve := make([]byte, 1<<18)

	// decode each touched number from the byte offset and the cleared bit
	var got []uint64
	prev := uint64(0)
	for len(got) < steps {
		cleared := bits.TrailingZeros8(^w.elements[wheelIndex].UnsetBit)
		n := segmentLow + 30*uint64(multipleIndex) + bitValues[cleared]
		require.Greater(t, n, prev, "prime %d low %d", prime, segmentLow)
		prev = n
		got = append(got, n)
		w.CrossOff(sieve, sievingPrime, &multipleIndex, &wheelIndex)
	}

	// trial division reference: multiples of prime with a coprime cofactor
	var want []uint64
	for c := got[0] / prime; len(want) < steps; c++ {
		if gcd(c, w.Modulo) == 1 {
			want = append(want, prime*c)
		}
	}
	require.GreaterOrEqual(t, got[0], prime*prime, "first multiple is never below the square")
	require.Zero(t, got[0]%prime)
	require.Equal(t, uint64(1), gcd(got[0]/prime, w.Modulo))
	require.Equal(t, want, got, "prime %d low %d", prime, segmentLow)
}
