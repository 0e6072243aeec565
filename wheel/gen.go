//go:build ignore

// gen.go regenerates wheel30.go and wheel210.go. The tables are derived,
// not tuned: for every residue class the WheelInit entry holds the smallest
// jump to a coprime quotient, and every WheelElement transition is checked
// against direct enumeration of coprime multiples before anything is
// written.
//
// Run via go generate ./wheel or directly: go run gen.go
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
)

// bitValues maps bit k of a sieve byte at offset i to the number
// segmentLow + 30*i + bitValues[k].
var bitValues = [8]int{7, 11, 13, 17, 19, 23, 29, 31}

// groupResidues orders the residues a prime > 5 can have modulo 30; group
// g of the element table serves primes with prime%30 == groupResidues[g].
var groupResidues = [8]int{7, 11, 13, 17, 19, 23, 29, 1}

type wheelInit struct {
	nextMultipleFactor int
	wheelIndex         int
}

type wheelElement struct {
	unsetBit           int
	nextMultipleFactor int
	correct            int
	next               int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func coprimes(modulo int) []int {
	var cs []int
	for c := 1; c < modulo; c++ {
		if gcd(c, modulo) == 1 {
			cs = append(cs, c)
		}
	}
	return cs
}

func makeInit(modulo int) ([]int, []wheelInit) {
	cs := coprimes(modulo)
	index := make(map[int]int, len(cs))
	for i, c := range cs {
		index[c] = i
	}
	init := make([]wheelInit, modulo)
	for r := range init {
		k := 0
		for gcd(r+k, modulo) != 1 {
			k++
		}
		init[r] = wheelInit{k, index[r+k]}
	}
	return cs, init
}

func bitOf(residue30 int) int {
	for k, b := range bitValues {
		if b%30 == residue30 {
			return k
		}
	}
	log.Fatalf("no bit for residue %d", residue30)
	return -1
}

func makeElements(modulo int) []wheelElement {
	cs := coprimes(modulo)
	size := len(cs)
	elems := make([]wheelElement, 0, 8*size)
	for _, pr := range groupResidues {
		for s, c := range cs {
			k := bitOf(pr * c % 30)
			gap := 0
			next := 1
			if s == size-1 {
				gap = cs[0] + modulo - c
				next = -(size - 1)
			} else {
				gap = cs[s+1] - c
			}
			offset := bitValues[k] - 6
			correct := (offset + pr*gap) / 30
			// the corrected offset must land exactly on the bit of
			// the next multiple's residue
			k2 := bitOf(pr * cs[(s+1)%size] % 30)
			if offset+pr*gap-30*correct != bitValues[k2]-6 {
				log.Fatalf("modulo %d: bad correct for pr=%d c=%d", modulo, pr, c)
			}
			elems = append(elems, wheelElement{0xFF ^ 1<<k, gap, correct, next})
		}
	}
	return elems
}

func writeTables(path, name string, modulo, perLineInit, perLineElem int) {
	_, init := makeInit(modulo)
	elems := makeElements(modulo)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gen.go. DO NOT EDIT.\n\npackage wheel\n\n")

	fmt.Fprintf(&buf, "var %sInit = [%d]WheelInit{\n", name, modulo)
	for i, e := range init {
		if i%perLineInit == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(&buf, "{%d, %d},", e.nextMultipleFactor, e.wheelIndex)
		if (i+1)%perLineInit == 0 || i == len(init)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "var %s = [%d]WheelElement{\n", name, len(elems))
	for i, e := range elems {
		if i%perLineElem == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(&buf, "{0x%02x, %d, %d, %d},", e.unsetBit, e.nextMultipleFactor, e.correct, e.next)
		if (i+1)%perLineElem == 0 || i == len(elems)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	fmt.Fprintf(&buf, "}\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}

func main() {
	writeTables("wheel30.go", "wheel30", 30, 6, 4)
	writeTables("wheel210.go", "wheel210", 210, 6, 4)
}
