package bucket

// SievingPrime is one sieving prime together with the position of its next
// multiple within the sieve array (multipleIndex) and its current wheel
// state (wheelIndex). The two indexes are compressed into a single 32-bit
// word: multipleIndex occupies the 23 least significant bits, wheelIndex
// the 9 most significant. The prime itself is stored divided by 30.
type SievingPrime struct {
	indexes      uint32
	sievingPrime uint32
}

// New returns a record with both indexes range checked. Use this at
// admission boundaries; the unchecked Set mutators are for the per-segment
// loop where the transition arithmetic keeps the fields in range.
func New(sievingPrime, multipleIndex, wheelIndex uint32) (SievingPrime, error) {
	if multipleIndex > MaxMultipleIndex {
		return SievingPrime{}, ErrMultipleIndexRange
	}
	if wheelIndex > MaxWheelIndex {
		return SievingPrime{}, ErrWheelIndexRange
	}
	var p SievingPrime
	p.Set(sievingPrime, multipleIndex, wheelIndex)
	return p, nil
}

// Set stores the prime and both indexes. multipleIndex must be <=
// MaxMultipleIndex and wheelIndex <= MaxWheelIndex; out of range values
// corrupt the neighbouring field.
func (p *SievingPrime) Set(sievingPrime, multipleIndex, wheelIndex uint32) {
	p.sievingPrime = sievingPrime
	p.SetIndexes(multipleIndex, wheelIndex)
}

// SetIndexes overwrites both packed indexes, leaving the prime unchanged.
func (p *SievingPrime) SetIndexes(multipleIndex, wheelIndex uint32) {
	p.indexes = multipleIndex | wheelIndex<<multipleIndexBits
}

// SetMultipleIndex replaces the multipleIndex field, preserving wheelIndex.
func (p *SievingPrime) SetMultipleIndex(multipleIndex uint32) {
	p.indexes = p.indexes&^uint32(MaxMultipleIndex) | multipleIndex
}

// SetWheelIndex replaces the wheelIndex field, preserving multipleIndex.
func (p *SievingPrime) SetWheelIndex(wheelIndex uint32) {
	p.indexes = p.indexes&MaxMultipleIndex | wheelIndex<<multipleIndexBits
}

// SievingPrime returns the stored prime divided by 30.
func (p *SievingPrime) SievingPrime() uint32 { return p.sievingPrime }

// MultipleIndex returns the byte offset within the active segment of the
// next multiple to cross off.
func (p *SievingPrime) MultipleIndex() uint32 { return p.indexes & MaxMultipleIndex }

// WheelIndex returns the current wheel state.
func (p *SievingPrime) WheelIndex() uint32 { return p.indexes >> multipleIndexBits }
