package bucket

// Bucket is a fixed-capacity append-only node of sieving prime records,
// chained into a singly linked list. Once a bucket is full a new node is
// linked; records already written are never moved or copied.
type Bucket struct {
	current int
	next    *Bucket
	primes  [Size]SievingPrime
}

// Primes returns the filled prefix of the bucket. The slice aliases the
// bucket's backing array; it remains valid until the bucket is Reset.
func (b *Bucket) Primes() []SievingPrime { return b.primes[:b.current] }

// Next returns the next bucket in the chain, or nil.
func (b *Bucket) Next() *Bucket { return b.next }

func (b *Bucket) HasNext() bool { return b.next != nil }

func (b *Bucket) Empty() bool { return b.current == 0 }

// Full reports whether the bucket has no room for another record. Check
// this before Store; storing into a full bucket panics.
func (b *Bucket) Full() bool { return b.current == Size }

// Reset rewinds the write cursor so the bucket can be refilled. Slices
// previously returned by Primes are invalidated.
func (b *Bucket) Reset() { b.current = 0 }

// SetNext links next after b. Only the link changes; neither bucket's
// records are touched.
func (b *Bucket) SetNext(next *Bucket) { b.next = next }

// Store writes one record at the cursor and reports whether the bucket can
// take at least one more. The record at the capacity boundary is written
// before the signal fires, so a false return means chain a new bucket
// before the next Store, not that this record was dropped.
func (b *Bucket) Store(sievingPrime, multipleIndex, wheelIndex uint32) bool {
	b.primes[b.current].Set(sievingPrime, multipleIndex, wheelIndex)
	b.current++
	return b.current < Size
}

// List is a growable chain of buckets. Growth allocates and links a fresh
// node; it never reallocates or copies stored records.
type List struct {
	head *Bucket
	tail *Bucket
}

func NewList() *List {
	b := new(Bucket)
	return &List{head: b, tail: b}
}

// Store appends one record, advancing into the next bucket when the tail
// is full. Nodes retained by a Reset are refilled before anything is
// allocated; a fresh bucket is linked only once the chain is exhausted.
// The signature matches wheel.StoreFunc so a list can be used directly as
// a Factorization sink.
func (l *List) Store(sievingPrime, multipleIndex, wheelIndex uint32) {
	if l.tail.Full() {
		next := l.tail.Next()
		if next == nil {
			next = new(Bucket)
			l.tail.SetNext(next)
		}
		l.tail = next
	}
	l.tail.Store(sievingPrime, multipleIndex, wheelIndex)
}

// Head returns the first bucket of the chain for iteration.
func (l *List) Head() *Bucket { return l.head }

// Reset rewinds every bucket in the chain and moves the write position back
// to the head. The nodes stay allocated for reuse in the next pass.
func (l *List) Reset() {
	for b := l.head; b != nil; b = b.Next() {
		b.Reset()
	}
	l.tail = l.head
}
