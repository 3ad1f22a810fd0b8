package partition

// VarKind distinguishes the three disjoint families of boolean variables
// used by the encoding.
type VarKind int

const (
	// KindNode variables are true iff the node belongs to set U.
	KindNode VarKind = iota
	// KindEdge variables are true iff the edge's endpoints lie in different sets.
	KindEdge
	// KindCounter variables are the auxiliary running-tally registers of the
	// sequential counter encoding. They have no meaning outside their
	// cardinality instance.
	KindCounter
)

// VarKey identifies a boolean variable symbolically. Instance is the
// cardinality-instance id and is zero for node and edge variables.
type VarKey struct {
	Kind     VarKind
	Instance int
	I, J     int
}

func NodeKey(i int) VarKey { return VarKey{Kind: KindNode, I: i} }

func EdgeKey(j int) VarKey { return VarKey{Kind: KindEdge, I: j} }

func CounterKey(instance, i, j int) VarKey {
	return VarKey{Kind: KindCounter, Instance: instance, I: i, J: j}
}

// Allocator is the variable allocation table: an append-only mapping from
// symbolic keys to variable ids, numbered sequentially from 1 in first-use
// order. It is owned by a single encoding pipeline and is never shared, so
// repeated sub-encoder calls cannot collide on ids.
type Allocator struct {
	ids  map[VarKey]int64
	next int64
}

func NewAllocator() *Allocator {
	return &Allocator{ids: make(map[VarKey]int64)}
}

// Var returns the variable id for key, allocating the next free id on first use.
func (allocator *Allocator) Var(key VarKey) int64 {
	if id, ok := allocator.ids[key]; ok {
		return id
	}
	allocator.next++
	allocator.ids[key] = allocator.next
	return allocator.next
}

// Lookup returns the id for key without allocating.
func (allocator *Allocator) Lookup(key VarKey) (int64, bool) {
	id, ok := allocator.ids[key]
	return id, ok
}

// Count returns the number of allocated variables, which equals the highest
// id handed out so far.
func (allocator *Allocator) Count() uint64 {
	return uint64(allocator.next)
}

// CountKind returns how many variables of the given kind have been allocated.
func (allocator *Allocator) CountKind(kind VarKind) int {
	count := 0
	for key := range allocator.ids {
		if key.Kind == kind {
			count++
		}
	}
	return count
}
