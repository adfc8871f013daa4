package structure

// Arena-backed Left-Leaning Red-Black tree. Every insert/delete/search
// operates purely on a pre-allocated index arena, so the ordered price
// index built on top of this type never touches the heap once
// constructed.
//
// Design Goals:
// 1. Zero allocation on hot path (insert/delete/search)
// 2. O(log N) worst-case performance guarantee
// 3. Efficient Min and in-order traversal for order book iteration
//
// Ordering is supplied by the caller as a `less` function rather than
// fixed to one key type or one direction, so the same implementation
// backs both a descending bid-side index and an ascending ask-side
// index.
//
// Reference: Robert Sedgewick's LLRB implementation
// https://sedgewick.io/wp-content/themes/flavor/uploads/2016/02/LLRB.pdf

const (
	nullIndex  int32 = -1
	colorRed         = true
	colorBlack       = false
)

// node is a single arena slot: a tree node carrying a key/value pair
// plus the LLRB bookkeeping (children, parent, color).
type node[K any, V any] struct {
	left, right, parent int32
	color               bool
	key                 K
	val                 V
}

// Tree is a fixed-capacity, arena-backed ordered index from K to V.
// Capacity is set once at construction and never grows; exceeding it
// panics. The node arena is the tree's own, with the same non-growing
// contract as Pool in this module's parent package.
type Tree[K any, V any] struct {
	nodes    []node[K, V]
	root     int32
	freeHead int32
	count    int32
	minCache int32
	less     func(a, b K) bool
}

// NewTree creates a new arena-backed tree with pre-allocated capacity
// and the given ordering. less(a, b) must report whether a sorts
// before b; Min returns the first element under that ordering.
func NewTree[K any, V any](capacity int32, less func(a, b K) bool) *Tree[K, V] {
	t := &Tree[K, V]{
		nodes:    make([]node[K, V], capacity),
		root:     nullIndex,
		freeHead: nullIndex,
		minCache: nullIndex,
		less:     less,
	}
	if capacity > 0 {
		for i := int32(0); i < capacity-1; i++ {
			t.nodes[i].left = i + 1
		}
		t.nodes[capacity-1].left = nullIndex
		t.freeHead = 0
	}
	return t
}

// alloc allocates a node from the free list.
func (t *Tree[K, V]) alloc() int32 {
	if t.freeHead == nullIndex {
		panic("structure.Tree: arena exhausted")
	}
	idx := t.freeHead
	t.freeHead = t.nodes[idx].left
	t.nodes[idx] = node[K, V]{
		left:   nullIndex,
		right:  nullIndex,
		parent: nullIndex,
		color:  colorRed, // new nodes are always red in LLRB
	}
	return idx
}

// free returns a node to the free list.
func (t *Tree[K, V]) free(idx int32) {
	var zero V
	t.nodes[idx].val = zero // drop the reference so the arena doesn't pin garbage
	t.nodes[idx].left = t.freeHead
	t.freeHead = idx
}

func (t *Tree[K, V]) isRed(idx int32) bool {
	if idx == nullIndex {
		return false
	}
	return t.nodes[idx].color == colorRed
}

// cmp reports -1/0/1 for key `a` relative to `b` under t.less.
func (t *Tree[K, V]) cmp(a, b K) int {
	if t.less(a, b) {
		return -1
	}
	if t.less(b, a) {
		return 1
	}
	return 0
}

func (t *Tree[K, V]) rotateLeft(h int32) int32 {
	x := t.nodes[h].right
	t.nodes[h].right = t.nodes[x].left
	if t.nodes[x].left != nullIndex {
		t.nodes[t.nodes[x].left].parent = h
	}
	t.nodes[x].left = h
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = colorRed
	t.nodes[x].parent = t.nodes[h].parent
	t.nodes[h].parent = x
	return x
}

func (t *Tree[K, V]) rotateRight(h int32) int32 {
	x := t.nodes[h].left
	t.nodes[h].left = t.nodes[x].right
	if t.nodes[x].right != nullIndex {
		t.nodes[t.nodes[x].right].parent = h
	}
	t.nodes[x].right = h
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = colorRed
	t.nodes[x].parent = t.nodes[h].parent
	t.nodes[h].parent = x
	return x
}

func (t *Tree[K, V]) flipColors(h int32) {
	t.nodes[h].color = !t.nodes[h].color
	t.nodes[t.nodes[h].left].color = !t.nodes[t.nodes[h].left].color
	t.nodes[t.nodes[h].right].color = !t.nodes[t.nodes[h].right].color
}

// Upsert inserts key/val if key is absent, or overwrites val if key is
// already present. Returns true when a new node was inserted.
func (t *Tree[K, V]) Upsert(key K, val V) bool {
	var inserted bool
	t.root, inserted = t.insert(t.root, nullIndex, key, val)
	t.nodes[t.root].color = colorBlack
	if inserted {
		t.count++
		if t.minCache == nullIndex || t.less(key, t.nodes[t.minCache].key) {
			t.minCache = t.findMin(t.root)
		}
	}
	return inserted
}

func (t *Tree[K, V]) insert(h, parent int32, key K, val V) (int32, bool) {
	if h == nullIndex {
		idx := t.alloc()
		t.nodes[idx].key = key
		t.nodes[idx].val = val
		t.nodes[idx].parent = parent
		return idx, true
	}

	var inserted bool
	switch t.cmp(key, t.nodes[h].key) {
	case -1:
		t.nodes[h].left, inserted = t.insert(t.nodes[h].left, h, key, val)
	case 1:
		t.nodes[h].right, inserted = t.insert(t.nodes[h].right, h, key, val)
	default:
		t.nodes[h].val = val
		return h, false
	}

	if t.isRed(t.nodes[h].right) && !t.isRed(t.nodes[h].left) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[h].right) {
		t.flipColors(h)
	}

	return h, inserted
}

// Get returns the value stored at key, if any.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	idx := t.search(t.root, key)
	if idx == nullIndex {
		var zero V
		return zero, false
	}
	return t.nodes[idx].val, true
}

func (t *Tree[K, V]) search(h int32, key K) int32 {
	for h != nullIndex {
		switch t.cmp(key, t.nodes[h].key) {
		case -1:
			h = t.nodes[h].left
		case 1:
			h = t.nodes[h].right
		default:
			return h
		}
	}
	return nullIndex
}

// Min returns the first key/value under this tree's ordering (the
// best price, however "best" was defined by the `less` passed to
// NewTree).
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.minCache == nullIndex {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.nodes[t.minCache]
	return n.key, n.val, true
}

func (t *Tree[K, V]) findMin(h int32) int32 {
	if h == nullIndex {
		return nullIndex
	}
	for t.nodes[h].left != nullIndex {
		h = t.nodes[h].left
	}
	return h
}

// Count returns the number of keys currently in the tree.
func (t *Tree[K, V]) Count() int32 {
	return t.count
}

// Ascend calls fn for every key/value in this tree's ordering (best
// first), stopping early if fn returns false.
func (t *Tree[K, V]) Ascend(fn func(key K, val V) bool) {
	t.ascend(t.root, fn)
}

func (t *Tree[K, V]) ascend(h int32, fn func(K, V) bool) bool {
	if h == nullIndex {
		return true
	}
	if !t.ascend(t.nodes[h].left, fn) {
		return false
	}
	if !fn(t.nodes[h].key, t.nodes[h].val) {
		return false
	}
	return t.ascend(t.nodes[h].right, fn)
}

// Delete removes a key from the tree. Returns true if the key was
// found and deleted.
func (t *Tree[K, V]) Delete(key K) bool {
	if t.root == nullIndex {
		return false
	}

	needUpdateMin := t.minCache != nullIndex && t.cmp(t.nodes[t.minCache].key, key) == 0

	var found bool
	if !t.isRed(t.nodes[t.root].left) && !t.isRed(t.nodes[t.root].right) {
		t.nodes[t.root].color = colorRed
	}
	t.root, found = t.deleteWithFlag(t.root, key)
	if !found {
		if t.root != nullIndex {
			t.nodes[t.root].color = colorBlack
		}
		return false
	}

	if t.root != nullIndex {
		t.nodes[t.root].color = colorBlack
		t.nodes[t.root].parent = nullIndex
	}
	t.count--

	if needUpdateMin {
		t.minCache = t.findMin(t.root)
	}

	return true
}

func (t *Tree[K, V]) deleteWithFlag(h int32, key K) (int32, bool) {
	if h == nullIndex {
		return nullIndex, false
	}

	var found bool
	if t.cmp(key, t.nodes[h].key) == -1 {
		if t.nodes[h].left == nullIndex {
			return h, false
		}
		if !t.isRed(t.nodes[h].left) && !t.isRed(t.nodes[t.nodes[h].left].left) {
			h = t.moveRedLeft(h)
		}
		t.nodes[h].left, found = t.deleteWithFlag(t.nodes[h].left, key)
	} else {
		if t.isRed(t.nodes[h].left) {
			h = t.rotateRight(h)
		}
		if t.cmp(key, t.nodes[h].key) == 0 && t.nodes[h].right == nullIndex {
			t.free(h)
			return nullIndex, true
		}
		if t.nodes[h].right == nullIndex {
			return h, false
		}
		if !t.isRed(t.nodes[h].right) && !t.isRed(t.nodes[t.nodes[h].right].left) {
			h = t.moveRedRight(h)
		}
		if t.cmp(key, t.nodes[h].key) == 0 {
			minIdx := t.findMin(t.nodes[h].right)
			t.nodes[h].key = t.nodes[minIdx].key
			t.nodes[h].val = t.nodes[minIdx].val
			t.nodes[h].right = t.deleteMin(t.nodes[h].right)
			found = true
		} else {
			t.nodes[h].right, found = t.deleteWithFlag(t.nodes[h].right, key)
		}
	}
	return t.balance(h), found
}

func (t *Tree[K, V]) moveRedLeft(h int32) int32 {
	t.flipColors(h)
	if t.isRed(t.nodes[t.nodes[h].right].left) {
		t.nodes[h].right = t.rotateRight(t.nodes[h].right)
		h = t.rotateLeft(h)
		t.flipColors(h)
	}
	return h
}

func (t *Tree[K, V]) moveRedRight(h int32) int32 {
	t.flipColors(h)
	if t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
		t.flipColors(h)
	}
	return h
}

func (t *Tree[K, V]) deleteMin(h int32) int32 {
	if t.nodes[h].left == nullIndex {
		t.free(h)
		return nullIndex
	}
	if !t.isRed(t.nodes[h].left) && !t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.moveRedLeft(h)
	}
	t.nodes[h].left = t.deleteMin(t.nodes[h].left)
	return t.balance(h)
}

func (t *Tree[K, V]) balance(h int32) int32 {
	if t.isRed(t.nodes[h].right) && !t.isRed(t.nodes[h].left) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[h].right) {
		t.flipColors(h)
	}
	return h
}
