package kruskal

// Forest tracks the partial trees built while Kruskal consumes edges.
//
// Every node starts free. Integrate either starts a new tree from two free
// nodes, attaches a free node to an existing tree, merges two trees, or
// discards the edge because both ends already share a tree. The set of
// indexed (non-free) nodes only grows.
//
// Membership is a disjoint-set over parent pointers with union by size and
// path halving; the component key returned by ComponentOf is the current root
// index. Each tree also keeps the ordered list of links that built it, stored
// as a singly linked list over one shared slot array so that merging two
// trees concatenates their lists in O(1) without copying.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	parent []int // parent[v] == -1: v is free; parent[v] == v: v is a root
	size   []int // member count, valid at roots

	head []int // first slot of the root's link list, -1 when empty
	tail []int // last slot of the root's link list, -1 when empty

	links []Link // slot storage, append-only
	next  []int  // next[s]: slot following s in its list, -1 at the end

	components int // number of roots
	indexed    int // number of non-free nodes
}

// NewForest returns a Forest over nodes 0..n-1, all free.
// A negative n is treated as 0.
// Complexity: O(n).
func NewForest(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		head:   make([]int, n),
		tail:   make([]int, n),
	}
	if n > 1 {
		f.links = make([]Link, 0, n-1) // a spanning tree never needs more
		f.next = make([]int, 0, n-1)
	}
	for v := 0; v < n; v++ {
		f.parent[v] = -1
		f.head[v] = -1
		f.tail[v] = -1
	}

	return f
}

// Len returns the number of nodes the forest was created for.
func (f *Forest) Len() int { return len(f.parent) }

// Components returns the number of trees currently in the forest.
func (f *Forest) Components() int { return f.components }

// Indexed returns the number of nodes that belong to some tree.
func (f *Forest) Indexed() int { return f.indexed }

// Complete reports whether a single tree covers every node.
func (f *Forest) Complete() bool {
	return f.components == 1 && f.indexed == len(f.parent)
}

// find returns the root of v's tree. v must be indexed.
func (f *Forest) find(v int) int {
	for f.parent[v] != v {
		// Path halving: point v at its grandparent, then step there.
		f.parent[v] = f.parent[f.parent[v]]
		v = f.parent[v]
	}

	return v
}

func (f *Forest) inRange(v int) bool { return v >= 0 && v < len(f.parent) }

// appendLink adds l at the end of root's link list.
func (f *Forest) appendLink(root int, l Link) {
	slot := len(f.links)
	f.links = append(f.links, l)
	f.next = append(f.next, -1)
	if f.head[root] == -1 {
		f.head[root] = slot
	} else {
		f.next[f.tail[root]] = slot
	}
	f.tail[root] = slot
}

// Integrate offers the edge (a, b) to the forest and reports whether it was
// kept.
//
//   - both free: a new tree {a, b} with links [a-b].
//   - exactly one free: the free node joins the other's tree; the link is
//     recorded as existing-free regardless of argument order.
//   - both in the same tree: the edge would close a cycle; nothing changes
//     and false is returned.
//   - both in different trees: the trees merge. The merged link list is the
//     list of a's tree, then a-b, then the list of b's tree. Which root
//     survives depends on tree sizes and does not affect that order.
//
// Out-of-range nodes and self-loops (a == b) are rejected with false.
// Complexity: amortised O(α(n)).
func (f *Forest) Integrate(a, b int) bool {
	if !f.inRange(a) || !f.inRange(b) || a == b {
		return false
	}
	aFree := f.parent[a] == -1
	bFree := f.parent[b] == -1

	switch {
	case aFree && bFree:
		f.parent[a] = a
		f.parent[b] = a
		f.size[a] = 2
		f.appendLink(a, Link{From: a, To: b})
		f.components++
		f.indexed += 2

		return true

	case !aFree && !bFree:
		ra, rb := f.find(a), f.find(b)
		if ra == rb {
			return false // cycle
		}
		// a's list, then a-b, then b's list; all under ra for now.
		f.appendLink(ra, Link{From: a, To: b})
		if f.head[rb] != -1 {
			f.next[f.tail[ra]] = f.head[rb]
			f.tail[ra] = f.tail[rb]
		}

		// Union by size; the survivor takes over the concatenated list.
		survivor, absorbed := ra, rb
		if f.size[ra] < f.size[rb] {
			survivor, absorbed = rb, ra
			f.head[rb], f.tail[rb] = f.head[ra], f.tail[ra]
		}
		f.parent[absorbed] = survivor
		f.size[survivor] += f.size[absorbed]
		f.head[absorbed], f.tail[absorbed] = -1, -1
		f.components--

		return true

	default:
		existing, free := a, b
		if aFree {
			existing, free = b, a
		}
		root := f.find(existing)
		f.parent[free] = root
		f.size[root]++
		f.appendLink(root, Link{From: existing, To: free})
		f.indexed++

		return true
	}
}

// ComponentOf returns the key of v's tree, or false when v is free or out of
// range. Keys are only meaningful for comparison within the same Forest and
// may change after a merge.
func (f *Forest) ComponentOf(v int) (int, bool) {
	if !f.inRange(v) || f.parent[v] == -1 {
		return 0, false
	}

	return f.find(v), true
}

// Size returns the number of nodes in v's tree, 0 when v is free.
func (f *Forest) Size(v int) int {
	root, ok := f.ComponentOf(v)
	if !ok {
		return 0
	}

	return f.size[root]
}

// Links returns a copy of the ordered link list of v's tree, nil when v is
// free.
// Complexity: O(size of the tree).
func (f *Forest) Links(v int) []Link {
	root, ok := f.ComponentOf(v)
	if !ok {
		return nil
	}
	out := make([]Link, 0, f.size[root]-1)
	for s := f.head[root]; s != -1; s = f.next[s] {
		out = append(out, f.links[s])
	}

	return out
}
