package rgbtree

// compareInt is the CompareFunc used throughout the test suite for
// trees keyed directly on int payloads.
func compareInt(a, b int) int {
	return a - b
}

// identityKey is the GetKeyFunc used throughout the test suite for
// trees whose payload *is* the key.
func identityKey(l *Link[int, int]) int {
	return l.Value()
}

// newIntTree returns an empty Tree[int, int] of order n, keyed and
// compared on the payload directly.
func newIntTree(n uint8) *Tree[int, int] {
	return New[int, int](n, identityKey, compareInt)
}

// insertAll inserts each key (in order) into tree and returns the
// resulting links, in insertion order.
func insertAll(tree *Tree[int, int], keys []int) []*Link[int, int] {
	links := make([]*Link[int, int], len(keys))
	for i, k := range keys {
		l := NewLink[int, int](k)
		tree.Insert(l)
		links[i] = l
	}
	return links
}

// collect returns every key in tree via First/Next, in ascending order.
func collect(tree *Tree[int, int]) []int {
	var out []int
	for l := tree.First(); l != nil; l = tree.Next(l) {
		out = append(out, l.Value())
	}
	return out
}

// zeroHeights returns, for every root-to-leaf path, the count of
// color-0 nodes on that path. Used by tests that check 0-height balance
// directly rather than only through Validate.
func zeroHeights(tree *Tree[int, int]) []int {
	var out []int
	var walk func(l *Link[int, int], count int)
	walk = func(l *Link[int, int], count int) {
		if l.color == 0 {
			count++
		}
		left, right := tree.Left(l), tree.Right(l)
		if left == nil && right == nil {
			out = append(out, count)
			return
		}
		if left != nil {
			walk(left, count)
		}
		if right != nil {
			walk(right, count)
		}
	}
	if tree.root != nil {
		walk(tree.root, 0)
	}
	return out
}
