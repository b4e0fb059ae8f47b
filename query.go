package rgbtree

// Find looks up key and returns the first matching link encountered
// while descending from the root (the shallowest match, given the
// insertion rule in Insert), or nil if no link has that key.
//
// Equal-comparing keys are never searched past: once a node comparing
// equal is found, the search stops there, so the other links sharing
// that key are never returned by Find even though they remain reachable
// via First/Next. Which of the duplicates is shallowest depends on the
// rotations made since they were inserted, not on insertion order.
func (t *Tree[K, V]) Find(key K) *Link[K, V] {
	curr := t.root
	for curr != nil {
		switch c := t.compare(key, t.getKey(curr)); {
		case c == 0:
			return curr
		case c < 0:
			curr = curr.children[Left]
		default:
			curr = curr.children[Right]
		}
	}
	return nil
}

// first returns the leftmost descendant of v, including v itself if it
// has no left child.
func (t *Tree[K, V]) first(v *Link[K, V]) *Link[K, V] {
	for v.children[Left] != nil {
		v = v.children[Left]
	}
	return v
}

// First returns the leftmost (smallest-keyed) link in the tree, or nil
// if the tree is empty.
func (t *Tree[K, V]) First() *Link[K, V] {
	if t.root == nil {
		return nil
	}
	return t.first(t.root)
}

// Next returns the in-order successor of v: the next link in ascending
// key order, or nil if v is the maximum.
//
// Only ascending in-order traversal is supported; start a traversal
// with First and repeatedly call Next until it returns nil.
func (t *Tree[K, V]) Next(v *Link[K, V]) *Link[K, V] {
	if v.children[Right] != nil {
		return t.first(v.children[Right])
	}
	p := v.parent
	for p != nil && v == p.children[Right] {
		v = p
		p = p.parent
	}
	return p
}
