package rgbtree

import (
	"fmt"
	"strings"
)

// These "connectors" are used for Tree.String when drawing the tree.
const (
	connectorLeft     = " ╭── "
	connectorRight    = " ╰── "
	connectorVertical = " │   "
	connectorSpace    = "     "
)

// GetKeyFunc extracts the ordering key from a Link's stored value. It
// must be pure and total: it may not mutate tree state, and must return
// the same key for the same Link every time it is called.
type GetKeyFunc[K, V any] func(l *Link[K, V]) K

// CompareFunc defines a total order over keys. It must return a
// negative number if a < b, zero if a == b, and a positive number if
// a > b, with the same consistency requirements as strings.Compare.
type CompareFunc[K any] func(a, b K) int

// Tree is an RGB tree of order N over keys K and payloads V. The zero
// value is not usable; construct one with New.
type Tree[K, V any] struct {
	root    *Link[K, V]
	n       uint8
	getKey  GetKeyFunc[K, V]
	compare CompareFunc[K]
	size    int
}

// New constructs an empty Tree of order n (n ≥ 1, admitting colors
// 0..n), using getKey to derive a Link's ordering key and compare to
// order those keys.
//
// New panics if n is 0: order-0 admits only color 0, under which the
// decreasing-color rule for non-zero colors would have to hold over an
// empty range, leaving no color an inserted link could ever take.
func New[K, V any](n uint8, getKey GetKeyFunc[K, V], compare CompareFunc[K]) *Tree[K, V] {
	if n < 1 {
		panic("rgbtree: order N must be at least 1")
	}
	return &Tree[K, V]{
		n:       n,
		getKey:  getKey,
		compare: compare,
	}
}

// Order returns the tree's configured N.
func (t *Tree[K, V]) Order() uint8 {
	return t.n
}

// Size returns the number of links currently in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Root returns the tree's root link, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Link[K, V] {
	return t.root
}

// Parent returns l's parent, or nil if l is the root.
func (t *Tree[K, V]) Parent(l *Link[K, V]) *Link[K, V] {
	return l.parent
}

// Left returns l's left child, or nil if it has none.
func (t *Tree[K, V]) Left(l *Link[K, V]) *Link[K, V] {
	return l.children[Left]
}

// Right returns l's right child, or nil if it has none.
func (t *Tree[K, V]) Right(l *Link[K, V]) *Link[K, V] {
	return l.children[Right]
}

// Key returns l's ordering key, as derived by the tree's GetKeyFunc.
func (t *Tree[K, V]) Key(l *Link[K, V]) K {
	return t.getKey(l)
}

// depth returns the number of edges from the root to l. Used only by
// String's indentation; not part of the public surface.
func (t *Tree[K, V]) depth(l *Link[K, V]) int {
	h := 0
	for l.parent != nil {
		h++
		l = l.parent
	}
	return h
}

// String returns a box-drawing rendering of the tree in ascending
// order, printing each link's value alongside its numeric color.
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "Empty Tree"
	}

	builder := strings.Builder{}
	verticalLineHeights := make(map[int]bool)

	var walk func(l *Link[K, V])
	walk = func(l *Link[K, V]) {
		if l.children[Left] != nil {
			walk(l.children[Left])
		}

		h := t.depth(l)
		for j := 0; j < h-1; j++ {
			if verticalLineHeights[j+1] {
				builder.WriteString(connectorVertical)
			} else {
				builder.WriteString(connectorSpace)
			}
		}

		if l.parent != nil && l.parent.children[Left] == l {
			builder.WriteString(connectorLeft)
		} else if l.parent != nil && l.parent.children[Right] == l {
			builder.WriteString(connectorRight)
		}

		fmt.Fprintf(&builder, "%v [%d]\n", l.value, l.color)

		if l.parent != nil && l.parent.children[Left] == l {
			verticalLineHeights[h] = true
		}
		if l.parent != nil && l.parent.children[Right] == l {
			verticalLineHeights[h] = false
		}
		if l.children[Right] != nil {
			verticalLineHeights[h+1] = true
		} else {
			verticalLineHeights[h+1] = false
		}

		if l.children[Right] != nil {
			walk(l.children[Right])
		}
	}
	walk(t.root)

	return builder.String()
}
