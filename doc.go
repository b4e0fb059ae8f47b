// Package rgbtree provides a generic, self-balancing RGB tree: a
// generalization of the red-black tree that admits an integer color
// parameter N ≥ 1, yielding N+1 colors (0…N). Larger N allows more
// imbalance between the color-0 "skeleton" and the rest of the tree,
// trading query depth for fewer structural changes on mutation. N=1
// behaves exactly like a classic red-black tree.
//
// # Key Features
//
//   - Self-balancing: maintains O(N·log n) insertions, deletions and
//     lookups by repairing two kinds of transient violation — a color
//     violation after insert, and a zero-imbalance after remove.
//   - Intrusive: the tree does not allocate. Callers embed the payload
//     they want ordered inside a Link and hand it to Insert; the tree
//     only ever touches Links it is given.
//   - Generic: works with any Key type (K) and payload type (V), using
//     caller-supplied key-extraction and comparison functions.
//
// # Usage Example
//
//	getKey := func(l *rgbtree.Link[int, string]) int { return len(l.Value()) }
//	compare := func(a, b int) int { return a - b }
//	tree := rgbtree.New[int, string](1, getKey, compare)
//	tree.Insert(rgbtree.NewLink[int, string]("ten"))
//	node := tree.Find(3)
//
// # Intrusive Contract
//
// A Link is allocated and owned by the caller. The tree never reads or
// writes a Link it was not handed via Insert, and never frees one —
// Remove merely detaches it. A Link must not be inserted into more than
// one tree, or inserted twice into the same tree.
//
// # Limitations
//
//   - Not thread-safe — requires external synchronization for
//     concurrent use.
//   - No duplicate-key ordering guarantee beyond "equal keys accrete to
//     the left of existing equal keys at the moment of insertion" — see
//     Tree.Insert.
//   - In-order ascending traversal only (Tree.First / Tree.Next); no
//     reverse or other traversal order is provided.
package rgbtree
