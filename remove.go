package rgbtree

// Remove detaches link from the tree. link must currently belong to
// this tree (e.g. have been returned by Find, First or Next, or be the
// exact link most recently passed to Insert); passing a foreign or
// already-removed link is a precondition violation and will corrupt the
// tree or panic.
//
// After Remove returns, link's color, children and parent are left
// unspecified; it may be reused with Insert (on this or another tree)
// without further preparation, since Insert resets those fields itself.
func (t *Tree[K, V]) Remove(link *Link[K, V]) {
	switch {
	case link.children[Left] == nil:
		t.spliceOut(link, Right)
	case link.children[Right] == nil:
		t.spliceOut(link, Left)
	default:
		// Two children: splice out the in-order successor (which, by
		// construction, has no left child) and graft it into link's
		// position, carrying link's color along with it. No further
		// repair is needed here — succ now carries link's former
		// color, so the tree's structure at link's old position is as
		// balanced as it was before the removal; any imbalance caused
		// by removing succ from its original spot was already fixed by
		// the spliceOut call above, rooted at succ's former parent.
		succ := t.first(link.children[Right])
		t.spliceOut(succ, Right)
		t.replaceLink(link, succ)
	}
	t.size--
}

// spliceOut removes link from the tree, given that link has no child in
// the direction opposite keepDir. link.children[keepDir] (possibly nil)
// takes link's place in its parent's slot. If link was color 0, the
// path through its old position has lost a zero-node, so
// repairZeroImbalance is invoked rooted at link's former parent — unless
// link was the root, in which case the tree has simply shrunk by one
// 0-height level and no repair is needed.
func (t *Tree[K, V]) spliceOut(link *Link[K, V], keepDir Direction) {
	child := link.children[keepDir]
	parent := link.parent
	wasZero := link.color == 0

	var d Direction
	if parent != nil {
		d = dirOf(parent, link)
	}

	t.replaceChild(parent, link, child)

	if wasZero && parent != nil {
		t.repairZeroImbalance(parent, d)
	}
}

// repairZeroImbalance restores balanced 0-height after the path through
// link.children[d] lost exactly one color-0 node relative to the path
// through link.children[d.Inverse()], via four cases (Z1-Z4 below).
//
// Z2/Z3 trigger on a niece reaching the maximum color N specifically —
// not merely non-zero — which is the reading that makes Z1's "both
// children < N" condition and Z2/Z3's trigger mutually exclusive for
// every N, and which reduces to classic red-black delete-fixup at N=1.
func (t *Tree[K, V]) repairZeroImbalance(link *Link[K, V], d Direction) {
	// Step 1: a cheap local fix, if available.
	if c := link.children[d]; c != nil && c.color != 0 {
		c.color = 0
		return
	}

	other := link.children[d.Inverse()]
	// other must exist: the invariant that held before removal
	// guarantees the inverse-d path had at least one color-0 node.

	if other.color == 0 {
		outer := other.children[d.Inverse()] // far niece, relative to d
		inner := other.children[d]           // near niece, relative to d

		switch {
		case outer != nil && outer.color == t.n:
			// Case Z2.
			outer.color = 0
			t.rotate(d, link)
			return
		case inner != nil && inner.color == t.n:
			// Case Z3: zig-zag analogue of Z2.
			inner.color = 0
			t.rotate(d.Inverse(), other)
			t.rotate(d, link)
			return
		default:
			// Case Z1: neither niece is maxed out, so repaint other up
			// to N, removing a zero from the d.Inverse() side, then
			// propagate the loss upward.
			other.color = t.n
			if link.color > 0 {
				link.color = 0
				return
			}
			if link.parent == nil {
				return
			}
			t.repairZeroImbalance(link.parent, dirOf(link.parent, link))
			return
		}
	}

	// Case Z4: other is not color 0, so rotating it up surfaces a
	// deeper subtree on the d side. The recursive call at the same node
	// terminates because each step strictly decreases other's color
	// ceiling, and the decreasing-color rule guarantees a 0-node within
	// at most N-1 further steps.
	t.rotate(d, link)
	t.repairZeroImbalance(link, d)
}
