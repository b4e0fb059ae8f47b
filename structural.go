package rgbtree

// setChild assigns v.children[d] = c and, if c is non-nil, sets
// c.parent = v. It does not touch the previous occupant of the slot.
func setChild[K, V any](v *Link[K, V], d Direction, c *Link[K, V]) {
	v.children[d] = c
	if c != nil {
		c.parent = v
	}
}

// replaceChild transplants replacement into child's position under
// parent. If parent is nil, child was the tree's root, so the tree's
// root pointer is rewritten instead and replacement's parent link (if
// any) is cleared.
func (t *Tree[K, V]) replaceChild(parent, child, replacement *Link[K, V]) {
	if parent == nil {
		t.root = replacement
		if replacement != nil {
			replacement.parent = nil
		}
		return
	}
	setChild(parent, dirOf(parent, child), replacement)
}

// replaceLink transplants subst into head's position: subst adopts
// head's two children and color, and head's former parent now points at
// subst instead of head. Used when removing an internal node by
// substituting its in-order successor (Tree.Remove).
func (t *Tree[K, V]) replaceLink(head, subst *Link[K, V]) {
	subst.color = head.color
	setChild(subst, Left, head.children[Left])
	setChild(subst, Right, head.children[Right])
	t.replaceChild(head.parent, head, subst)
}

// rotate performs a single rotation of v in direction d. Let
// p = v.children[d.Inverse()] (p must be non-nil). v.children[d.Inverse()]
// becomes p's old d-child, p.children[d] becomes v, the colors of v and
// p are swapped, and v's former parent is rewired to point at p.
//
// The color swap is deliberate: it is what lets a rotation alone repair
// the typical color violation or zero imbalance, without a separate
// recoloring step.
func (t *Tree[K, V]) rotate(d Direction, v *Link[K, V]) {
	p := v.children[d.Inverse()]

	setChild(v, d.Inverse(), p.children[d])
	parent := v.parent
	v.color, p.color = p.color, v.color
	t.replaceChild(parent, v, p)
	setChild(p, d, v)
}
