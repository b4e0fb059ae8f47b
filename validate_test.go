package rgbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorKind_String(t *testing.T) {
	assert.Equal(t, "invalid-parent", InvalidParent.String())
	assert.Equal(t, "invalid-decrease", InvalidDecrease.String())
	assert.Equal(t, "invalid-order", InvalidOrder.String())
	assert.Equal(t, "invalid-balance", InvalidBalance.String())
}

func TestValidate_DetectsInvalidParent(t *testing.T) {
	tree := newIntTree(1)
	root := NewLink[int, int](10)
	child := NewLink[int, int](5)
	tree.root = root
	root.children[Left] = child
	// Deliberately leave child.parent nil instead of pointing at root.

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidParent, verr.Kind)
}

func TestValidate_DetectsInvalidDecrease(t *testing.T) {
	tree := newIntTree(2)
	root := NewLink[int, int](10)
	child := NewLink[int, int](5)
	tree.root = root
	root.color = 1
	setChild(root, Left, child)
	child.color = 1 // not strictly below parent's color 1

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidDecrease, verr.Kind)
}

func TestValidate_DetectsInvalidOrder(t *testing.T) {
	tree := newIntTree(1)
	root := NewLink[int, int](10)
	child := NewLink[int, int](20) // greater key placed on the left
	tree.root = root
	setChild(root, Left, child)

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidOrder, verr.Kind)
}

func TestValidate_DetectsInvalidBalance(t *testing.T) {
	tree := newIntTree(1)
	root := NewLink[int, int](10)
	left := NewLink[int, int](5)
	right := NewLink[int, int](15)
	tree.root = root
	setChild(root, Left, left)
	setChild(root, Right, right)
	left.color = 0
	right.color = 1 // right subtree has one fewer color-0 node

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidBalance, verr.Kind)
}

func TestValidate_IsIdempotentAndReadOnly(t *testing.T) {
	tree := newIntTree(2)
	insertAll(tree, []int{5, 3, 7, 1, 9, 2, 4, 6, 8})

	before := tree.String()
	for i := 0; i < 5; i++ {
		require.NoError(t, tree.Validate())
	}
	assert.Equal(t, before, tree.String(), "Validate must not mutate the tree")
}
