package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_NextPrev(t *testing.T) {
	tree := newObjTree(t, 0)
	keys := rg.Perm(300)
	for _, k := range keys {
		tree.Insert(&obj{k})
	}
	n := 0
	for it := tree.Min(); it.Valid(); it = it.Next() {
		assert.Equal(t, n, it.Elem().key)
		n++
	}
	assert.Equal(t, int(tree.Size()), n)
	for it := tree.Max(); it.Valid(); it = it.Prev() {
		n--
		assert.Equal(t, n, it.Elem().key)
	}
	assert.Equal(t, 0, n)

	it := tree.FindKey(150)
	assert.Equal(t, 151, it.Next().Elem().key)
	assert.Equal(t, 149, it.Prev().Elem().key)
	assert.Equal(t, 150, it.Next().Prev().Elem().key)
	assert.False(t, tree.Max().Next().Valid())
	assert.False(t, tree.Min().Prev().Valid())
}

func TestIterator_Zero(t *testing.T) {
	var it Iterator[obj, int, uint32]
	assert.False(t, it.Valid())
	assert.Nil(t, it.Elem())
}

func TestIterator_SurvivesMutation(t *testing.T) {
	tree := newObjTree(t, 0)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(&obj{k})
	}
	it := tree.FindKey(20)
	g := tree.Growths()
	for k := range 1000 {
		tree.Insert(&obj{1000 + k})
	}
	require.Greater(t, tree.Growths(), g)
	for k := range 1000 {
		if k%2 == 0 {
			tree.RemoveKey(1000 + k)
		}
	}
	tree.RemoveKey(10)
	assert.Equal(t, 20, it.Elem().key)
	assert.Equal(t, 30, it.Next().Elem().key)
	assert.False(t, it.Prev().Valid())
}

func TestRBTree_RemoveAt(t *testing.T) {
	tree := newObjTree(t, 0)
	for _, k := range rg.Perm(1000) {
		tree.Insert(&obj{k})
	}
	for it := tree.Min(); it.Valid(); {
		if it.Elem().key%3 == 0 {
			it = tree.RemoveAt(it)
		} else {
			it = it.Next()
		}
	}
	require.NoError(t, tree.Validate())
	got := keysOf(tree)
	assert.Len(t, got, 666)
	assert.False(t, slices.ContainsFunc(got, func(k int) bool { return k%3 == 0 }))
	assert.True(t, slices.IsSorted(got))
}

func TestRBTree_RemoveAtReturnsNext(t *testing.T) {
	tree := newObjTree(t, 0)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(&obj{k})
	}
	seven := tree.FindKey(7)
	//5 has two children, the node of 7 takes its place.
	next := tree.RemoveAt(tree.FindKey(5))
	assert.Equal(t, 7, next.Elem().key)
	assert.Equal(t, 7, seven.Elem().key)
	assert.Equal(t, 4, seven.Prev().Elem().key)
	//9 is the largest.
	assert.False(t, tree.RemoveAt(tree.FindKey(9)).Valid())
	next = tree.RemoveAt(tree.Min())
	assert.Equal(t, 3, next.Elem().key)
	assert.Equal(t, []int{3, 4, 7, 8}, keysOf(tree))
	require.NoError(t, tree.Validate())

	for it := tree.Min(); it.Valid(); {
		it = tree.RemoveAt(it)
	}
	assert.Equal(t, uint32(0), tree.Size())
	require.NoError(t, tree.Validate())
}
