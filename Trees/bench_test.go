package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bAddN = 100000
	bQryN = bAddN / 2
)

func bKeys() []obj {
	all := make([]obj, bAddN)
	for i := range all {
		all[i].key = rg.Int()
	}
	return all
}

func BenchmarkRBTree_Insert0(b *testing.B) {
	all := bKeys()
	b.ResetTimer()
	for range b.N {
		tree := newObjTree(b, 0)
		for i := range all {
			tree.Insert(&all[i])
		}
	}
}

func BenchmarkRBTree_Insert1(b *testing.B) {
	all := bKeys()
	b.ResetTimer()
	for range b.N {
		tree := newObjTree(b, bAddN)
		for i := range all {
			tree.Insert(&all[i])
		}
	}
}

func BenchmarkRBTree_Reuse(b *testing.B) {
	all := bKeys()
	tree := newObjTree(b, bAddN)
	b.ResetTimer()
	for range b.N {
		tree.Reset(false)
		for i := range all {
			tree.Insert(&all[i])
		}
	}
}

func BenchmarkRBTree_Has(b *testing.B) {
	all := bKeys()
	tree := newObjTree(b, bAddN)
	for i := range all {
		tree.Insert(&all[i])
	}
	b.ResetTimer()
	for range b.N {
		for i := range bQryN {
			tree.Has(&all[i])
		}
	}
}

func BenchmarkRBTree_Remove(b *testing.B) {
	all := bKeys()
	tree := newObjTree(b, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		for i := range all {
			tree.Insert(&all[i])
		}
		b.StartTimer()
		for i := range all {
			tree.Remove(&all[i])
		}
	}
}

func BenchmarkRBTree_All(b *testing.B) {
	all := bKeys()
	tree := newObjTree(b, bAddN)
	for i := range all {
		tree.Insert(&all[i])
	}
	b.ResetTimer()
	for range b.N {
		for range tree.All() {
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	all := bKeys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewG(32, func(a, b *obj) bool { return a.key < b.key })
		for i := range all {
			tree.ReplaceOrInsert(&all[i])
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	all := bKeys()
	tree := btree.NewG(32, func(a, b *obj) bool { return a.key < b.key })
	for i := range all {
		tree.ReplaceOrInsert(&all[i])
	}
	b.ResetTimer()
	for range b.N {
		for i := range bQryN {
			tree.Has(&all[i])
		}
	}
}

type llrbObj obj

func (a *llrbObj) Less(than llrb.Item) bool {
	return a.key < than.(*llrbObj).key
}

func BenchmarkLLRB_Insert(b *testing.B) {
	all := bKeys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for i := range all {
			tree.ReplaceOrInsert((*llrbObj)(&all[i]))
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	all := bKeys()
	tree := llrb.New()
	for i := range all {
		tree.ReplaceOrInsert((*llrbObj)(&all[i]))
	}
	b.ResetTimer()
	for range b.N {
		for i := range bQryN {
			tree.Has((*llrbObj)(&all[i]))
		}
	}
}

func BenchmarkGods_Insert(b *testing.B) {
	all := bKeys()
	b.ResetTimer()
	for range b.N {
		tree := redblacktree.NewWith(utils.IntComparator)
		for i := range all {
			tree.Put(all[i].key, &all[i])
		}
	}
}

func BenchmarkGods_Has(b *testing.B) {
	all := bKeys()
	tree := redblacktree.NewWith(utils.IntComparator)
	for i := range all {
		tree.Put(all[i].key, &all[i])
	}
	b.ResetTimer()
	for range b.N {
		for i := range bQryN {
			tree.Get(all[i].key)
		}
	}
}
