package main

import (
	"cmp"
	"fmt"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/ptree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// item is the element type stored by every container.
type item struct {
	key int
}

func cmpItem(a, b *item) int {
	return cmp.Compare(a.key, b.key)
}

func keyCmpItem(k int, e *item) int {
	return cmp.Compare(k, e.key)
}

// container is the common surface measured for every implementation. Elements
// are stored by reference; an element equal to one already stored is rejected.
type container interface {
	insert(e *item) bool
	find(e *item) bool
	remove(e *item) bool
	len() int
	// ascend calls f with every key in ascending order. Returns false if the
	// container is unordered.
	ascend(f func(k int)) bool
}

// keyRemover is implemented by containers that can remove by key alone.
type keyRemover interface {
	removeKey(k int) bool
}

var containerMakers = map[string]func(cfg *Config) (container, error){
	"ptree":   newPTree,
	"btree":   func(*Config) (container, error) { return newBTree(), nil },
	"gods":    func(*Config) (container, error) { return godsTree{redblacktree.NewWith(utils.IntComparator)}, nil },
	"llrb":    func(*Config) (container, error) { return llrbTree{llrb.New()}, nil },
	"haxmap":  func(*Config) (container, error) { return haxMap{haxmap.New[int, *item]()}, nil },
	"hashmap": func(*Config) (container, error) { return hashMap{hashmap.New[int, *item]()}, nil },
}

func newContainer(name string, cfg *Config) (container, error) {
	mk, ok := containerMakers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContainer, name)
	}
	return mk(cfg)
}

type pTree struct {
	*Trees.RBTree[item, int, uint32]
}

func newPTree(cfg *Config) (container, error) {
	var hint uint32
	if cfg.Reserve {
		hint = uint32(cfg.N)
	}
	tree, err := Trees.New(cmpItem, keyCmpItem, hint)
	if err != nil {
		return nil, err
	}
	tree.SetAutoGrowLimit(cfg.AutoGrowLimit)
	return pTree{tree}, nil
}

func (u pTree) insert(e *item) bool { return u.Insert(e) }
func (u pTree) find(e *item) bool { return u.Has(e) }
func (u pTree) remove(e *item) bool { return u.Remove(e) }
func (u pTree) removeKey(k int) bool { return u.RemoveKey(k) }
func (u pTree) len() int { return int(u.Size()) }
func (u pTree) ascend(f func(int)) bool {
	for e := range u.All() {
		f(e.key)
	}
	return true
}

type bTree struct {
	*btree.BTreeG[*item]
}

func newBTree() bTree {
	return bTree{btree.NewG(32, func(a, b *item) bool { return a.key < b.key })}
}

func (u bTree) insert(e *item) bool {
	if u.Has(e) {
		return false
	}
	u.ReplaceOrInsert(e)
	return true
}
func (u bTree) find(e *item) bool {
	return u.Has(e)
}
func (u bTree) remove(e *item) bool {
	_, found := u.Delete(e)
	return found
}
func (u bTree) len() int {
	return u.Len()
}
func (u bTree) ascend(f func(int)) bool {
	u.Ascend(func(e *item) bool {
		f(e.key)
		return true
	})
	return true
}

type godsTree struct {
	*redblacktree.Tree
}

func (u godsTree) insert(e *item) bool {
	if _, found := u.Get(e.key); found {
		return false
	}
	u.Put(e.key, e)
	return true
}
func (u godsTree) find(e *item) bool {
	_, found := u.Get(e.key)
	return found
}
func (u godsTree) remove(e *item) bool {
	if _, found := u.Get(e.key); !found {
		return false
	}
	u.Remove(e.key)
	return true
}
func (u godsTree) len() int {
	return u.Size()
}
func (u godsTree) ascend(f func(int)) bool {
	for it := u.Iterator(); it.Next(); {
		f(it.Key().(int))
	}
	return true
}

type llrbItem item

func (a *llrbItem) Less(than llrb.Item) bool {
	return a.key < than.(*llrbItem).key
}

type llrbTree struct {
	*llrb.LLRB
}

func (u llrbTree) insert(e *item) bool {
	if u.Has((*llrbItem)(e)) {
		return false
	}
	u.ReplaceOrInsert((*llrbItem)(e))
	return true
}
func (u llrbTree) find(e *item) bool {
	return u.Has((*llrbItem)(e))
}
func (u llrbTree) remove(e *item) bool {
	return u.Delete((*llrbItem)(e)) != nil
}
func (u llrbTree) len() int {
	return u.Len()
}
func (u llrbTree) ascend(f func(int)) bool {
	if u.Len() == 0 {
		return true
	}
	u.AscendGreaterOrEqual(u.Min(), func(i llrb.Item) bool {
		f(i.(*llrbItem).key)
		return true
	})
	return true
}

type haxMap struct {
	*haxmap.Map[int, *item]
}

func (u haxMap) insert(e *item) bool {
	if _, found := u.Get(e.key); found {
		return false
	}
	u.Set(e.key, e)
	return true
}
func (u haxMap) find(e *item) bool {
	_, found := u.Get(e.key)
	return found
}
func (u haxMap) remove(e *item) bool {
	if _, found := u.Get(e.key); !found {
		return false
	}
	u.Del(e.key)
	return true
}
func (u haxMap) len() int {
	return int(u.Len())
}
func (u haxMap) ascend(func(int)) bool {
	return false
}

type hashMap struct {
	*hashmap.Map[int, *item]
}

func (u hashMap) insert(e *item) bool {
	return u.Insert(e.key, e)
}
func (u hashMap) find(e *item) bool {
	_, found := u.Get(e.key)
	return found
}
func (u hashMap) remove(e *item) bool {
	return u.Del(e.key)
}
func (u hashMap) len() int {
	return u.Len()
}
func (u hashMap) ascend(func(int)) bool {
	return false
}
