// Package main shows how to use a Trees.RBTree: points in space ordered by
// their projection on an axis, looked up by their coordinates.
package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/g-m-twostay/ptree/Trees"
)

// vec3 is a point in space.
type vec3 [3]float32

// axis the points are ordered by.
var axis = vec3{1, 0, 0}

func dot(a, b vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// keyCmp compares raw coordinates to a point, by their projections on axis.
// Only needed to access the points by key.
func keyCmp(k vec3, p *vec3) int {
	return cmp.Compare(dot(k, axis), dot(*p, axis))
}

// pointCmp orders the points in the tree.
func pointCmp(a, b *vec3) int {
	return keyCmp(*a, b)
}

const numPoints = 20

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// room for numPoints nodes upfront.
	tree, err := Trees.New(pointCmp, keyCmp, uint32(numPoints))
	if err != nil {
		log.Error("create tree", "err", err)
		os.Exit(1)
	}

	for i := range numPoints {
		f := float64(i) / numPoints
		p := &vec3{float32(math.Sin(f * 0.8768)), float32(math.Sin(f * 0.6547)), float32(math.Sin(f * 0.8436))}
		if !tree.Insert(p) {
			log.Warn("duplicate point", "point", *p)
		}
	}

	second := tree.Min().Next()
	// removing the element invalidates second.
	tree.Remove(second.Elem())

	log.Info("largest", "point", *tree.Max().Elem())

	key := vec3{0, 0, 0}
	if p := tree.Get(key); p != nil {
		log.Info("found by key", "point", *p)
	}
	log.Info("removed by key", "removed", tree.RemoveKey(key))
	log.Info("found after removal", "found", tree.FindKey(key).Valid())

	// remove the largest through its iterator.
	tree.RemoveAt(tree.Max())

	log.Info("points left", "size", tree.Size(), "slots", tree.Cap(), "growths", tree.Growths())

	for it := tree.Min(); it.Valid(); it = it.Next() {
		p := it.Elem()
		fmt.Printf("%f %f %f\n", p[0], p[1], p[2])
	}
	fmt.Println()

	for p := range tree.Backward() {
		fmt.Printf("%f %f %f\n", p[0], p[1], p[2])
	}
	fmt.Println()

	// the tree doesn't own the points: release them through an iteration first
	// if they need releasing, then reuse the tree as new.
	tree.Reset(true)
	log.Info("after reset", "size", tree.Size(), "slots", tree.Cap())

	// or drop its nodes altogether.
	tree.Free()
}
