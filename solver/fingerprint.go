package solver

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
)

// topology projects a grid to its part-topology: cell i is the part index
// occupying it, or -1 for Empty/Forbidden. De-duplication is by part
// identity, not requirement identity — two requirements sharing a part are
// interchangeable by construction.
func topology(g *grid.Grid, requirements []piece.Requirement) []int32 {
	h, w := g.Settings.Height, g.Settings.Width
	out := make([]int32, h*w)
	for i := 0; i < h*w; i++ {
		out[i] = -1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := g.At(x, y)
			if cell.State != grid.Placed {
				continue
			}
			out[y*w+x] = int32(requirements[cell.RequirementIndex].PartIndex)
		}
	}

	return out
}

func equalTopology(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}

// digest computes a SHA3-256 fingerprint of a topology vector. A
// content-addressable fingerprint is acceptable here because visitedSet
// below never trusts the digest alone — any collision falls back to a
// full equality scan.
func digest(t []int32) [32]byte {
	buf := make([]byte, len(t)*4)
	for i, v := range t {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}

	return sha3.Sum256(buf)
}

// visitedSet de-duplicates part-topology vectors seen so far during one
// search. Lookup is O(1) expected via the digest bucket; any digest
// collision is resolved by a full equality scan of that bucket so two
// distinct topologies are never conflated.
type visitedSet struct {
	buckets map[[32]byte][][]int32
}

func newVisitedSet() *visitedSet {
	return &visitedSet{buckets: make(map[[32]byte][][]int32)}
}

// observe reports whether t has already been recorded, and records it if not.
func (v *visitedSet) observe(t []int32) (alreadySeen bool) {
	return v.observeAtKey(digest(t), t)
}

// observeAtKey is observe with the bucket key supplied explicitly rather
// than derived from t. Split out from observe so the equality-fallback
// scan can be exercised under a forced key collision, independent of
// SHA3-256's actual collision resistance.
func (v *visitedSet) observeAtKey(key [32]byte, t []int32) (alreadySeen bool) {
	for _, existing := range v.buckets[key] {
		if equalTopology(existing, t) {
			return true
		}
	}
	v.buckets[key] = append(v.buckets[key], t)

	return false
}
