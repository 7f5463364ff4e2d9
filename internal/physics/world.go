package physics

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon: ray direction components below this are treated as parallel to the slab.
const parallelEpsilon = 1e-8

// Hit is one ray/collider intersection. Normal is the outward normal of the face the ray
// entered, always one of ±X, ±Y, ±Z.
type Hit struct {
	Body     BodyID
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// World holds static colliders and answers ray and overlap queries by linear traversal.
type World struct {
	bodies []*Body
	ids    []BodyID
	index  map[BodyID]int
	next   BodyID
}

// NewWorld returns an empty collision world.
func NewWorld() *World {
	return &World{index: make(map[BodyID]int)}
}

// AddBody registers b and returns its id.
func (w *World) AddBody(b *Body) BodyID {
	w.next++
	id := w.next
	w.index[id] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	w.ids = append(w.ids, id)
	return id
}

// RemoveBody drops the collider. Unknown ids are ignored.
func (w *World) RemoveBody(id BodyID) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	last := len(w.bodies) - 1
	if i != last {
		w.bodies[i] = w.bodies[last]
		w.ids[i] = w.ids[last]
		w.index[w.ids[i]] = i
	}
	w.bodies[last] = nil
	w.bodies = w.bodies[:last]
	w.ids = w.ids[:last]
	delete(w.index, id)
}

// Body returns the collider for id.
func (w *World) Body(id BodyID) (*Body, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.bodies[i], true
}

// Len returns the number of colliders.
func (w *World) Len() int {
	return len(w.bodies)
}

// CastRayAll returns every collider hit by the ray within maxDist, nearest first.
// maxDist <= 0 means unbounded. dir does not need to be normalized.
func (w *World) CastRayAll(origin, dir mgl32.Vec3, maxDist float32) []Hit {
	if dir.Len() == 0 {
		return nil
	}
	dir = dir.Normalize()
	if maxDist <= 0 {
		maxDist = math32.Inf(1)
	}
	var hits []Hit
	for i, b := range w.bodies {
		t, normal, ok := intersectRay(b.AABB(), origin, dir)
		if !ok || t > maxDist {
			continue
		}
		hits = append(hits, Hit{
			Body:     w.ids[i],
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// CastRay returns the nearest collider hit by the ray within maxDist.
func (w *World) CastRay(origin, dir mgl32.Vec3, maxDist float32) (Hit, bool) {
	hits := w.CastRayAll(origin, dir, maxDist)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// Overlapping returns the colliders whose volume overlaps b. Boxes that only share a face
// do not overlap.
func (w *World) Overlapping(b *Body) []BodyID {
	box := b.AABB()
	var out []BodyID
	for i, other := range w.bodies {
		if _, axis := penetrationAxis(box, other.AABB()); axis >= 0 {
			out = append(out, w.ids[i])
		}
	}
	return out
}

// intersectRay is the slab test. It reports the entry distance and the entered face normal.
// A box containing the origin has no entry face and is not reported.
func intersectRay(box Box, origin, dir mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	axis := -1
	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < parallelEpsilon {
			if origin[i] < box.Min[i] || origin[i] > box.Max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (box.Min[i] - origin[i]) * inv
		t2 := (box.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}
	if axis < 0 || tmin < 0 {
		return 0, mgl32.Vec3{}, false
	}
	var normal mgl32.Vec3
	if dir[axis] > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}
	return tmin, normal, true
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b Box) (depth float32, axis int) {
	overlapX := min(a.Max[0], b.Max[0]) - max(a.Min[0], b.Min[0])
	overlapY := min(a.Max[1], b.Max[1]) - max(a.Min[1], b.Min[1])
	overlapZ := min(a.Max[2], b.Max[2]) - max(a.Min[2], b.Min[2])
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}
