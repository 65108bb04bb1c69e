package integrator

import (
	"github.com/tlange/go-interactive-raytracer/pkg/core"
)

// SegmentType classifies a traversed ray segment for debug visualization
type SegmentType string

const (
	SegmentPrimary    SegmentType = "primary"
	SegmentReflection SegmentType = "reflection"
	SegmentRefraction SegmentType = "refraction"
	SegmentDiffuse    SegmentType = "diffuse"
)

// RayPath is the geometric trace of one ray through the scene. SegmentTypes
// holds one classification per segment, so its length is len(Points)-1.
// Hit reports whether at least one real intersection occurred along the path.
type RayPath struct {
	Points       []core.Vec3
	SegmentTypes []SegmentType
	Hit          bool
}

// recorder receives one callback per traversed segment. point is where the
// segment ends, segment is the classification of the ray that produced it,
// and hit distinguishes real intersections from cosmetic extensions.
type recorder interface {
	Visit(point core.Vec3, segment SegmentType, hit bool)
}

// discardRecorder is used by radiance-only traversals
type discardRecorder struct{}

func (discardRecorder) Visit(core.Vec3, SegmentType, bool) {}

// pathRecorder builds a RayPath from traversal callbacks
type pathRecorder struct {
	path RayPath
}

func newPathRecorder(origin core.Vec3) *pathRecorder {
	return &pathRecorder{path: RayPath{Points: []core.Vec3{origin}}}
}

func (r *pathRecorder) Visit(point core.Vec3, segment SegmentType, hit bool) {
	r.path.Points = append(r.path.Points, point)
	r.path.SegmentTypes = append(r.path.SegmentTypes, segment)
	if hit {
		r.path.Hit = true
	}
}

func (r *pathRecorder) Path() RayPath {
	return r.path
}
