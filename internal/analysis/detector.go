package analysis

import (
	"github.com/chewxy/math32"

	"KolamStudio/internal/pattern"
)

// Symmetry is a coarse categorical tag, not a verified geometric
// property unless the detector says otherwise.
type Symmetry string

const (
	Rotational Symmetry = "Rotational"
	Reflection Symmetry = "Reflection"
)

// SymmetryDetector derives symmetry tags from a point set and its
// centroid. Implementations must be pure.
type SymmetryDetector interface {
	Detect(points []pattern.Point, center Center) []Symmetry
}

// CountDetector is the historical placeholder: it tags symmetries from
// the raw point count alone and ignores the geometry entirely. More than
// 20 points reads as rotational, more than 50 adds reflection. Kept as
// the default for compatibility with reports produced by earlier
// versions of the studio.
type CountDetector struct{}

func (CountDetector) Detect(points []pattern.Point, _ Center) []Symmetry {
	var tags []Symmetry
	if len(points) > 20 {
		tags = append(tags, Rotational)
	}
	if len(points) > 50 {
		tags = append(tags, Reflection)
	}
	return tags
}

// GeometricDetector does real point-set matching: a pattern is tagged
// Rotational when rotating every point about the centroid by 2*pi/n (for
// some n in 2..8) lands each one within Tolerance of an existing point,
// and Reflection when mirroring across the vertical axis through the
// centroid does. O(n^2) per order, fine at the few hundred points a
// drawing holds.
type GeometricDetector struct {
	// Tolerance is the match distance in canvas units. Zero means 0.5.
	Tolerance float32
}

func (d GeometricDetector) tolerance() float32 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return 0.5
}

func (d GeometricDetector) Detect(points []pattern.Point, center Center) []Symmetry {
	if len(points) < 3 {
		return nil
	}

	var tags []Symmetry
	for order := 2; order <= 8; order++ {
		if d.hasRotation(points, center, order) {
			tags = append(tags, Rotational)
			break
		}
	}
	if d.hasReflection(points, center) {
		tags = append(tags, Reflection)
	}
	return tags
}

// RotationOrders reports every n in 2..8 for which the pattern has
// n-fold rotational symmetry.
func (d GeometricDetector) RotationOrders(points []pattern.Point, center Center) []int {
	var orders []int
	for order := 2; order <= 8; order++ {
		if d.hasRotation(points, center, order) {
			orders = append(orders, order)
		}
	}
	return orders
}

func (d GeometricDetector) hasRotation(points []pattern.Point, center Center, order int) bool {
	angle := 2 * math32.Pi / float32(order)
	sin, cos := math32.Sincos(angle)
	for _, pt := range points {
		dx := pt.X - center.X
		dy := pt.Y - center.Y
		rx := center.X + dx*cos - dy*sin
		ry := center.Y + dx*sin + dy*cos
		if !d.hasNearby(points, rx, ry) {
			return false
		}
	}
	return true
}

func (d GeometricDetector) hasReflection(points []pattern.Point, center Center) bool {
	for _, pt := range points {
		if !d.hasNearby(points, 2*center.X-pt.X, pt.Y) {
			return false
		}
	}
	return true
}

func (d GeometricDetector) hasNearby(points []pattern.Point, x, y float32) bool {
	tol := d.tolerance()
	for _, pt := range points {
		if math32.Hypot(pt.X-x, pt.Y-y) < tol {
			return true
		}
	}
	return false
}
