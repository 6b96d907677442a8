package vmath

// ClosestPointOnSegment projects p onto segment a-b, clamped to the endpoints
// Zero-length segments resolve to a
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	d := V2Sub(b, a)
	lenSq := V2MagSq(d)
	if lenSq == 0 {
		return a
	}
	t := V2Dot(V2Sub(p, a), d) / lenSq
	return V2Add(a, V2Scale(d, Clamp(t, 0, 1)))
}

// SegmentDist returns the distance from p to the nearest point of segment a-b
func SegmentDist(p, a, b Vec2) float64 {
	return V2Dist(p, ClosestPointOnSegment(p, a, b))
}

// PolylineDist returns the distance from p to the nearest segment of path
// Single-point paths measure to that point, empty paths return ok=false
func PolylineDist(p Vec2, path []Vec2) (dist float64, ok bool) {
	switch len(path) {
	case 0:
		return 0, false
	case 1:
		return V2Dist(p, path[0]), true
	}

	dist = SegmentDist(p, path[0], path[1])
	for i := 2; i < len(path); i++ {
		if d := SegmentDist(p, path[i-1], path[i]); d < dist {
			dist = d
		}
	}
	return dist, true
}

// CirclesOverlap reports whether two circles intersect (strict)
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return V2Dist(a, b) < ra+rb
}
