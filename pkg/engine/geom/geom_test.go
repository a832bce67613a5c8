package geom

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if math.Abs(v.Len()-1.0) > 1e-9 {
		t.Errorf("Normalize length = %v, want 1.0", v.Len())
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	v := Vec2{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Normalize of zero vector = %+v, want zero", v)
	}
}

func TestVec2Dist(t *testing.T) {
	d := Vec2{0, 0}.Dist(Vec2{3, 4})
	if d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	if !a.Intersects(b) {
		t.Error("overlapping rects should intersect")
	}
}

func TestRectTouchingEdgesDoNotIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 10, 10)
	if a.Intersects(b) {
		t.Error("rects sharing only an edge should not intersect")
	}
}

func TestRectAroundCentersOnPoint(t *testing.T) {
	r := RectAround(Vec2{100, 50}, 36, 48)
	c := r.Center()
	if c.X != 100 || c.Y != 50 {
		t.Errorf("RectAround center = %+v, want (100, 50)", c)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %v, want 0", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v, want 1", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5) = %v, want 0.5", got)
	}
}
