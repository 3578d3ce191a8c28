package media_test

import (
	"testing"

	"github.com/go-theft-auto/media"
)

func TestRectangleShapeFill(t *testing.T) {
	s := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})

	fill := s.FillVertices()
	if len(fill) != 6 {
		t.Fatalf("expected 6 fan vertices, got %d", len(fill))
	}
	if fill[0].Position != (media.Vec2f{X: 5, Y: 5}) {
		t.Errorf("expected the fan center at (5, 5), got %v", fill[0].Position)
	}
	if fill[5].Position != fill[1].Position {
		t.Error("expected the fan to be closed")
	}
	if s.OutlineVertices() != nil {
		t.Error("expected no outline at zero thickness")
	}
}

func TestShapeOutline(t *testing.T) {
	s := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})
	s.SetOutlineThickness(1)

	if n := len(s.OutlineVertices()); n != 10 {
		t.Fatalf("expected 10 strip vertices, got %d", n)
	}
	b := s.LocalBounds()
	if !approxVec(b.Position, media.Vec2f{X: -1, Y: -1}) || !approxVec(b.Size, media.Vec2f{X: 12, Y: 12}) {
		t.Errorf("expected bounds to include the outline, got %+v", b)
	}
}

func TestShapeTexCoords(t *testing.T) {
	s := media.NewRectangleShape(media.Vec2f{X: 10, Y: 20})
	s.SetTextureRect(media.FloatRect{Position: media.Vec2f{X: 4}, Size: media.Vec2f{X: 32, Y: 32}})

	fill := s.FillVertices()
	if got := fill[3].TexCoords; got != (media.Vec2f{X: 36, Y: 32}) {
		t.Errorf("expected the bottom-right corner at (36, 32), got %v", got)
	}
	if got := fill[0].TexCoords; got != (media.Vec2f{X: 20, Y: 16}) {
		t.Errorf("expected the center at (20, 16), got %v", got)
	}
}

func TestShapeColorChange(t *testing.T) {
	s := media.NewCircleShape(4, 12)
	s.FillVertices()
	s.SetFillColor(media.ColorRed)

	for i, v := range s.FillVertices() {
		if v.Color != media.ColorRed {
			t.Fatalf("vertex %d: expected red, got %v", i, v.Color)
		}
	}
	if s.PointCount() != 12 {
		t.Errorf("expected 12 points, got %d", s.PointCount())
	}
}

func TestDegenerateShape(t *testing.T) {
	s := media.NewConvexShape(media.Vec2f{}, media.Vec2f{X: 1})

	if len(s.FillVertices()) != 0 {
		t.Error("expected no fill for two points")
	}
	if s.LocalBounds() != (media.FloatRect{}) {
		t.Errorf("expected empty bounds, got %+v", s.LocalBounds())
	}
}

func TestShapeBatchedLikeImmediate(t *testing.T) {
	s := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})
	s.SetOutlineThickness(2)
	s.Position = media.Vec2f{X: 3, Y: 3}

	var b media.DrawableBatch
	b.AddShape(s)

	// Fan of 6 gives 4 triangles, strip of 10 gives 8.
	if n := len(b.Indices()); n != (4+8)*3 {
		t.Errorf("expected %d indices, got %d", (4+8)*3, n)
	}
	if got := b.Vertices()[0].Position; got != (media.Vec2f{X: 8, Y: 8}) {
		t.Errorf("expected the transformed center at (8, 8), got %v", got)
	}
}
