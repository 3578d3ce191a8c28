package media_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/media"
)

func makeVertices(n int) []media.Vertex {
	vs := make([]media.Vertex, n)
	for i := range vs {
		vs[i].Position = media.Vec2f{X: float32(i)}
	}
	return vs
}

func TestBatchStripToList(t *testing.T) {
	b := media.AcquireBatch()
	defer media.ReleaseBatch(b)

	b.AddVertices(media.IdentityTransform, makeVertices(5), media.TriangleStrip)

	want := []uint32{0, 1, 2, 3, 2, 1, 2, 3, 4}
	if !slices.Equal(b.Indices(), want) {
		t.Errorf("expected %v, got %v", want, b.Indices())
	}
}

func TestBatchFanToList(t *testing.T) {
	b := media.AcquireBatch()
	defer media.ReleaseBatch(b)

	b.AddTriangles(media.IdentityTransform, makeVertices(3))
	b.AddVertices(media.IdentityTransform, makeVertices(5), media.TriangleFan)

	want := []uint32{0, 1, 2, 3, 4, 5, 3, 5, 6, 3, 6, 7}
	if !slices.Equal(b.Indices(), want) {
		t.Errorf("expected %v, got %v", want, b.Indices())
	}
	if b.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", b.VertexCount())
	}
}

func TestBatchRejectsLines(t *testing.T) {
	var b media.DrawableBatch

	if b.AddVertices(media.IdentityTransform, makeVertices(4), media.Lines) {
		t.Error("expected lines to be rejected")
	}
	if b.AddIndexedVertices(makeVertices(2), []uint32{0, 1}, media.Points) {
		t.Error("expected points to be rejected")
	}
	if !b.IsEmpty() {
		t.Error("expected the batch to stay empty")
	}
}

func TestBatchRejectsIndexOutOfRange(t *testing.T) {
	var b media.DrawableBatch

	if b.AddIndexedVertices(makeVertices(3), []uint32{0, 1, 3}, media.Triangles) {
		t.Error("expected an index past the vertices to be rejected")
	}
	if !b.IsEmpty() || b.VertexCount() != 0 {
		t.Errorf("expected the batch to stay empty, got %d vertices", b.VertexCount())
	}
}

func TestBatchIndexedStrip(t *testing.T) {
	var b media.DrawableBatch
	b.AddTriangles(media.IdentityTransform, makeVertices(3))

	b.AddIndexedVertices(makeVertices(4), []uint32{0, 1, 2, 3}, media.TriangleStrip)

	want := []uint32{0, 1, 2, 3, 4, 5, 6, 5, 4}
	if !slices.Equal(b.Indices(), want) {
		t.Errorf("expected %v, got %v", want, b.Indices())
	}
}

func TestBatchTransformsVertices(t *testing.T) {
	var b media.DrawableBatch
	tr := media.IdentityTransform.Translate(media.Vec2f{X: 10, Y: 20})

	b.AddQuads(tr, makeVertices(6))

	if b.VertexCount() != 4 {
		t.Fatalf("expected the partial quad to be dropped, got %d vertices", b.VertexCount())
	}
	if got := b.Vertices()[1].Position; got != (media.Vec2f{X: 11, Y: 20}) {
		t.Errorf("expected (11, 20), got %v", got)
	}
	if len(b.Indices()) != 6 {
		t.Errorf("expected 6 indices, got %d", len(b.Indices()))
	}
}

func TestBatchSpriteQuad(t *testing.T) {
	var b media.DrawableBatch
	s := media.NewSprite(nil)
	s.TextureRect = media.FloatRect{Size: media.Vec2f{X: 8, Y: 4}}
	s.Position = media.Vec2f{X: 1, Y: 1}

	b.AddSprite(s)

	want := []media.Vec2f{{X: 1, Y: 1}, {X: 1, Y: 5}, {X: 9, Y: 1}, {X: 9, Y: 5}}
	for i, v := range b.Vertices() {
		if v.Position != want[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], v.Position)
		}
	}
	if bounds := s.GlobalBounds(); bounds.Size != (media.Vec2f{X: 8, Y: 4}) {
		t.Errorf("expected 8x4 bounds, got %v", bounds.Size)
	}
}

func TestBatchClearKeepsCapacity(t *testing.T) {
	b := media.AcquireBatch()
	b.AddVertices(media.IdentityTransform, makeVertices(3), media.Triangles)
	media.ReleaseBatch(b)

	b = media.AcquireBatch()
	defer media.ReleaseBatch(b)
	if !b.IsEmpty() || b.VertexCount() != 0 {
		t.Errorf("expected an empty batch from the pool, got %d vertices", b.VertexCount())
	}
}
