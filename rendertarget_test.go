package media_test

import (
	"testing"

	"github.com/go-theft-auto/media"
)

func newTestTarget(t *testing.T, opts ...media.RenderTargetOption) (*fakeDevice, *fakeSurface, *media.RenderTarget) {
	t.Helper()
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)
	surface := newFakeSurface(gc, 800, 600)
	return dev, surface, media.NewRenderTarget(gc, surface, opts...)
}

func newTestTexture(t *testing.T, gc *media.GraphicsContext) *media.Texture {
	t.Helper()
	tex, err := media.NewTexture(gc, 16, 16)
	if err != nil {
		t.Fatalf("NewTexture returned error: %v", err)
	}
	return tex
}

func TestSetActiveShortCircuits(t *testing.T) {
	_, surface, rt := newTestTarget(t)

	if !rt.SetActive(true) || !rt.SetActive(true) {
		t.Fatal("expected SetActive to succeed")
	}
	if surface.activations != 1 {
		t.Errorf("expected 1 surface activation, got %d", surface.activations)
	}
}

func TestStatesCacheSkipsRedundantCalls(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	shape := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})

	rt.Draw(shape, media.DefaultRenderStates())
	rt.Draw(shape, media.DefaultRenderStates())

	if n := dev.calls["CreateProgram"]; n != 1 {
		t.Errorf("expected 1 CreateProgram, got %d", n)
	}
	if n := dev.calls["BlendFuncSeparate"]; n != 1 {
		t.Errorf("expected 1 BlendFuncSeparate, got %d", n)
	}
	if n := len(dev.drawArrays); n != 2 {
		t.Errorf("expected 2 draws, got %d", n)
	}
}

func TestIdenticalStatesBindOnce(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	sprite := media.NewSprite(newTestTexture(t, rt.GraphicsContext()))

	rt.Draw(sprite, media.DefaultRenderStates())
	if dev.calls["UseProgram"] == 0 || dev.calls["BindTexture"] == 0 {
		t.Fatalf("expected the first draw to bind program and texture, got %v", dev.calls)
	}
	dev.reset()

	for range 4 {
		rt.Draw(sprite, media.DefaultRenderStates())
	}
	for _, call := range []string{"UseProgram", "BindTexture", "BlendFuncSeparate", "UniformMatrix4", "Viewport", "BindVertexArray"} {
		if n := dev.calls[call]; n != 0 {
			t.Errorf("expected no %s for identical states, got %d", call, n)
		}
	}
	if n := len(dev.drawArrays); n != 4 {
		t.Errorf("expected 4 draws, got %d", n)
	}
}

func TestTransformChangeUploadsMatrix(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	shape := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})
	rt.Draw(shape, media.DefaultRenderStates())
	dev.reset()

	shape.Position = media.Vec2f{X: 5}
	rt.Draw(shape, media.DefaultRenderStates())

	if n := dev.calls["UniformMatrix4"]; n != 1 {
		t.Errorf("expected 1 UniformMatrix4, got %d", n)
	}
	if n := dev.calls["UseProgram"]; n != 0 {
		t.Errorf("expected no UseProgram, got %d", n)
	}
}

func TestForeignTargetInvalidatesCache(t *testing.T) {
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)
	surface := newFakeSurface(gc, 800, 600)
	a := media.NewRenderTarget(gc, surface)
	b := media.NewRenderTarget(gc, surface)
	shape := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})

	a.Draw(shape, media.DefaultRenderStates())
	dev.reset()

	// b resets the GL state, then binds its program.
	b.Draw(shape, media.DefaultRenderStates())
	if n := dev.calls["UseProgram"]; n != 2 {
		t.Errorf("expected 2 UseProgram for b, got %d", n)
	}
	dev.reset()

	// b touched the shared context, so a reapplies everything once.
	a.Draw(shape, media.DefaultRenderStates())
	for _, call := range []string{"UseProgram", "BindTexture", "BlendFuncSeparate", "Viewport"} {
		if n := dev.calls[call]; n != 1 {
			t.Errorf("expected 1 %s after b was active, got %d", call, n)
		}
	}
	dev.reset()

	a.Draw(shape, media.DefaultRenderStates())
	for _, call := range []string{"UseProgram", "BindTexture", "BlendFuncSeparate", "Viewport"} {
		if n := dev.calls[call]; n != 0 {
			t.Errorf("expected no %s on a second draw, got %d", call, n)
		}
	}
}

func TestBlendModeChangeIsApplied(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	shape := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})

	rt.Draw(shape, media.DefaultRenderStates())
	states := media.DefaultRenderStates()
	states.BlendMode = media.BlendAdd
	rt.Draw(shape, states)

	if n := dev.calls["BlendFuncSeparate"]; n != 2 {
		t.Errorf("expected 2 BlendFuncSeparate, got %d", n)
	}
}

func TestSpriteImmediate(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	sprite := media.NewSprite(newTestTexture(t, rt.GraphicsContext()))
	dev.reset()

	rt.Draw(sprite, media.DefaultRenderStates())

	if n := dev.calls["BufferVertices"]; n != 1 {
		t.Errorf("expected 1 BufferVertices, got %d", n)
	}
	if len(dev.drawArrays) != 1 || dev.drawArrays[0] != media.TriangleStrip {
		t.Fatalf("expected one triangle strip draw, got %v", dev.drawArrays)
	}
	if len(dev.lastVerts) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(dev.lastVerts))
	}
	stats := rt.CurrentDrawStatistics()
	if stats.DrawCalls != 1 || stats.Vertices != 4 {
		t.Errorf("expected 1 call and 4 vertices, got %+v", stats)
	}
}

func TestAutoBatchMergesSprites(t *testing.T) {
	dev, _, rt := newTestTarget(t, media.WithAutoBatch(media.AutoBatchCPU))
	tex := newTestTexture(t, rt.GraphicsContext())

	for i := range 3 {
		s := media.NewSprite(tex)
		s.Position = media.Vec2f{X: float32(i * 20)}
		rt.Draw(s, media.DefaultRenderStates())
	}
	if len(dev.drawIndexed) != 0 {
		t.Fatalf("expected no draw before Flush, got %d", len(dev.drawIndexed))
	}

	stats := rt.Flush()
	if len(dev.drawIndexed) != 1 || dev.drawIndexed[0] != 18 {
		t.Fatalf("expected one draw of 18 indices, got %v", dev.drawIndexed)
	}
	if stats.DrawCalls != 1 {
		t.Errorf("expected 1 draw call, got %d", stats.DrawCalls)
	}
}

func TestAutoBatchFlushesOnStateChange(t *testing.T) {
	dev, _, rt := newTestTarget(t, media.WithAutoBatch(media.AutoBatchCPU))
	gc := rt.GraphicsContext()
	a := media.NewSprite(newTestTexture(t, gc))
	b := media.NewSprite(newTestTexture(t, gc))

	rt.Draw(a, media.DefaultRenderStates())
	rt.Draw(b, media.DefaultRenderStates())
	rt.Draw(a, media.DefaultRenderStates())
	rt.Flush()

	if len(dev.drawIndexed) != 3 {
		t.Errorf("expected 3 draws for alternating textures, got %d", len(dev.drawIndexed))
	}
}

func TestAutoBatchThreshold(t *testing.T) {
	dev, _, rt := newTestTarget(t, media.WithAutoBatch(media.AutoBatchCPU), media.WithAutoBatchThreshold(8))
	tex := newTestTexture(t, rt.GraphicsContext())

	// Two sprites reach the threshold, the third forces a flush first.
	for range 3 {
		rt.Draw(media.NewSprite(tex), media.DefaultRenderStates())
	}
	if len(dev.drawIndexed) != 1 || dev.drawIndexed[0] != 12 {
		t.Fatalf("expected one draw of 12 indices, got %v", dev.drawIndexed)
	}
	rt.Flush()
	if len(dev.drawIndexed) != 2 || dev.drawIndexed[1] != 6 {
		t.Fatalf("expected a second draw of 6 indices, got %v", dev.drawIndexed)
	}
}

func TestClearResetsStatistics(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	rt.Draw(media.NewRectangleShape(media.Vec2f{X: 4, Y: 4}), media.DefaultRenderStates())

	rt.Clear(media.ColorBlack)
	if stats := rt.CurrentDrawStatistics(); stats.DrawCalls != 0 {
		t.Errorf("expected statistics to reset, got %+v", stats)
	}
	if dev.calls["Clear"] != 1 {
		t.Errorf("expected 1 Clear, got %d", dev.calls["Clear"])
	}
}

func TestBuiltinShaderFailureSkipsDraws(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	dev.failProgram = true

	rt.Draw(media.NewRectangleShape(media.Vec2f{X: 4, Y: 4}), media.DefaultRenderStates())
	if len(dev.drawArrays) != 0 {
		t.Errorf("expected the draw to be skipped, got %d", len(dev.drawArrays))
	}
}

func TestViewportOrigin(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	v := rt.DefaultView()
	v.Viewport = media.FloatRect{Size: media.Vec2f{X: 1, Y: 0.5}}
	rt.SetView(v)

	rt.Clear(media.ColorBlack)
	got := dev.viewports[len(dev.viewports)-1]
	if got != [4]int32{0, 300, 800, 300} {
		t.Errorf("expected the top half in GL coordinates, got %v", got)
	}
}

func TestRenderTextureFlipsViewport(t *testing.T) {
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)
	ctx, err := gc.RegisterContext()
	if err != nil {
		t.Fatal(err)
	}
	gc.SetActiveContext(ctx)

	rtex, err := media.NewRenderTexture(gc, 64, 32)
	if err != nil {
		t.Fatalf("NewRenderTexture returned error: %v", err)
	}
	v := rtex.DefaultView()
	v.Viewport = media.FloatRect{Size: media.Vec2f{X: 1, Y: 0.5}}
	rtex.SetView(v)
	rtex.Clear(media.ColorBlack)

	got := dev.viewports[len(dev.viewports)-1]
	if got != [4]int32{0, 0, 64, 16} {
		t.Errorf("expected the top half at row 0, got %v", got)
	}
	if dev.boundFBO == 0 {
		t.Error("expected the render texture framebuffer to be bound")
	}
	if rtex.Texture().Size() != (media.Vec2u{X: 64, Y: 32}) {
		t.Errorf("expected a 64x32 texture, got %v", rtex.Texture().Size())
	}

	rtex.Destroy()
	if dev.calls["DeleteFramebuffer"] != 1 {
		t.Errorf("expected 1 DeleteFramebuffer, got %d", dev.calls["DeleteFramebuffer"])
	}
}

func TestRenderTextureNeedsContext(t *testing.T) {
	gc := media.NewGraphicsContext(newFakeDevice())

	if _, err := media.NewRenderTexture(gc, 8, 8); err == nil {
		t.Fatal("expected an error without an active context")
	}
}

func TestRenderWindowInitializesDeviceOnce(t *testing.T) {
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)
	wc := media.NewWindowContext(newFakePlatform())

	for range 2 {
		rw, err := media.NewRenderWindow(wc, gc)
		if err != nil {
			t.Fatalf("NewRenderWindow returned error: %v", err)
		}
		rw.Clear(media.ColorBlack)
		rw.Display()
	}
	if dev.initCalls != 1 {
		t.Errorf("expected 1 Init, got %d", dev.initCalls)
	}
}

func TestRenderWindowFollowsResize(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	rw, err := media.NewRenderWindow(wc, media.NewGraphicsContext(newFakeDevice()), media.WithSize(320, 240))
	if err != nil {
		t.Fatal(err)
	}
	p.push(media.NativeEvent{Kind: media.NativeResized, WindowID: rw.ID(), Size: media.Vec2u{X: 640, Y: 480}})

	ev, ok := rw.PollEvent()
	if !ok || !media.EventIs[media.EventResized](ev) {
		t.Fatalf("expected a resize, got %#v", ev)
	}
	if size := rw.View().Size; size != (media.Vec2f{X: 640, Y: 480}) {
		t.Errorf("expected the view to follow the window, got %v", size)
	}
}

func TestRenderWindowClose(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	gc := media.NewGraphicsContext(newFakeDevice())
	rw, err := media.NewRenderWindow(wc, gc)
	if err != nil {
		t.Fatal(err)
	}
	ctx := rw.ContextID()

	rw.Close()
	if rw.IsOpen() || !p.windows[0].destroyed {
		t.Error("expected the window to be destroyed")
	}
	// The freed context id is handed out again.
	again, err := gc.RegisterContext()
	if err != nil || again != ctx {
		t.Errorf("expected context %d to be reused, got %d (%v)", ctx, again, err)
	}
}

func TestSwapIntervalKeepsCurrentContext(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	gc := media.NewGraphicsContext(newFakeDevice())
	a, err := media.NewRenderWindow(wc, gc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := media.NewRenderWindow(wc, gc)
	if err != nil {
		t.Fatal(err)
	}
	nativeA, nativeB := p.windows[0], p.windows[1]
	shape := media.NewRectangleShape(media.Vec2f{X: 10, Y: 10})

	a.Draw(shape, media.DefaultRenderStates())
	if p.current != nativeA {
		t.Fatal("expected a's context to be current after drawing")
	}

	b.SetVerticalSyncEnabled(true)
	if nativeB.swapInterval != 1 || nativeB.swapOffContext != 0 {
		t.Errorf("expected interval 1 set on b's context, got %d (%d off context)", nativeB.swapInterval, nativeB.swapOffContext)
	}
	if p.current != nativeA {
		t.Error("expected a's context to stay current after changing b's vsync")
	}

	if _, err := wc.CreateWindow(media.WithVerticalSync(true)); err != nil {
		t.Fatal(err)
	}
	plain := p.windows[2]
	if plain.swapInterval != 1 || plain.swapOffContext != 0 {
		t.Errorf("expected interval 1 set on the new context, got %d (%d off context)", plain.swapInterval, plain.swapOffContext)
	}
	if p.current != nativeA {
		t.Error("expected a's context to stay current after creating a window")
	}

	a.Draw(shape, media.DefaultRenderStates())
	if p.current != nativeA {
		t.Error("expected a to draw with its own context current")
	}
}

func TestDrawIndexedSkipsOutOfRange(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	vs := []media.Vertex{{}, {}, {}}

	rt.DrawIndexedVertices(vs, []uint32{0, 1, 5}, media.Triangles, media.DefaultRenderStates())
	if len(dev.drawIndexed) != 0 {
		t.Fatalf("expected no draw, got %v", dev.drawIndexed)
	}

	rt.DrawIndexedVertices(vs, []uint32{0, 1, 2}, media.Triangles, media.DefaultRenderStates())
	if len(dev.drawIndexed) != 1 || dev.drawIndexed[0] != 3 {
		t.Errorf("expected one draw of 3 indices, got %v", dev.drawIndexed)
	}
}

func TestWindowContextCloseReleasesRenderWindows(t *testing.T) {
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)
	wc := media.NewWindowContext(newFakePlatform())
	rw, err := media.NewRenderWindow(wc, gc)
	if err != nil {
		t.Fatal(err)
	}
	ctx := rw.ContextID()
	rw.Draw(media.NewRectangleShape(media.Vec2f{X: 10, Y: 10}), media.DefaultRenderStates())

	wc.Close()
	if rw.IsOpen() {
		t.Fatal("expected the render window to be closed")
	}
	if n := dev.calls["DeleteVertexArray"]; n != 1 {
		t.Errorf("expected 1 DeleteVertexArray, got %d", n)
	}
	again, err := gc.RegisterContext()
	if err != nil || again != ctx {
		t.Errorf("expected context %d to be released, got %d (%v)", ctx, again, err)
	}
	rw.Close()
}
