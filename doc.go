/*
Package media provides windows, input events and a cached 2D renderer
built on OpenGL.

# Overview

A WindowContext owns a Platform (backend/glfw or backend/sdl) and every
window created through it. A GraphicsContext owns the Device
(backend/opengl) and hands out context ids to windows and render textures.
Drawables are submitted to a RenderTarget, which caches GL state between
draws and optionally batches compatible draws on the CPU.

# Quick Start

	platform, err := glfw.New()
	if err != nil {
	    return err
	}
	wc := media.NewWindowContext(platform)
	defer wc.Close()
	gc := media.NewGraphicsContext(opengl.New())

	rw, err := media.NewRenderWindow(wc, gc, media.WithTitle("demo"))
	if err != nil {
	    return err
	}
	defer rw.Close()
	defer gc.Close()

	for rw.IsOpen() {
	    rw.PollAndHandleEvents(func(ev media.Event) {
	        if media.EventIs[media.EventClosed](ev) {
	            rw.Close()
	        }
	    })
	    rw.Clear(media.ColorBlack)
	    rw.Draw(shape, media.DefaultRenderStates())
	    rw.Display()
	}

# Events

Native events are translated per window and queued. Key repeats are
dropped unless WithKeyRepeat is set, text input is split into one
EventTextEntered per rune, and joystick axis moves below the configured
threshold are suppressed. Touch fingers map to the lowest free index
below TouchSlots.

# Batching

With AutoBatchCPU, sprites, shapes, text and triangle vertex arrays that
share a texture, shader, blend mode and stencil mode are merged into one
indexed draw. The batch flushes on a state change, when
the vertex threshold is reached, on Flush and on Display.

# Threading

GL calls must happen on the thread that owns the context. Callers lock
the OS thread in init, as doc/gen and example do.
*/
package media
