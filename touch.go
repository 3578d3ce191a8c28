package media

// TouchSlots is the number of fingers tracked at once.
const TouchSlots = 32

// TouchInfo is a tracked finger.
type TouchInfo struct {
	Index    int
	Position Vec2i
	WindowID uint32
}

// touchPool maps native finger ids to the lowest free touch index.
type touchPool struct {
	used    [TouchSlots]bool
	fingers map[int64]TouchInfo
}

func newTouchPool() *touchPool {
	return &touchPool{fingers: make(map[int64]TouchInfo)}
}

// begin claims an index for finger. It fails when the pool is full.
// A finger that is already down keeps its index.
func (p *touchPool) begin(finger int64, pos Vec2i, window uint32) (TouchInfo, bool) {
	if info, ok := p.fingers[finger]; ok {
		return info, true
	}
	for i, used := range p.used {
		if used {
			continue
		}
		p.used[i] = true
		info := TouchInfo{Index: i, Position: pos, WindowID: window}
		p.fingers[finger] = info
		return info, true
	}
	return TouchInfo{}, false
}

// move updates the position of a tracked finger.
func (p *touchPool) move(finger int64, pos Vec2i) (TouchInfo, bool) {
	info, ok := p.fingers[finger]
	if !ok {
		return TouchInfo{}, false
	}
	info.Position = pos
	p.fingers[finger] = info
	return info, true
}

// end releases the index of finger.
func (p *touchPool) end(finger int64) (TouchInfo, bool) {
	info, ok := p.fingers[finger]
	if !ok {
		return TouchInfo{}, false
	}
	p.used[info.Index] = false
	delete(p.fingers, finger)
	return info, true
}

// releaseWindow drops every finger that began on window.
func (p *touchPool) releaseWindow(window uint32) {
	for finger, info := range p.fingers {
		if info.WindowID == window {
			p.used[info.Index] = false
			delete(p.fingers, finger)
		}
	}
}

func (p *touchPool) active() int {
	return len(p.fingers)
}
