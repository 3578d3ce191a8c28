package media

import "sync"

// ClipboardProvider abstracts system clipboard access. Every Platform
// implements it.
//
// For GLFW:
//
//	func (p *Platform) GetText() string {
//	    return glfw.GetClipboardString()
//	}
//
//	func (p *Platform) SetText(text string) {
//	    glfw.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// MemoryClipboard is a process local clipboard, for headless platforms and
// tests. The zero value is empty and ready to use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

// ClipboardText retrieves text from the platform clipboard.
// Returns empty string if the platform has no clipboard.
func (wc *WindowContext) ClipboardText() string {
	if wc.clipboard != nil {
		return wc.clipboard.GetText()
	}
	return ""
}

// SetClipboardText copies text to the platform clipboard.
// Does nothing if the platform has no clipboard.
func (wc *WindowContext) SetClipboardText(text string) {
	if wc.clipboard != nil {
		wc.clipboard.SetText(text)
	}
}

// SetClipboardProvider replaces the clipboard the context uses, for
// example with a MemoryClipboard in tests. nil restores the platform's.
func (wc *WindowContext) SetClipboardProvider(cp ClipboardProvider) {
	if cp == nil {
		cp = wc.platform
	}
	wc.clipboard = cp
}
