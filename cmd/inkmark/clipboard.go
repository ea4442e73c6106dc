package main

// memClipboard is a process-local clipboard. Terminal OSC 52 support varies
// too much across emulators to rely on, so copy/cut/paste round-trip within
// the editor session.
type memClipboard struct {
	text string
}

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func (c *memClipboard) ReadText() (string, error) {
	return c.text, nil
}
