package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap

	// ReadOnly disables all mutating input.
	ReadOnly bool

	// Highlighter decorates visible lines; nil renders plain text.
	Highlighter Highlighter

	// Clipboard backs copy/cut/paste; nil disables them.
	Clipboard Clipboard

	// OnChange is invoked after every effective content mutation. Cursor and
	// selection movement does not fire it.
	OnChange func(ChangeEvent)
}

func (c Config) keyMap() KeyMap {
	if c.KeyMap != nil {
		return *c.KeyMap
	}
	return DefaultKeyMap()
}
