// Package editor provides a Bubble Tea Markdown editor component backed by
// the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, Markdown syntax highlighting, and the toolbar
// formatting bridge between the buffer's (row, col) coordinates and the
// format package's flat rune offsets.
package editor
