// Package format implements the Markdown toolbar transformations.
//
// Apply is a pure function over an immutable (text, selection) snapshot: it
// inserts Markdown syntax around the selection and returns the new text
// together with the new selection. Offsets are 0-based rune offsets.
package format
