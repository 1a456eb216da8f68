// Package ui provides the terminals the game talks through: a plain line
// terminal over stdin/stdout, and a full-screen terminal using tcell.
package ui

// Terminal supplies command lines and receives display text.
type Terminal interface {
	// Print writes text without a trailing newline (used for prompts).
	Print(s string)
	// Println writes text followed by a newline.
	Println(s string)
	// ReadLine blocks for one line of input, without its line ending.
	// It returns io.EOF once no more input will arrive.
	ReadLine() (string, error)
	// Close releases the terminal.
	Close() error
}
