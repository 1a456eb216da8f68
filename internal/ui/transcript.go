package ui

import "strings"

// maxScrollback caps how many finished lines the screen terminal keeps.
const maxScrollback = 500

// keyKind classifies a key press for line editing.
type keyKind int

const (
	keyIgnore keyKind = iota
	keyChar
	keyEnter
	keyBackspace
	keyCancel
)

// keyInput is a terminal-independent key press.
type keyInput struct {
	kind keyKind
	r    rune
}

// transcript is the text model behind ScreenTerminal: finished lines, the
// unterminated text of the current line (usually a prompt), and the input
// being typed after it.
type transcript struct {
	lines   []string
	pending string
	input   []rune
}

// write appends text, splitting on newlines.
func (t *transcript) write(s string) {
	parts := strings.Split(t.pending+s, "\n")
	for _, line := range parts[:len(parts)-1] {
		t.lines = append(t.lines, line)
	}
	t.pending = parts[len(parts)-1]

	if over := len(t.lines) - maxScrollback; over > 0 {
		t.lines = append([]string(nil), t.lines[over:]...)
	}
}

// apply edits the input line. It reports a submitted line, or eof when the
// player cancels.
func (t *transcript) apply(k keyInput) (line string, submitted, eof bool) {
	switch k.kind {
	case keyChar:
		t.input = append(t.input, k.r)
	case keyBackspace:
		if n := len(t.input); n > 0 {
			t.input = t.input[:n-1]
		}
	case keyEnter:
		line = string(t.input)
		t.input = t.input[:0]
		t.write(line + "\n")
		return line, true, false
	case keyCancel:
		return "", false, true
	}
	return "", false, false
}

// current returns the line being edited, including its prompt.
func (t *transcript) current() string {
	return t.pending + string(t.input)
}

// visible returns the rows to draw on a width x height screen, oldest first.
// Long lines are wrapped; the line being edited is always the last row.
func (t *transcript) visible(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	rows := wrap(t.current(), width)
	for i := len(t.lines) - 1; i >= 0 && len(rows) < height; i-- {
		rows = append(wrap(t.lines[i], width), rows...)
	}
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	return rows
}

// wrap splits s into chunks of at most width runes. An empty s yields one empty row.
func wrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var rows []string
	for len(runes) > width {
		rows = append(rows, string(runes[:width]))
		runes = runes[width:]
	}
	return append(rows, string(runes))
}
