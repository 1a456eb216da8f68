package ui

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// ScreenTerminal is a full-screen Terminal: a scrolling transcript with an
// editable input line at the bottom.
type ScreenTerminal struct {
	screen tcell.Screen
	text   transcript
	style  tcell.Style
	input  tcell.Style
}

// NewScreenTerminal takes over the terminal. Call Close to restore it.
func NewScreenTerminal() (*ScreenTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newScreenTerminal(s)
}

// newScreenTerminal initializes s and wraps it.
func newScreenTerminal(s tcell.Screen) (*ScreenTerminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	return &ScreenTerminal{
		screen: s,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		input:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}, nil
}

// Print appends text to the transcript.
func (t *ScreenTerminal) Print(s string) {
	t.text.write(s)
}

// Println appends text and a newline to the transcript.
func (t *ScreenTerminal) Println(s string) {
	t.text.write(s + "\n")
}

// ReadLine draws the transcript and edits input until Enter.
// Escape, Ctrl-C and Ctrl-D end input with io.EOF.
func (t *ScreenTerminal) ReadLine() (string, error) {
	for {
		t.render()

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventKey:
			line, submitted, eof := t.text.apply(translateKey(ev))
			if eof {
				return "", io.EOF
			}
			if submitted {
				return line, nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *ScreenTerminal) Close() error {
	t.screen.Fini()
	return nil
}

// render draws the visible transcript rows, highlighting typed input.
func (t *ScreenTerminal) render() {
	width, height := t.screen.Size()
	t.screen.Clear()

	rows := t.text.visible(width, height)
	for y, row := range rows {
		for x, r := range []rune(row) {
			t.screen.SetContent(x, y, r, nil, t.style)
		}
	}

	// Restyle the typed input on the last row.
	if n := len(rows); n > 0 {
		last := []rune(rows[n-1])
		typed := len(t.text.input)
		if typed > len(last) {
			typed = len(last)
		}
		for x := len(last) - typed; x < len(last); x++ {
			t.screen.SetContent(x, n-1, last[x], nil, t.input)
		}
	}

	t.screen.Show()
}

// translateKey maps a tcell key event onto the line editor's key kinds.
func translateKey(ev *tcell.EventKey) keyInput {
	switch ev.Key() {
	case tcell.KeyEnter:
		return keyInput{kind: keyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyInput{kind: keyBackspace}
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
		return keyInput{kind: keyCancel}
	case tcell.KeyRune:
		return keyInput{kind: keyChar, r: ev.Rune()}
	default:
		return keyInput{kind: keyIgnore}
	}
}
