package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineTerminal reads lines from a reader and writes plain text to a writer.
type LineTerminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineTerminal creates a terminal over the given streams.
func NewLineTerminal(in io.Reader, out io.Writer) *LineTerminal {
	return &LineTerminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Print writes s as-is.
func (t *LineTerminal) Print(s string) {
	fmt.Fprint(t.out, s)
}

// Println writes s and a newline.
func (t *LineTerminal) Println(s string) {
	fmt.Fprintln(t.out, s)
}

// ReadLine returns the next line. A final line without a newline is still returned.
func (t *LineTerminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the streams belong to the caller.
func (t *LineTerminal) Close() error {
	return nil
}
