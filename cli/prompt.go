package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// Prompter asks for one line of sensitive input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Clipboard receives the recovered secret.
type Clipboard interface {
	WriteAll(text string) error
}

// NewPrompter reads without echo when in is a terminal and line by line
// otherwise. Labels are written to out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &terminalPrompter{fd: int(f.Fd()), out: out}
	}

	return &linePrompter{reader: bufio.NewReader(in), out: out}
}

type terminalPrompter struct {
	fd  int
	out io.Writer
}

func (p *terminalPrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}

	return string(line), nil
}

type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *linePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	return clipboard.WriteAll(text)
}
