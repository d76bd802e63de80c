// Package prompt asks for conversion inputs on an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii"
)

const (
	pathMessage   = "Enter the path to the image: "
	widthMessage  = "Enter the art width in characters (100 - 500 recommended): "
	heightMessage = "Enter the art height in characters (0 to fit automatically): "
	modeMessage   = img2ascii.ModesMessage + "\nSelect a mode: "
)

// Separator is printed between prompt groups and before diagnostics.
var Separator = strings.Repeat("-", 100)

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the answer without its line ending.
// A final line without a newline is accepted; io.EOF is returned only when
// nothing was read.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Path asks for the image path. One pair of surrounding double quotes, as
// added by "copy as path" in some file managers, is removed.
func (p *Prompter) Path() (string, error) {
	fmt.Fprintln(p.out, Separator)

	path, err := p.ask(pathMessage)
	if err != nil {
		return "", fmt.Errorf("reading path: %w", err)
	}
	path = strings.TrimSpace(path)
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		path = path[1 : len(path)-1]
	}
	return path, nil
}

// Size asks for the art width and then its height. A height of 0 asks for
// auto-fit. Unparseable or out-of-range answers return an error of kind
// img2ascii.KindInvalidNumericInput.
func (p *Prompter) Size() (width, height int, err error) {
	fmt.Fprintln(p.out, Separator)

	width, err = p.askInt(widthMessage, 1)
	if err != nil {
		return 0, 0, err
	}
	height, err = p.askInt(heightMessage, 0)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func (p *Prompter) askInt(question string, minimum int) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, &img2ascii.Error{Kind: img2ascii.KindInvalidNumericInput, Err: err}
	}
	return ParseDimension(answer, minimum)
}

// Mode prints the mode menu and reads the selector.
func (p *Prompter) Mode() (img2ascii.Mode, error) {
	fmt.Fprintln(p.out, Separator)

	answer, err := p.ask(modeMessage)
	if err != nil {
		return 0, &img2ascii.Error{Kind: img2ascii.KindInvalidMode, Err: err}
	}
	return img2ascii.ParseMode(answer)
}

// ParseDimension parses a width or height answer that must be an integer
// no smaller than minimum.
func ParseDimension(s string, minimum int) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &img2ascii.Error{Kind: img2ascii.KindInvalidNumericInput, Input: s, Err: err}
	}
	if n < minimum {
		return 0, &img2ascii.Error{
			Kind:  img2ascii.KindInvalidNumericInput,
			Input: s,
			Err:   fmt.Errorf("must be at least %d", minimum),
		}
	}
	return n, nil
}
