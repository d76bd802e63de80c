// Command img2ascii converts an image into ASCII or colorized ANSI art,
// saves it next to the working directory and shows it in the terminal.
//
// # Usage
//
//	img2ascii [flags]
//
// Any of --path, --width and --mode that is not given is asked for
// interactively. Passing --width without --height fits the height to the
// image automatically; omitting --width asks for both dimensions.
//
// # Modes
//
//	1  classic: dense glyphs for dark pixels, for light backgrounds
//	2  inverted: dense glyphs for light pixels, for dark backgrounds
//	3  colorized: glyphs drawn in each pixel's color, saved as PNG
//
// Text art is written to <stem>_ascii.txt and colorized art to
// <stem>_ansi.png. On invalid input the command prints a diagnostic and
// exits with status 1 without writing any file.
package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		in:         stdin,
		out:        stdout,
		errOut:     stderr,
		isTerminal: func() bool { return isTerminal(stdout) },
		view:       runViewer,
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		a.reportError(err)

		return exitFailure
	}

	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
