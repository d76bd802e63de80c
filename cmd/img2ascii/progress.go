package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	progressPrefix = "Converting to ANSI: "
	progressLength = 50
)

// progressBar redraws a single-line bar on w as rows complete.
type progressBar struct {
	w    io.Writer
	last int
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, last: -1}
}

// Update implements img2ascii.ProgressFunc. The bar is only redrawn when
// its filled length or the tenth of a percent changes.
func (p *progressBar) Update(done, total int) {
	if total <= 0 {
		return
	}

	permille := 1000 * done / total
	if permille == p.last {
		return
	}

	p.last = permille

	filled := progressLength * done / total
	bar := strings.Repeat("█", filled) + strings.Repeat("-", progressLength-filled)
	fmt.Fprintf(p.w, "\r%s|%s| %.1f%%", progressPrefix, bar, float64(permille)/10)

	if done == total {
		fmt.Fprintln(p.w)
	}
}
