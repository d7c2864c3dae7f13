// Package pager renders display lines in fixed-size pages navigable by
// single keystrokes.
package pager

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultPageSize is the number of lines shown per page.
const DefaultPageSize = 20

// ErrNoLines means the pager was given nothing to display.
var ErrNoLines = errors.New("no lines to display")

const separator = "----------------------------------"

// ansiClear clears the screen and homes the cursor. Writing the escape
// sequence keeps the pager testable against any io.Writer, unlike
// shelling out to clear/cls.
const ansiClear = "\033[H\033[2J"

// KeyReader yields one keystroke per call. The production implementation
// reads stdin in raw mode; tests supply a scripted sequence.
type KeyReader interface {
	ReadKey() (byte, error)
}

// Pager is a blocking, keystroke-driven loop over a fixed set of lines.
type Pager struct {
	out      io.Writer
	keys     KeyReader
	pageSize int
}

// New creates a Pager writing to out and reading keys from keys.
// A pageSize below 1 falls back to DefaultPageSize.
func New(out io.Writer, keys KeyReader, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pager{out: out, keys: keys, pageSize: pageSize}
}

// Run pages through lines until the user quits. The title names the
// active filter in each page header. When everything fits on a single
// page the loop renders once and returns without waiting for a key.
// 'n' and 'p' at a boundary re-render the current page unchanged.
func (p *Pager) Run(lines []string, title string) error {
	total := len(lines)
	if total == 0 {
		return ErrNoLines
	}

	totalPages := (total + p.pageSize - 1) / p.pageSize
	currentPage := 1

	for {
		p.render(lines, title, currentPage, totalPages)

		if totalPages == 1 {
			fmt.Fprintln(p.out, "Only one page. Exiting...")
			return nil
		}

		switch {
		case currentPage == 1:
			fmt.Fprintln(p.out, "Enter 'n' for next page or 'q' to quit.")
		case currentPage == totalPages:
			fmt.Fprintln(p.out, "Enter 'p' for previous page or 'q' to quit.")
		default:
			fmt.Fprintln(p.out, "Enter 'n' for next, 'p' for previous, or 'q' to quit.")
		}

		key, err := p.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}

		switch strings.ToLower(string(key)) {
		case "q":
			fmt.Fprintln(p.out, "Exiting...")
			return nil
		case "n":
			if currentPage < totalPages {
				currentPage++
			}
		case "p":
			if currentPage > 1 {
				currentPage--
			}
		}
	}
}

func (p *Pager) render(lines []string, title string, currentPage, totalPages int) {
	total := len(lines)
	start := (currentPage - 1) * p.pageSize
	end := start + p.pageSize
	if end > total {
		end = total
	}

	fmt.Fprint(p.out, ansiClear)
	fmt.Fprintf(p.out, "\nPage %d of %d: %s Activities\n", currentPage, totalPages, title)
	fmt.Fprintln(p.out, separator)

	for _, line := range lines[start:end] {
		fmt.Fprintln(p.out, line)
	}

	fmt.Fprintf(p.out, "\nShowing items %d-%d of %d\n", start+1, end, total)
	fmt.Fprintln(p.out, separator)
}
