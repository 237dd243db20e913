// Package cellmeasure sizes text leaves in terminal cells. Wide and
// fullwidth East Asian runes take two cells, combining marks none.
package cellmeasure

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/trickstertwo/xyoga"
)

// RuneCells returns the display width of r in terminal cells.
func RuneCells(r rune) int {
	switch {
	case r == '\t':
		return 1
	case r < 0x20 || r == 0x7f:
		return 0
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringCells returns the display width of s in cells.
func StringCells(s string) int {
	n := 0
	for _, r := range s {
		n += RuneCells(r)
	}
	return n
}

// Rows wraps text into rows of at most cols cells, breaking at rune
// boundaries. Hard line breaks are kept; tabs become a single space. A rune
// wider than cols is replaced by '?'. cols <= 0 disables wrapping.
func Rows(text string, cols int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return []string{""}
	}

	rows := make([]string, 0, 4)
	var row strings.Builder
	col := 0

	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		if r == '\t' {
			r = ' '
		}

		w := RuneCells(r)
		if cols > 0 && w > cols {
			r, w = '?', 1
		}
		if cols > 0 && col+w > cols && col > 0 {
			flush()
		}

		row.WriteRune(r)
		col += w
	}
	flush()

	return rows
}

// Measure returns the cell size of text under c: width is the widest row,
// height the number of rows.
func Measure(text string, c xyoga.Constraints) xyoga.Size {
	cols := 0
	if c.WidthMode != xyoga.MeasureModeUndefined && c.Width >= 1 {
		cols = int(c.Width)
	}

	rows := Rows(text, cols)
	widest := 0
	for _, r := range rows {
		if n := StringCells(r); n > widest {
			widest = n
		}
	}

	return xyoga.Size{
		Width:  xyoga.Fit(float32(widest), c.Width, c.WidthMode),
		Height: xyoga.Fit(float32(len(rows)), c.Height, c.HeightMode),
	}
}

// Func binds text to a measure callback for Registry.SetMeasureFunc.
func Func(text string) xyoga.MeasureFunc {
	return func(_ xyoga.NodeRef, c xyoga.Constraints) xyoga.Size {
		return Measure(text, c)
	}
}
