// Package textmeasure sizes text leaves for the layout engine using a
// golang.org/x/image font face.
package textmeasure

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/trickstertwo/xyoga"
)

// WrapMode selects how a paragraph is broken when it exceeds the offered width.
type WrapMode uint8

const (
	// WrapWordChar breaks at spaces and splits words that are wider than a line.
	WrapWordChar WrapMode = iota
	// WrapWord breaks at spaces only; long words overflow.
	WrapWord
	// WrapNone keeps each paragraph on one line.
	WrapNone
)

func (m WrapMode) String() string {
	switch m {
	case WrapWordChar:
		return "word-char"
	case WrapWord:
		return "word"
	case WrapNone:
		return "none"
	}
	return "unknown"
}

// Measurer measures text with a single face. Faces are not safe for
// concurrent use, so calls are serialized.
type Measurer struct {
	mu         sync.Mutex
	face       font.Face
	mode       WrapMode
	lineHeight fixed.Int26_6
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithWrapMode sets the wrapping strategy. Default WrapWordChar.
func WithWrapMode(mode WrapMode) Option {
	return func(m *Measurer) { m.mode = mode }
}

// WithLineHeight overrides the face's line height, in pixels.
func WithLineHeight(px float32) Option {
	return func(m *Measurer) {
		if px > 0 {
			m.lineHeight = toFixed(px)
		}
	}
}

// New returns a Measurer over face. A nil face means basicfont.Face7x13.
func New(face font.Face, opts ...Option) *Measurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := &Measurer{face: face, lineHeight: face.Metrics().Height}
	for _, o := range opts {
		o(m)
	}
	return m
}

// LineHeight returns the height of one line in pixels.
func (m *Measurer) LineHeight() float32 { return fromFixed(m.lineHeight) }

// Advance returns the horizontal advance of s in pixels.
func (m *Measurer) Advance(s string) float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fromFixed(font.MeasureString(m.face, s))
}

// Lines breaks text into lines no wider than maxWidth pixels. Hard line
// breaks are kept. maxWidth <= 0 disables wrapping.
func (m *Measurer) Lines(text string, maxWidth float32) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines, _ := m.layout(text, toFixed(maxWidth))
	return lines
}

// Measure returns the size of text under c. The wrapped extent is fitted to
// each axis: Exactly forces the offered size, AtMost caps it.
func (m *Measurer) Measure(text string, c xyoga.Constraints) xyoga.Size {
	var maxWidth fixed.Int26_6
	if c.WidthMode != xyoga.MeasureModeUndefined && c.Width > 0 && !math.IsInf(float64(c.Width), 1) {
		maxWidth = toFixed(c.Width)
	}

	m.mu.Lock()
	lines, widest := m.layout(text, maxWidth)
	m.mu.Unlock()

	w := fromFixed(widest)
	h := float32(len(lines)) * fromFixed(m.lineHeight)
	return xyoga.Size{
		Width:  xyoga.Fit(w, c.Width, c.WidthMode),
		Height: xyoga.Fit(h, c.Height, c.HeightMode),
	}
}

// Func binds text to a measure callback for Registry.SetMeasureFunc.
func (m *Measurer) Func(text string) xyoga.MeasureFunc {
	return func(_ xyoga.NodeRef, c xyoga.Constraints) xyoga.Size {
		return m.Measure(text, c)
	}
}

// layout must be called with mu held.
func (m *Measurer) layout(text string, maxWidth fixed.Int26_6) ([]string, fixed.Int26_6) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	paragraphs := strings.Split(text, "\n")

	lines := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		if maxWidth <= 0 || m.mode == WrapNone {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, m.wrapParagraph(para, maxWidth)...)
	}

	var widest fixed.Int26_6
	for _, l := range lines {
		if adv := font.MeasureString(m.face, l); adv > widest {
			widest = adv
		}
	}
	return lines, widest
}

func (m *Measurer) wrapParagraph(para string, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	space := font.MeasureString(m.face, " ")

	var (
		lines []string
		line  strings.Builder
		width fixed.Int26_6
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		width = 0
	}

	for _, word := range words {
		adv := font.MeasureString(m.face, word)
		if line.Len() > 0 {
			if width+space+adv <= maxWidth {
				line.WriteByte(' ')
				line.WriteString(word)
				width += space + adv
				continue
			}
			flush()
		}
		if adv > maxWidth && m.mode == WrapWordChar {
			pieces := m.splitWord(word, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			word = pieces[len(pieces)-1]
			adv = font.MeasureString(m.face, word)
		}
		line.WriteString(word)
		width = adv
	}
	flush()
	return lines
}

// splitWord cuts word at rune boundaries into pieces no wider than maxWidth.
// A single rune wider than maxWidth still gets its own piece.
func (m *Measurer) splitWord(word string, maxWidth fixed.Int26_6) []string {
	var (
		pieces []string
		start  int
		width  fixed.Int26_6
	)
	for i, r := range word {
		adv, ok := m.face.GlyphAdvance(r)
		if !ok {
			adv = 0
		}
		if width+adv > maxWidth && i > start {
			pieces = append(pieces, word[start:i])
			start, width = i, 0
		}
		width += adv
	}
	return append(pieces, word[start:])
}

func toFixed(px float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(px) * 64))
}

func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }
