package textmeasure

import (
	"reflect"
	"sync"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/trickstertwo/xyoga"
)

var (
	adv = float32(basicfont.Face7x13.Advance)
	lh  = float32(basicfont.Face7x13.Height)
)

func undefined() xyoga.Constraints { return xyoga.Constraints{} }

func atMost(w float32) xyoga.Constraints {
	return xyoga.Constraints{Width: w, WidthMode: xyoga.MeasureModeAtMost}
}

func TestMeasure_SingleLineUndefined(t *testing.T) {
	t.Parallel()
	m := New(nil)
	got := m.Measure("hello world", undefined())
	want := xyoga.Size{Width: 11 * adv, Height: lh}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestMeasure_WrapsUnderAtMost(t *testing.T) {
	t.Parallel()
	m := New(nil)
	got := m.Measure("hello world", atMost(6*adv))
	want := xyoga.Size{Width: 5 * adv, Height: 2 * lh}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestMeasure_ExactlyForcesBothAxes(t *testing.T) {
	t.Parallel()
	m := New(nil)
	c := xyoga.Constraints{
		Width: 100, WidthMode: xyoga.MeasureModeExactly,
		Height: 5, HeightMode: xyoga.MeasureModeExactly,
	}
	if got := m.Measure("hi", c); got != (xyoga.Size{Width: 100, Height: 5}) {
		t.Fatalf("got %+v", got)
	}
}

func TestMeasure_HeightCappedByAtMost(t *testing.T) {
	t.Parallel()
	m := New(nil)
	c := atMost(6 * adv)
	c.Height, c.HeightMode = lh, xyoga.MeasureModeAtMost
	if got := m.Measure("hello world", c); got.Height != lh {
		t.Fatalf("height %v want %v", got.Height, lh)
	}
}

func TestLines_WrapModes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mode WrapMode
		text string
		max  float32
		want []string
	}{
		{"word-char splits long word", WrapWordChar, "abcdefghij", 5 * adv, []string{"abcde", "fghij"}},
		{"word-char joins tail", WrapWordChar, "abcdefg hi", 5 * adv, []string{"abcde", "fg hi"}},
		{"word overflows", WrapWord, "abcdefghij x", 5 * adv, []string{"abcdefghij", "x"}},
		{"none", WrapNone, "a b c d", adv, []string{"a b c d"}},
		{"hard breaks", WrapWordChar, "a\n\nb", 0, []string{"a", "", "b"}},
		{"crlf", WrapWordChar, "a\r\nb", 0, []string{"a", "b"}},
		{"greedy", WrapWordChar, "aa bb cc dd", 5 * adv, []string{"aa bb", "cc dd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(nil, WithWrapMode(tt.mode))
			if got := m.Lines(tt.text, tt.max); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestWithLineHeight(t *testing.T) {
	t.Parallel()
	m := New(nil, WithLineHeight(20))
	if got := m.Measure("a\nb", undefined()); got.Height != 40 {
		t.Fatalf("height %v want 40", got.Height)
	}
	if m.LineHeight() != 20 {
		t.Fatalf("line height %v", m.LineHeight())
	}
}

func TestFunc_ThroughBridge(t *testing.T) {
	t.Parallel()
	m := New(nil)
	reg := xyoga.NewRegistry(nil)
	node := xyoga.NewNodeRef()
	reg.SetMeasureFunc(node, m.Func("hi"))

	b, err := xyoga.NewBuilder().WithHost(reg).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := b.Measure(node, 100, xyoga.MeasureModeAtMost, 0, xyoga.MeasureModeUndefined)
	if got != (xyoga.Size{Width: 2 * adv, Height: lh}) {
		t.Fatalf("got %+v", got)
	}
}

func TestMeasure_Concurrent(t *testing.T) {
	t.Parallel()
	m := New(nil)
	want := m.Measure("the quick brown fox", atMost(8*adv))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := m.Measure("the quick brown fox", atMost(8*adv)); got != want {
					t.Errorf("got %+v want %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
