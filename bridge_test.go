package xyoga

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock/adapter/frozen"
)

// stubHost records every callback and returns a fixed status.
type stubHost struct {
	mu       sync.Mutex
	status   int
	size     Size
	logs     []stubLog
	measured []Constraints
	nodes    []NodeRef
}

type stubLog struct {
	Config  ConfigRef
	Node    NodeRef
	Level   LogLevel
	Message string
}

func (h *stubHost) OnLayoutLog(config ConfigRef, node NodeRef, level LogLevel, message string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs = append(h.logs, stubLog{Config: config, Node: node, Level: level, Message: message})
	return h.status
}

func (h *stubHost) MeasureContent(node NodeRef, c Constraints) Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nodes = append(h.nodes, node)
	h.measured = append(h.measured, c)
	return h.size
}

func newTestBridge(t *testing.T, h Host) *Bridge {
	t.Helper()
	b, err := NewBuilder().WithHost(h).Build()
	if err != nil {
		t.Fatalf("build bridge: %v", err)
	}
	return b
}

func TestLogf_FormatsAndForwards(t *testing.T) {
	t.Parallel()

	host := &stubHost{status: 7}
	b := newTestBridge(t, host)
	cfg, node := NewConfigRef(), NewNodeRef()

	got := b.Logf(cfg, node, LogLevelWarn, "width=%d height=%d", 100, 200)
	if got != 7 {
		t.Fatalf("status mismatch: got %d want 7", got)
	}
	if len(host.logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(host.logs))
	}
	l := host.logs[0]
	if l.Message != "width=100 height=200" {
		t.Fatalf("message mismatch: %q", l.Message)
	}
	if l.Config != cfg || l.Node != node {
		t.Fatalf("handles changed: got (%v, %v) want (%v, %v)", l.Config, l.Node, cfg, node)
	}
	if l.Level != LogLevelWarn {
		t.Fatalf("level mismatch: %v", l.Level)
	}
}

func TestLogf_ForwardsEveryLevelAndStatus(t *testing.T) {
	t.Parallel()

	for _, lvl := range []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug, LogLevelVerbose, LogLevelFatal} {
		host := &stubHost{status: -int(lvl) - 1}
		b := newTestBridge(t, host)
		if got := b.Logf(0, 0, lvl, "x"); got != -int(lvl)-1 {
			t.Fatalf("%s: status %d", lvl, got)
		}
		if host.logs[0].Level != lvl {
			t.Fatalf("%s: level forwarded as %s", lvl, host.logs[0].Level)
		}
	}
}

func TestLogf_NilHandlesPassThrough(t *testing.T) {
	t.Parallel()

	host := &stubHost{}
	b := newTestBridge(t, host)
	b.Logf(0, 0, LogLevelError, "no node")
	if host.logs[0].Config != 0 || host.logs[0].Node != 0 {
		t.Fatalf("nil handles changed: %+v", host.logs[0])
	}
}

func TestLogf_TruncatesAtLimit(t *testing.T) {
	t.Parallel()

	host := &stubHost{}
	b := newTestBridge(t, host)

	long := strings.Repeat("a", 2000)
	b.Logf(1, 1, LogLevelInfo, "%s", long)

	msg := host.logs[0].Message
	if len(msg) != MessageBufferSize-1 {
		t.Fatalf("length mismatch: got %d want %d", len(msg), MessageBufferSize-1)
	}
	if msg != long[:MessageBufferSize-1] {
		t.Fatal("truncated message is not a prefix of the rendered output")
	}
}

func TestLogf_ExactBoundary(t *testing.T) {
	t.Parallel()

	host := &stubHost{}
	b := newTestBridge(t, host)

	fits := strings.Repeat("b", MessageBufferSize-1)
	b.Logf(0, 0, LogLevelInfo, "%s", fits)
	if host.logs[0].Message != fits {
		t.Fatalf("1023-byte message altered: len %d", len(host.logs[0].Message))
	}

	over := strings.Repeat("c", MessageBufferSize)
	b.Logf(0, 0, LogLevelInfo, "%s", over)
	if got := len(host.logs[1].Message); got != MessageBufferSize-1 {
		t.Fatalf("1024-byte message not cut: len %d", got)
	}
}

func TestLog_BoundsPreRenderedMessage(t *testing.T) {
	t.Parallel()

	host := &stubHost{status: 3}
	b, err := NewBuilder().WithHost(host).WithMessageLimit(8).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := b.Log(2, 3, LogLevelDebug, "0123456789"); got != 3 {
		t.Fatalf("status mismatch: %d", got)
	}
	if host.logs[0].Message != "0123456" {
		t.Fatalf("message mismatch: %q", host.logs[0].Message)
	}
}

func TestMeasure_ForwardsConstraints(t *testing.T) {
	t.Parallel()

	host := &stubHost{size: Size{Width: 42, Height: 13}}
	b := newTestBridge(t, host)
	node := NewNodeRef()

	got := b.Measure(node, 100, MeasureModeAtMost, 50, MeasureModeExactly)
	if got != (Size{Width: 42, Height: 13}) {
		t.Fatalf("size mismatch: %+v", got)
	}
	want := Constraints{Width: 100, WidthMode: MeasureModeAtMost, Height: 50, HeightMode: MeasureModeExactly}
	if host.measured[0] != want {
		t.Fatalf("constraints mismatch: got %v want %v", host.measured[0], want)
	}
	if host.nodes[0] != node {
		t.Fatalf("node mismatch: %v", host.nodes[0])
	}
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().Build(); err != ErrNoHost {
		t.Fatalf("expected ErrNoHost, got %v", err)
	}
	if _, err := NewBuilder().WithHost(&stubHost{}).WithMessageLimit(1).Build(); err != ErrMessageLimit {
		t.Fatalf("expected ErrMessageLimit, got %v", err)
	}
	if _, err := NewBuilder().WithHost(&stubHost{}).WithMessageLimit(-5).Build(); err != ErrMessageLimit {
		t.Fatalf("expected ErrMessageLimit for negative limit, got %v", err)
	}
}

func TestBuilder_ZeroLimitSelectsDefault(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder().WithHost(&stubHost{}).WithMessageLimit(0).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.MessageLimit() != MessageBufferSize {
		t.Fatalf("limit %d want %d", b.MessageLimit(), MessageBufferSize)
	}
}

func TestObserver_SeesRecordWithStatus(t *testing.T) {
	t.Parallel()

	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var got []Record
	obs := ObserverFunc(func(r Record) { got = append(got, r) })

	host := &stubHost{status: 1}
	b, err := NewBuilder().
		WithHost(host).
		WithMessageLimit(6).
		WithClock(frozen.New(ft)).
		AddObserver(obs).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b.Logf(5, 6, LogLevelError, "overflow %d", 12345)

	if len(got) != 1 {
		t.Fatalf("expected 1 observer record, got %d", len(got))
	}
	r := got[0]
	if !r.At.Equal(ft) {
		t.Fatalf("timestamp mismatch: got %s want %s", r.At, ft)
	}
	if r.Message != "overf" || !r.Truncated || r.Status != 1 {
		t.Fatalf("record mismatch: %+v", r)
	}
	if r.Config != 5 || r.Node != 6 || r.Level != LogLevelError {
		t.Fatalf("record handles mismatch: %+v", r)
	}
}

func TestWithMinLevel_PushedToHost(t *testing.T) {
	t.Parallel()

	sink := &stubSink{}
	reg := NewRegistry(sink)
	b, err := NewBuilder().WithHost(reg).WithMinLevel(LogLevelWarn).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b.Logf(1, 1, LogLevelDebug, "dropped")
	b.Logf(1, 1, LogLevelError, "kept")

	recs := sink.records()
	if len(recs) != 1 || recs[0].Message != "kept" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestConcurrentLogf(t *testing.T) {
	t.Parallel()

	host := &stubHost{}
	b := newTestBridge(t, host)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Logf(ConfigRef(i), NodeRef(j), LogLevelInfo, "g=%d j=%d", i, j)
			}
		}(i)
	}
	wg.Wait()

	host.mu.Lock()
	defer host.mu.Unlock()
	if len(host.logs) != 1600 {
		t.Fatalf("expected 1600 logs, got %d", len(host.logs))
	}
	for _, l := range host.logs {
		want := "g=" + strconv.Itoa(int(l.Config)) + " j=" + strconv.Itoa(int(l.Node))
		if l.Message != want {
			t.Fatalf("message crossed goroutines: got %q want %q", l.Message, want)
		}
	}
}
