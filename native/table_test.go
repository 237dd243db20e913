package native

import (
	"testing"

	"github.com/trickstertwo/xyoga"
)

type logCall struct {
	config xyoga.ConfigRef
	node   xyoga.NodeRef
	level  xyoga.LogLevel
	msg    string
}

func newTestBridge(t *testing.T, reg xyoga.Host) *xyoga.Bridge {
	t.Helper()
	b, err := xyoga.NewBuilder().WithHost(reg).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return b
}

func TestTable_BindIsStable(t *testing.T) {
	t.Parallel()
	tb := newTable()

	c1 := tb.bindConfig(0x1000)
	if c1.IsNil() || tb.bindConfig(0x1000) != c1 {
		t.Fatalf("config binding unstable: %v", c1)
	}
	if tb.bindConfig(0) != 0 || tb.bindNode(0) != 0 {
		t.Fatal("nil pointers must stay nil handles")
	}

	n1, n2 := tb.bindNode(0x2000), tb.bindNode(0x3000)
	if n1 == n2 || tb.node(0x2000) != n1 {
		t.Fatalf("node binding mismatch: %v %v", n1, n2)
	}

	if tb.releaseNode(0x2000) != n1 || tb.node(0x2000) != 0 {
		t.Fatal("release did not forget node")
	}
	if tb.releaseConfig(0x1000) != c1 || tb.config(0x1000) != 0 {
		t.Fatal("release did not forget config")
	}
}

func TestDispatchLog_ForwardsHandlesAndStatus(t *testing.T) {
	t.Parallel()
	tb := newTable()
	cfg := tb.bindConfig(0xa0)
	node := tb.bindNode(0xb0)

	var got []logCall
	reg := xyoga.NewRegistry(nil)
	reg.SetLogger(cfg, func(c xyoga.ConfigRef, n xyoga.NodeRef, l xyoga.LogLevel, m string) int {
		got = append(got, logCall{c, n, l, m})
		return 7
	})
	b := newTestBridge(t, reg)

	status := dispatchLog(b, tb, 0xa0, 0xb0, int(xyoga.LogLevelWarn), "width=100 height=200", false)
	if status != 7 {
		t.Fatalf("status %d want 7", status)
	}
	want := logCall{cfg, node, xyoga.LogLevelWarn, "width=100 height=200"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDispatchLog_UnboundConfigUsesFallback(t *testing.T) {
	t.Parallel()
	tb := newTable()
	b := newTestBridge(t, xyoga.NewRegistry(nil))

	if status := dispatchLog(b, tb, 0xdead, 0, int(xyoga.LogLevelError), "boom", false); status != 0 {
		t.Fatalf("status %d want 0", status)
	}
}

func TestDispatchMeasure(t *testing.T) {
	t.Parallel()
	tb := newTable()
	node := tb.bindNode(0xc0)

	reg := xyoga.NewRegistry(nil)
	var seen xyoga.Constraints
	reg.SetMeasureFunc(node, func(_ xyoga.NodeRef, c xyoga.Constraints) xyoga.Size {
		seen = c
		return xyoga.Size{Width: 10, Height: 20}
	})
	b := newTestBridge(t, reg)

	got := dispatchMeasure(b, tb, 0xc0, 100, int(xyoga.MeasureModeAtMost), 50, int(xyoga.MeasureModeExactly))
	if got != (xyoga.Size{Width: 10, Height: 20}) {
		t.Fatalf("size %+v", got)
	}
	want := xyoga.Constraints{Width: 100, WidthMode: xyoga.MeasureModeAtMost, Height: 50, HeightMode: xyoga.MeasureModeExactly}
	if seen != want {
		t.Fatalf("constraints %+v want %+v", seen, want)
	}

	if got := dispatchMeasure(b, tb, 0, 1, 0, 1, 0); got != (xyoga.Size{}) {
		t.Fatalf("nil node measured %+v", got)
	}
	if got := dispatchMeasure(b, tb, 0xfeed, 1, 0, 1, 0); got != (xyoga.Size{}) {
		t.Fatalf("unbound node measured %+v", got)
	}
}

func TestRelease_DropsRegistryEntries(t *testing.T) {
	t.Parallel()
	tb := newTable()
	cfg := tb.bindConfig(0x10)
	node := tb.bindNode(0x20)

	reg := xyoga.NewRegistry(nil)
	reg.SetLogger(cfg, func(xyoga.ConfigRef, xyoga.NodeRef, xyoga.LogLevel, string) int { return 1 })
	reg.SetMeasureFunc(node, func(xyoga.NodeRef, xyoga.Constraints) xyoga.Size { return xyoga.Size{} })
	b := newTestBridge(t, reg)

	releaseConfig(b, tb, 0x10)
	releaseNode(b, tb, 0x20)

	if reg.Logger(cfg) != nil || reg.HasMeasureFunc(node) {
		t.Fatal("registry entries survived release")
	}
	if l, m := reg.Len(); l != 0 || m != 0 {
		t.Fatalf("len %d/%d", l, m)
	}
}

func TestDispatchLog_EngineTruncationReachesSink(t *testing.T) {
	t.Parallel()
	tb := newTable()
	cfg := tb.bindConfig(0xe0)

	var recs []xyoga.Record
	b := newTestBridge(t, xyoga.NewRegistry(nil))
	b.AddObserver(xyoga.ObserverFunc(func(r xyoga.Record) { recs = append(recs, r) }))

	dispatchLog(b, tb, 0xe0, 0, int(xyoga.LogLevelWarn), "cut", true)
	dispatchLog(b, tb, 0xe0, 0, int(xyoga.LogLevelWarn), "whole", false)

	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if !recs[0].Truncated || recs[0].Config != cfg || recs[0].Message != "cut" {
		t.Fatalf("truncated record: %+v", recs[0])
	}
	if recs[1].Truncated {
		t.Fatalf("whole record flagged: %+v", recs[1])
	}
}

func TestRegistry_FollowsGlobalBridge(t *testing.T) {
	prev := xyoga.Global()
	t.Cleanup(func() { xyoga.SetGlobal(prev) })

	reg := xyoga.NewRegistry(nil)
	xyoga.SetGlobal(newTestBridge(t, reg))
	if registry() != reg {
		t.Fatal("registry() did not return the global bridge's Registry")
	}

	xyoga.SetGlobal(newTestBridge(t, xyoga.HostFuncs{}))
	if registry() != nil {
		t.Fatal("registry() should be nil for a non-Registry host")
	}
}
