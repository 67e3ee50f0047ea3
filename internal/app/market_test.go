package app

import (
	"strings"
	"testing"
)

func TestMakeSeries_LengthAndFloor(t *testing.T) {
	series := MakeSeries(0)
	if len(series) != seriesPoints {
		t.Fatalf("length: want %d, got %d", seriesPoints, len(series))
	}
	for i, v := range series {
		if v < 10 {
			t.Fatalf("series[%d]=%v below floor", i, v)
		}
	}
}

func TestMakeCrashSeries_HasDrop(t *testing.T) {
	points := 64
	series := MakeCrashSeries(points)
	if len(series) != 64 {
		t.Fatalf("length: want 64, got %d", len(series))
	}
	dropIdx := int(float64(points) * 0.35)
	before := series[dropIdx-1]
	after := series[dropIdx]
	// price is multiplied by at most 0.32 at the drop point
	if after > before*0.35 {
		t.Fatalf("expected crash at %d: before=%v after=%v", dropIdx, before, after)
	}
}

func TestMakeMetrics_Shapes(t *testing.T) {
	m := makeMetrics()
	if !strings.HasPrefix(m.NetWorth, "$") {
		t.Fatalf("net worth: %q", m.NetWorth)
	}
	if !strings.HasPrefix(m.PNL, "+$") && !strings.HasPrefix(m.PNL, "-$") {
		t.Fatalf("pnl: %q", m.PNL)
	}
	if !strings.HasSuffix(m.ShortInterest, "%") {
		t.Fatalf("short interest: %q", m.ShortInterest)
	}

	c := makeCrashMetrics()
	if !strings.HasPrefix(c.PNL, "-$") {
		t.Fatalf("crash pnl must be negative: %q", c.PNL)
	}
}

func TestCommaAmount(t *testing.T) {
	cases := map[float64]string{
		0:           "0.00",
		41.5:        "41.50",
		1234.56:     "1,234.56",
		8000000:     "8,000,000.00",
		987654321.1: "987,654,321.10",
	}
	for in, want := range cases {
		if got := commaAmount(in); got != want {
			t.Fatalf("commaAmount(%v): want %q, got %q", in, want, got)
		}
	}
}
