package app

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

// Fabricated market cosmetics: chart series and headline metrics. Purely
// random display noise, regenerated on every call and never persisted.

const seriesPoints = 64

// MakeSeries produces a mean-reverting random walk around 100.
func MakeSeries(points int) []float64 {
	if points <= 0 {
		points = seriesPoints
	}
	price := 100.0
	out := make([]float64, 0, points)
	for i := 0; i < points; i++ {
		shock := uniform(-2.4, 1.8)
		reversion := (100 - price) * 0.07
		price = math.Max(10.0, price+shock+reversion)
		out = append(out, round2(price))
	}
	return out
}

// MakeCrashSeries produces a walk with a single 68-82% drop about a third of
// the way in.
func MakeCrashSeries(points int) []float64 {
	if points <= 0 {
		points = seriesPoints
	}
	price := 103.0
	dropIdx := int(float64(points) * 0.35)
	out := make([]float64, 0, points)
	for i := 0; i < points; i++ {
		if i == dropIdx {
			price *= uniform(0.18, 0.32)
		} else {
			price = math.Max(0.5, price+uniform(-1.4, 0.35))
		}
		out = append(out, round2(price))
	}
	return out
}

func makeMetrics() domain.Metrics {
	net := 8_000_000 + rand.Float64()*9_000_000
	pnl := uniform(-40_000, 160_000)
	shortInterest := uniform(220, 720)

	sign := "+"
	if pnl < 0 {
		sign = "-"
	}
	return domain.Metrics{
		NetWorth:      "$" + commaAmount(net),
		PNL:           sign + "$" + commaAmount(math.Abs(pnl)),
		ShortInterest: fmt.Sprintf("%.2f%%", shortInterest),
	}
}

func makeCrashMetrics() domain.Metrics {
	net := uniform(41.0, 5999.0)
	pnl := uniform(-8_500_000, -2_100_000)
	shortInterest := uniform(0.01, 3.5)

	return domain.Metrics{
		NetWorth:      "$" + commaAmount(net),
		PNL:           "-$" + commaAmount(math.Abs(pnl)),
		ShortInterest: fmt.Sprintf("%.2f%%", shortInterest),
	}
}

func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// commaAmount formats v with two decimals and comma thousands separators.
func commaAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + fracPart
}
