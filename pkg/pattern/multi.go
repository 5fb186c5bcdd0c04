package pattern

import "math"

func init() {
	register(Recognizer{Name: "cdl3blackcrows", before: 3, kinds: []Kind{ShadowVeryShort}, detect: threeBlackCrows})
	register(Recognizer{Name: "cdl3linestrike", before: 3, kinds: []Kind{Near}, detect: threeLineStrike})
	register(Recognizer{Name: "cdlbreakaway", before: 4, kinds: []Kind{BodyLong}, detect: breakaway})
	register(Recognizer{Name: "cdlconcealbabyswall", before: 3, kinds: []Kind{ShadowVeryShort}, detect: concealingBabySwallow})
	register(Recognizer{Name: "cdlladderbottom", before: 4, kinds: []Kind{ShadowVeryShort}, detect: ladderBottom})
	register(Recognizer{Name: "cdlmathold", Penetration: 0.5, before: 4, kinds: []Kind{BodyShort, BodyLong}, detect: matHold})
	register(Recognizer{Name: "cdlrisefall3methods", before: 4, kinds: []Kind{BodyShort, BodyLong}, detect: riseFallThreeMethods})
	register(Recognizer{Name: "cdlhikkake", before: 5, scan: hikkake})
	register(Recognizer{Name: "cdlhikkakemod", before: 5, minAvg: 1, kinds: []Kind{Near}, scan: hikkakeMod})
}

func threeBlackCrows(k *candles, i int, _ float64) int {
	ok := k.white(i-3) &&
		k.black(i-2) && k.lowerShadow(i-2) < k.avg(ShadowVeryShort, i-2) &&
		k.black(i-1) && k.lowerShadow(i-1) < k.avg(ShadowVeryShort, i-1) &&
		k.black(i) && k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.o[i-1] < k.o[i-2] && k.o[i-1] > k.c[i-2] &&
		k.o[i] < k.o[i-1] && k.o[i] > k.c[i-1] &&
		k.h[i-3] > k.c[i-2] &&
		k.c[i-2] > k.c[i-1] && k.c[i-1] > k.c[i]
	return boolSignal(ok, -100)
}

func threeLineStrike(k *candles, i int, _ float64) int {
	if !(k.color(i-3) == k.color(i-2) && k.color(i-2) == k.color(i-1) && k.color(i) == -k.color(i-1)) {
		return 0
	}

	near3, near2 := k.avg(Near, i-3), k.avg(Near, i-2)
	opensInside := k.o[i-2] >= k.bodyBottom(i-3)-near3 && k.o[i-2] <= k.bodyTop(i-3)+near3 &&
		k.o[i-1] >= k.bodyBottom(i-2)-near2 && k.o[i-1] <= k.bodyTop(i-2)+near2
	if !opensInside {
		return 0
	}

	ok := (k.white(i-1) && k.c[i-1] > k.c[i-2] && k.c[i-2] > k.c[i-3] &&
		k.o[i] > k.c[i-1] && k.c[i] < k.o[i-3]) ||
		(k.black(i-1) && k.c[i-1] < k.c[i-2] && k.c[i-2] < k.c[i-3] &&
			k.o[i] < k.c[i-1] && k.c[i] > k.o[i-3])
	return boolSignal(ok, k.color(i-1)*100)
}

func breakaway(k *candles, i int, _ float64) int {
	if !(k.realBody(i-4) > k.avg(BodyLong, i-4) &&
		k.color(i-4) == k.color(i-3) && k.color(i-3) == k.color(i-1) &&
		k.color(i-1) == -k.color(i)) {
		return 0
	}

	ok := (k.black(i-4) && k.bodyGapDown(i-3, i-4) &&
		k.h[i-2] < k.h[i-3] && k.l[i-2] < k.l[i-3] &&
		k.h[i-1] < k.h[i-2] && k.l[i-1] < k.l[i-2] &&
		k.c[i] > k.o[i-3] && k.c[i] < k.c[i-4]) ||
		(k.white(i-4) && k.bodyGapUp(i-3, i-4) &&
			k.h[i-2] > k.h[i-3] && k.l[i-2] > k.l[i-3] &&
			k.h[i-1] > k.h[i-2] && k.l[i-1] > k.l[i-2] &&
			k.c[i] < k.o[i-3] && k.c[i] > k.c[i-4])
	return boolSignal(ok, k.color(i)*100)
}

func concealingBabySwallow(k *candles, i int, _ float64) int {
	ok := k.black(i-3) && k.black(i-2) && k.black(i-1) && k.black(i) &&
		k.lowerShadow(i-3) < k.avg(ShadowVeryShort, i-3) &&
		k.upperShadow(i-3) < k.avg(ShadowVeryShort, i-3) &&
		k.lowerShadow(i-2) < k.avg(ShadowVeryShort, i-2) &&
		k.upperShadow(i-2) < k.avg(ShadowVeryShort, i-2) &&
		k.bodyGapDown(i-1, i-2) &&
		k.upperShadow(i-1) > k.avg(ShadowVeryShort, i-1) &&
		k.h[i-1] > k.c[i-2] &&
		k.h[i] > k.h[i-1] && k.l[i] < k.l[i-1]
	return boolSignal(ok, 100)
}

func ladderBottom(k *candles, i int, _ float64) int {
	ok := k.black(i-4) && k.black(i-3) && k.black(i-2) &&
		k.o[i-4] > k.o[i-3] && k.o[i-3] > k.o[i-2] &&
		k.c[i-4] > k.c[i-3] && k.c[i-3] > k.c[i-2] &&
		k.black(i-1) && k.upperShadow(i-1) > k.avg(ShadowVeryShort, i-1) &&
		k.white(i) && k.o[i] > k.o[i-1] && k.c[i] > k.h[i-1]
	return boolSignal(ok, 100)
}

func matHold(k *candles, i int, pen float64) int {
	floor := k.c[i-4] - k.realBody(i-4)*pen
	ok := k.white(i-4) && k.realBody(i-4) > k.avg(BodyLong, i-4) &&
		k.realBody(i-3) < k.avg(BodyShort, i-3) &&
		k.realBody(i-2) < k.avg(BodyShort, i-2) &&
		k.realBody(i-1) < k.avg(BodyShort, i-1) &&
		k.black(i-3) && k.bodyGapUp(i-3, i-4) &&
		// reaction days hold inside the first body
		k.bodyBottom(i-2) < k.c[i-4] && k.bodyBottom(i-1) < k.c[i-4] &&
		k.bodyBottom(i-2) > floor && k.bodyBottom(i-1) > floor &&
		// and drift lower
		k.bodyTop(i-2) < k.o[i-3] && k.bodyTop(i-1) < k.bodyTop(i-2) &&
		k.white(i) && k.o[i] > k.c[i-1] &&
		k.c[i] > math.Max(math.Max(k.h[i-3], k.h[i-2]), k.h[i-1])
	return boolSignal(ok, 100)
}

func riseFallThreeMethods(k *candles, i int, _ float64) int {
	dir := float64(k.color(i - 4))
	ok := k.realBody(i-4) > k.avg(BodyLong, i-4) &&
		k.realBody(i-3) < k.avg(BodyShort, i-3) &&
		k.realBody(i-2) < k.avg(BodyShort, i-2) &&
		k.realBody(i-1) < k.avg(BodyShort, i-1) &&
		k.realBody(i) > k.avg(BodyLong, i) &&
		k.color(i-4) == -k.color(i-3) &&
		k.color(i-3) == k.color(i-2) &&
		k.color(i-2) == k.color(i-1) &&
		k.color(i-1) == -k.color(i) &&
		k.bodyBottom(i-3) < k.h[i-4] && k.bodyTop(i-3) > k.l[i-4] &&
		k.bodyBottom(i-2) < k.h[i-4] && k.bodyTop(i-2) > k.l[i-4] &&
		k.bodyBottom(i-1) < k.h[i-4] && k.bodyTop(i-1) > k.l[i-4] &&
		k.c[i-2]*dir < k.c[i-3]*dir &&
		k.c[i-1]*dir < k.c[i-2]*dir &&
		k.o[i]*dir > k.c[i-1]*dir &&
		k.c[i]*dir > k.c[i-4]*dir
	return boolSignal(ok, k.color(i-4)*100)
}

// hikkakeState tracks the last inside-bar breakout waiting for confirmation
type hikkakeState struct {
	idx    int
	result int
}

// confirmed reports whether candle i closes beyond the inside bar within
// three candles of the breakout
func (s *hikkakeState) confirmed(k *candles, i int) bool {
	return s.idx > 0 && i <= s.idx+3 &&
		((s.result > 0 && k.c[i] > k.h[s.idx-1]) || (s.result < 0 && k.c[i] < k.l[s.idx-1]))
}

func scanHikkake(k *candles, start, depth int, out []float64, setup func(i int) bool) {
	var st hikkakeState

	for i := max(start-3, depth); i < len(k.c); i++ {
		signal := 0
		switch {
		case setup(i):
			st.result = 100
			if k.h[i] >= k.h[i-1] {
				st.result = -100
			}
			st.idx = i
			signal = st.result
		case st.confirmed(k, i):
			signal = st.result + 100
			if st.result < 0 {
				signal = st.result - 100
			}
			st.idx = 0
		}
		if i >= start {
			out[i] = float64(signal)
		}
	}
}

func hikkake(k *candles, start int, _ float64, out []float64) {
	scanHikkake(k, start, 2, out, func(i int) bool {
		return k.h[i-1] < k.h[i-2] && k.l[i-1] > k.l[i-2] &&
			((k.h[i] < k.h[i-1] && k.l[i] < k.l[i-1]) || (k.h[i] > k.h[i-1] && k.l[i] > k.l[i-1]))
	})
}

func hikkakeMod(k *candles, start int, _ float64, out []float64) {
	scanHikkake(k, start, 3, out, func(i int) bool {
		return k.h[i-2] < k.h[i-3] && k.l[i-2] > k.l[i-3] &&
			k.h[i-1] < k.h[i-2] && k.l[i-1] > k.l[i-2] &&
			((k.h[i] < k.h[i-1] && k.l[i] < k.l[i-1] && k.c[i-2] <= k.l[i-2]+k.avg(Near, i-2)) ||
				(k.h[i] > k.h[i-1] && k.l[i] > k.l[i-1] && k.c[i-2] >= k.h[i-2]-k.avg(Near, i-2)))
	})
}
