package pattern

func init() {
	register(Recognizer{Name: "cdlcounterattack", before: 1, kinds: []Kind{Equal, BodyLong}, detect: counterattack})
	register(Recognizer{Name: "cdldarkcloudcover", Penetration: 0.5, before: 1, kinds: []Kind{BodyLong}, detect: darkCloudCover})
	register(Recognizer{Name: "cdldojistar", before: 1, kinds: []Kind{BodyDoji, BodyLong}, detect: dojiStar})
	register(Recognizer{Name: "cdlengulfing", before: 2, detect: engulfing})
	register(Recognizer{Name: "cdlhammer", before: 1, kinds: []Kind{BodyShort, ShadowLong, ShadowVeryShort, Near}, detect: hammer})
	register(Recognizer{Name: "cdlhangingman", before: 1, kinds: []Kind{BodyShort, ShadowLong, ShadowVeryShort, Near}, detect: hangingMan})
	register(Recognizer{Name: "cdlharami", before: 1, kinds: []Kind{BodyShort, BodyLong}, detect: harami})
	register(Recognizer{Name: "cdlharamicross", before: 1, kinds: []Kind{BodyDoji, BodyLong}, detect: haramiCross})
	register(Recognizer{Name: "cdlhomingpigeon", before: 1, kinds: []Kind{BodyShort, BodyLong}, detect: homingPigeon})
	register(Recognizer{Name: "cdlinneck", before: 1, kinds: []Kind{Equal, BodyLong}, detect: inNeck})
	register(Recognizer{Name: "cdlinvertedhammer", before: 1, kinds: []Kind{BodyShort, ShadowLong, ShadowVeryShort}, detect: invertedHammer})
	register(Recognizer{Name: "cdlkicking", before: 1, kinds: []Kind{ShadowVeryShort, BodyLong}, detect: kicking})
	register(Recognizer{Name: "cdlkickingbylength", before: 1, kinds: []Kind{ShadowVeryShort, BodyLong}, detect: kickingByLength})
	register(Recognizer{Name: "cdlmatchinglow", before: 1, kinds: []Kind{Equal}, detect: matchingLow})
	register(Recognizer{Name: "cdlonneck", before: 1, kinds: []Kind{Equal, BodyLong}, detect: onNeck})
	register(Recognizer{Name: "cdlpiercing", before: 1, kinds: []Kind{BodyLong}, detect: piercing})
	register(Recognizer{Name: "cdlseparatinglines", before: 1, kinds: []Kind{ShadowVeryShort, BodyLong, Equal}, detect: separatingLines})
	register(Recognizer{Name: "cdlshootingstar", before: 1, kinds: []Kind{BodyShort, ShadowLong, ShadowVeryShort}, detect: shootingStar})
	register(Recognizer{Name: "cdlthrusting", before: 1, kinds: []Kind{Equal, BodyLong}, detect: thrusting})
}

func counterattack(k *candles, i int, _ float64) int {
	ok := k.color(i-1) == -k.color(i) &&
		k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.realBody(i) > k.avg(BodyLong, i) &&
		within(k.c[i], k.c[i-1], k.avg(Equal, i-1))
	return boolSignal(ok, k.color(i)*100)
}

func darkCloudCover(k *candles, i int, pen float64) int {
	ok := k.white(i-1) && k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.black(i) &&
		k.o[i] > k.h[i-1] &&
		k.c[i] > k.o[i-1] &&
		k.c[i] < k.c[i-1]-k.realBody(i-1)*pen
	return boolSignal(ok, -100)
}

func dojiStar(k *candles, i int, _ float64) int {
	ok := k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.realBody(i) <= k.avg(BodyDoji, i) &&
		((k.white(i-1) && k.bodyGapUp(i, i-1)) || (k.black(i-1) && k.bodyGapDown(i, i-1)))
	return boolSignal(ok, -k.color(i-1)*100)
}

func engulfing(k *candles, i int, _ float64) int {
	ok := (k.white(i) && k.black(i-1) && k.c[i] > k.o[i-1] && k.o[i] < k.c[i-1]) ||
		(k.black(i) && k.white(i-1) && k.o[i] > k.c[i-1] && k.c[i] < k.o[i-1])
	return boolSignal(ok, k.color(i)*100)
}

func hammerShape(k *candles, i int) bool {
	return k.realBody(i) < k.avg(BodyShort, i) &&
		k.lowerShadow(i) > k.avg(ShadowLong, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i)
}

func hammer(k *candles, i int, _ float64) int {
	ok := hammerShape(k, i) && k.bodyBottom(i) <= k.l[i-1]+k.avg(Near, i-1)
	return boolSignal(ok, 100)
}

func hangingMan(k *candles, i int, _ float64) int {
	ok := hammerShape(k, i) && k.bodyBottom(i) >= k.h[i-1]-k.avg(Near, i-1)
	return boolSignal(ok, -100)
}

// inside reports whether the body of i is strictly inside the body of j
func (k *candles) inside(i, j int) bool {
	return k.bodyTop(i) < k.bodyTop(j) && k.bodyBottom(i) > k.bodyBottom(j)
}

func harami(k *candles, i int, _ float64) int {
	ok := k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.realBody(i) <= k.avg(BodyShort, i) &&
		k.inside(i, i-1)
	return boolSignal(ok, -k.color(i-1)*100)
}

func haramiCross(k *candles, i int, _ float64) int {
	ok := k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.realBody(i) <= k.avg(BodyDoji, i) &&
		k.inside(i, i-1)
	return boolSignal(ok, -k.color(i-1)*100)
}

func homingPigeon(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.black(i) &&
		k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.realBody(i) <= k.avg(BodyShort, i) &&
		k.o[i] < k.o[i-1] && k.c[i] > k.c[i-1]
	return boolSignal(ok, 100)
}

func inNeck(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.white(i) &&
		k.o[i] < k.l[i-1] &&
		k.c[i] <= k.c[i-1]+k.avg(Equal, i-1) &&
		k.c[i] >= k.c[i-1]
	return boolSignal(ok, -100)
}

func invertedHammer(k *candles, i int, _ float64) int {
	ok := k.realBody(i) < k.avg(BodyShort, i) &&
		k.upperShadow(i) > k.avg(ShadowLong, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.bodyGapDown(i, i-1)
	return boolSignal(ok, 100)
}

func (k *candles) marubozu(i int) bool {
	return k.realBody(i) > k.avg(BodyLong, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i)
}

func kickingShape(k *candles, i int) bool {
	return k.color(i-1) == -k.color(i) &&
		k.marubozu(i-1) && k.marubozu(i) &&
		((k.black(i-1) && k.gapUp(i, i-1)) || (k.white(i-1) && k.gapDown(i, i-1)))
}

func kicking(k *candles, i int, _ float64) int {
	return boolSignal(kickingShape(k, i), k.color(i)*100)
}

func kickingByLength(k *candles, i int, _ float64) int {
	if !kickingShape(k, i) {
		return 0
	}
	if k.realBody(i) > k.realBody(i-1) {
		return k.color(i) * 100
	}
	return k.color(i-1) * 100
}

func matchingLow(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.black(i) && within(k.c[i], k.c[i-1], k.avg(Equal, i-1))
	return boolSignal(ok, 100)
}

func onNeck(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.white(i) &&
		k.o[i] < k.l[i-1] &&
		within(k.c[i], k.l[i-1], k.avg(Equal, i-1))
	return boolSignal(ok, -100)
}

func piercing(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.white(i) && k.realBody(i) > k.avg(BodyLong, i) &&
		k.o[i] < k.l[i-1] &&
		k.c[i] < k.o[i-1] &&
		k.c[i] > k.c[i-1]+k.realBody(i-1)*0.5
	return boolSignal(ok, 100)
}

func separatingLines(k *candles, i int, _ float64) int {
	ok := k.color(i-1) == -k.color(i) &&
		within(k.o[i], k.o[i-1], k.avg(Equal, i-1)) &&
		k.realBody(i) > k.avg(BodyLong, i) &&
		((k.white(i) && k.lowerShadow(i) < k.avg(ShadowVeryShort, i)) ||
			(k.black(i) && k.upperShadow(i) < k.avg(ShadowVeryShort, i)))
	return boolSignal(ok, k.color(i)*100)
}

func shootingStar(k *candles, i int, _ float64) int {
	ok := k.realBody(i) < k.avg(BodyShort, i) &&
		k.upperShadow(i) > k.avg(ShadowLong, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.bodyGapUp(i, i-1)
	return boolSignal(ok, -100)
}

func thrusting(k *candles, i int, _ float64) int {
	ok := k.black(i-1) && k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.white(i) &&
		k.o[i] < k.l[i-1] &&
		k.c[i] > k.c[i-1]+k.avg(Equal, i-1) &&
		k.c[i] <= k.c[i-1]+k.realBody(i-1)*0.5
	return boolSignal(ok, -100)
}
