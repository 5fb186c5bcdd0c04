package pattern

import "math"

func init() {
	register(Recognizer{Name: "cdl2crows", before: 2, kinds: []Kind{BodyLong}, detect: twoCrows})
	register(Recognizer{Name: "cdl3inside", before: 2, kinds: []Kind{BodyShort, BodyLong}, detect: threeInside})
	register(Recognizer{Name: "cdl3outside", before: 3, detect: threeOutside})
	register(Recognizer{Name: "cdl3starsinsouth", before: 2, kinds: []Kind{ShadowVeryShort, ShadowLong, BodyLong, BodyShort}, detect: threeStarsInSouth})
	register(Recognizer{Name: "cdl3whitesoldiers", before: 2, kinds: []Kind{ShadowVeryShort, BodyShort, Far, Near}, detect: threeWhiteSoldiers})
	register(Recognizer{Name: "cdlabandonedbaby", Penetration: 0.3, before: 2, kinds: []Kind{BodyDoji, BodyLong, BodyShort}, detect: abandonedBaby})
	register(Recognizer{Name: "cdladvanceblock", before: 2, kinds: []Kind{ShadowLong, ShadowShort, Far, Near, BodyLong}, detect: advanceBlock})
	register(Recognizer{Name: "cdleveningdojistar", Penetration: 0.3, before: 2, kinds: []Kind{BodyDoji, BodyLong, BodyShort}, detect: eveningDojiStar})
	register(Recognizer{Name: "cdleveningstar", Penetration: 0.3, before: 2, kinds: []Kind{BodyShort, BodyLong}, detect: eveningStar})
	register(Recognizer{Name: "cdlgapsidesidewhite", before: 2, kinds: []Kind{Near, Equal}, detect: gapSideSideWhite})
	register(Recognizer{Name: "cdlidentical3crows", before: 2, kinds: []Kind{ShadowVeryShort, Equal}, detect: identicalThreeCrows})
	register(Recognizer{Name: "cdlmorningdojistar", Penetration: 0.3, before: 2, kinds: []Kind{BodyDoji, BodyLong, BodyShort}, detect: morningDojiStar})
	register(Recognizer{Name: "cdlmorningstar", Penetration: 0.3, before: 2, kinds: []Kind{BodyShort, BodyLong}, detect: morningStar})
	register(Recognizer{Name: "cdlstalledpattern", before: 2, kinds: []Kind{BodyLong, BodyShort, ShadowVeryShort, Near}, detect: stalledPattern})
	register(Recognizer{Name: "cdlsticksandwich", before: 2, kinds: []Kind{Equal}, detect: stickSandwich})
	register(Recognizer{Name: "cdltasukigap", before: 2, kinds: []Kind{Near}, detect: tasukiGap})
	register(Recognizer{Name: "cdltristar", before: 2, kinds: []Kind{BodyDoji}, detect: triStar})
	register(Recognizer{Name: "cdlunique3river", before: 2, kinds: []Kind{BodyShort, BodyLong}, detect: uniqueThreeRiver})
	register(Recognizer{Name: "cdlupsidegap2crows", before: 2, kinds: []Kind{BodyShort, BodyLong}, detect: upsideGapTwoCrows})
	register(Recognizer{Name: "cdlxsidegap3methods", before: 2, detect: sideGapThreeMethods})
}

func twoCrows(k *candles, i int, _ float64) int {
	ok := k.white(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.black(i-1) && k.bodyGapUp(i-1, i-2) &&
		k.black(i) &&
		k.o[i] < k.o[i-1] && k.o[i] > k.c[i-1] &&
		k.c[i] > k.o[i-2] && k.c[i] < k.c[i-2]
	return boolSignal(ok, -100)
}

func threeInside(k *candles, i int, _ float64) int {
	ok := k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyShort, i-1) &&
		k.inside(i-1, i-2) &&
		((k.white(i-2) && k.black(i) && k.c[i] < k.o[i-2]) ||
			(k.black(i-2) && k.white(i) && k.c[i] > k.o[i-2]))
	return boolSignal(ok, -k.color(i-2)*100)
}

func threeOutside(k *candles, i int, _ float64) int {
	ok := (k.white(i-1) && k.black(i-2) && k.c[i-1] > k.o[i-2] && k.o[i-1] < k.c[i-2] && k.c[i] > k.c[i-1]) ||
		(k.black(i-1) && k.white(i-2) && k.o[i-1] > k.c[i-2] && k.c[i-1] < k.o[i-2] && k.c[i] < k.c[i-1])
	return boolSignal(ok, k.color(i-1)*100)
}

func threeStarsInSouth(k *candles, i int, _ float64) int {
	ok := k.black(i-2) && k.black(i-1) && k.black(i) &&
		// first: long body with a long lower shadow
		k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.lowerShadow(i-2) > k.avg(ShadowLong, i-2) &&
		// second: smaller, opens inside the first range, low not under the first low
		k.realBody(i-1) < k.realBody(i-2) &&
		k.o[i-1] > k.c[i-2] && k.o[i-1] <= k.h[i-2] &&
		k.l[i-1] < k.c[i-2] && k.l[i-1] >= k.l[i-2] &&
		k.lowerShadow(i-1) > k.avg(ShadowVeryShort, i-1) &&
		// third: small marubozu engulfed by the second range
		k.realBody(i) < k.avg(BodyShort, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.l[i] > k.l[i-1] && k.h[i] < k.h[i-1]
	return boolSignal(ok, 100)
}

func threeWhiteSoldiers(k *candles, i int, _ float64) int {
	ok := k.white(i-2) && k.upperShadow(i-2) < k.avg(ShadowVeryShort, i-2) &&
		k.white(i-1) && k.upperShadow(i-1) < k.avg(ShadowVeryShort, i-1) &&
		k.white(i) && k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.c[i] > k.c[i-1] && k.c[i-1] > k.c[i-2] &&
		k.o[i-1] > k.o[i-2] && k.o[i-1] <= k.c[i-2]+k.avg(Near, i-2) &&
		k.o[i] > k.o[i-1] && k.o[i] <= k.c[i-1]+k.avg(Near, i-1) &&
		k.realBody(i-1) > k.realBody(i-2)-k.avg(Far, i-2) &&
		k.realBody(i) > k.realBody(i-1)-k.avg(Far, i-1) &&
		k.realBody(i) > k.avg(BodyShort, i)
	return boolSignal(ok, 100)
}

func abandonedBaby(k *candles, i int, pen float64) int {
	if !(k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyDoji, i-1) &&
		k.realBody(i) > k.avg(BodyShort, i)) {
		return 0
	}
	ok := (k.white(i-2) && k.black(i) &&
		k.c[i] < k.c[i-2]-k.realBody(i-2)*pen &&
		k.gapUp(i-1, i-2) && k.gapDown(i, i-1)) ||
		(k.black(i-2) && k.white(i) &&
			k.c[i] > k.c[i-2]+k.realBody(i-2)*pen &&
			k.gapDown(i-1, i-2) && k.gapUp(i, i-1))
	return boolSignal(ok, k.color(i)*100)
}

func advanceBlock(k *candles, i int, _ float64) int {
	if !(k.white(i-2) && k.white(i-1) && k.white(i) &&
		k.c[i] > k.c[i-1] && k.c[i-1] > k.c[i-2] &&
		k.o[i-1] > k.o[i-2] && k.o[i-1] <= k.c[i-2]+k.avg(Near, i-2) &&
		k.o[i] > k.o[i-1] && k.o[i] <= k.c[i-1]+k.avg(Near, i-1) &&
		k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.upperShadow(i-2) < k.avg(ShadowShort, i-2)) {
		return 0
	}

	rb0, rb1, rb2 := k.realBody(i-2), k.realBody(i-1), k.realBody(i)
	weakening := (rb1 < rb0-k.avg(Far, i-2) && rb2 < rb1+k.avg(Near, i-1)) ||
		rb2 < rb1-k.avg(Far, i-1) ||
		(rb2 < rb1 && rb1 < rb0 &&
			(k.upperShadow(i) > k.avg(ShadowShort, i) || k.upperShadow(i-1) > k.avg(ShadowShort, i-1))) ||
		(rb2 < rb1 && k.upperShadow(i) > k.avg(ShadowLong, i))
	return boolSignal(weakening, -100)
}

func eveningDojiStar(k *candles, i int, pen float64) int {
	ok := k.white(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyDoji, i-1) && k.bodyGapUp(i-1, i-2) &&
		k.black(i) && k.realBody(i) > k.avg(BodyShort, i) &&
		k.c[i] < k.c[i-2]-k.realBody(i-2)*pen
	return boolSignal(ok, -100)
}

func eveningStar(k *candles, i int, pen float64) int {
	ok := k.white(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyShort, i-1) && k.bodyGapUp(i-1, i-2) &&
		k.black(i) && k.realBody(i) > k.avg(BodyShort, i) &&
		k.c[i] < k.c[i-2]-k.realBody(i-2)*pen
	return boolSignal(ok, -100)
}

func gapSideSideWhite(k *candles, i int, _ float64) int {
	up := k.bodyGapUp(i-1, i-2) && k.bodyGapUp(i, i-2)
	down := k.bodyGapDown(i-1, i-2) && k.bodyGapDown(i, i-2)
	ok := (up || down) &&
		k.white(i-1) && k.white(i) &&
		within(k.realBody(i), k.realBody(i-1), k.avg(Near, i-1)) &&
		within(k.o[i], k.o[i-1], k.avg(Equal, i-1))
	if !ok {
		return 0
	}
	if up {
		return 100
	}
	return -100
}

func identicalThreeCrows(k *candles, i int, _ float64) int {
	ok := k.black(i-2) && k.lowerShadow(i-2) < k.avg(ShadowVeryShort, i-2) &&
		k.black(i-1) && k.lowerShadow(i-1) < k.avg(ShadowVeryShort, i-1) &&
		k.black(i) && k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.c[i-2] > k.c[i-1] && k.c[i-1] > k.c[i] &&
		within(k.o[i-1], k.c[i-2], k.avg(Equal, i-2)) &&
		within(k.o[i], k.c[i-1], k.avg(Equal, i-1))
	return boolSignal(ok, -100)
}

func morningDojiStar(k *candles, i int, pen float64) int {
	ok := k.black(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyDoji, i-1) && k.bodyGapDown(i-1, i-2) &&
		k.white(i) && k.realBody(i) > k.avg(BodyShort, i) &&
		k.c[i] > k.c[i-2]+k.realBody(i-2)*pen
	return boolSignal(ok, 100)
}

func morningStar(k *candles, i int, pen float64) int {
	ok := k.black(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) <= k.avg(BodyShort, i-1) && k.bodyGapDown(i-1, i-2) &&
		k.white(i) && k.realBody(i) > k.avg(BodyShort, i) &&
		k.c[i] > k.c[i-2]+k.realBody(i-2)*pen
	return boolSignal(ok, 100)
}

func stalledPattern(k *candles, i int, _ float64) int {
	ok := k.white(i-2) && k.white(i-1) && k.white(i) &&
		k.c[i] > k.c[i-1] && k.c[i-1] > k.c[i-2] &&
		k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.realBody(i-1) > k.avg(BodyLong, i-1) &&
		k.upperShadow(i-1) < k.avg(ShadowVeryShort, i-1) &&
		k.o[i-1] > k.o[i-2] && k.o[i-1] <= k.c[i-2]+k.avg(Near, i-2) &&
		k.realBody(i) < k.avg(BodyShort, i) &&
		k.o[i] >= k.c[i-1]-k.realBody(i)-k.avg(Near, i-1)
	return boolSignal(ok, -100)
}

func stickSandwich(k *candles, i int, _ float64) int {
	ok := k.black(i-2) && k.white(i-1) && k.black(i) &&
		k.l[i-1] > k.c[i-2] &&
		within(k.c[i], k.c[i-2], k.avg(Equal, i-2))
	return boolSignal(ok, 100)
}

func tasukiGap(k *candles, i int, _ float64) int {
	sameSize := math.Abs(k.realBody(i-1)-k.realBody(i)) < k.avg(Near, i-1)
	switch {
	case k.bodyGapUp(i-1, i-2) && k.white(i-1) && k.black(i) &&
		k.o[i] < k.c[i-1] && k.o[i] > k.o[i-1] &&
		k.c[i] < k.o[i-1] && k.c[i] > k.bodyTop(i-2) && sameSize:
		return 100
	case k.bodyGapDown(i-1, i-2) && k.black(i-1) && k.white(i) &&
		k.o[i] < k.o[i-1] && k.o[i] > k.c[i-1] &&
		k.c[i] > k.o[i-1] && k.c[i] < k.bodyBottom(i-2) && sameSize:
		return -100
	}
	return 0
}

func triStar(k *candles, i int, _ float64) int {
	dojiBody := k.avg(BodyDoji, i-2)
	if !(k.realBody(i-2) <= dojiBody && k.realBody(i-1) <= dojiBody && k.realBody(i) <= dojiBody) {
		return 0
	}
	switch {
	case k.bodyGapUp(i-1, i-2) && k.bodyTop(i) < k.bodyTop(i-1):
		return -100
	case k.bodyGapDown(i-1, i-2) && k.bodyBottom(i) > k.bodyBottom(i-1):
		return 100
	}
	return 0
}

func uniqueThreeRiver(k *candles, i int, _ float64) int {
	ok := k.black(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.black(i-1) && k.c[i-1] > k.c[i-2] && k.o[i-1] <= k.o[i-2] && k.l[i-1] < k.l[i-2] &&
		k.white(i) && k.realBody(i) < k.avg(BodyShort, i) && k.o[i] > k.l[i-1]
	return boolSignal(ok, 100)
}

func upsideGapTwoCrows(k *candles, i int, _ float64) int {
	ok := k.white(i-2) && k.realBody(i-2) > k.avg(BodyLong, i-2) &&
		k.black(i-1) && k.realBody(i-1) <= k.avg(BodyShort, i-1) && k.bodyGapUp(i-1, i-2) &&
		k.black(i) && k.o[i] > k.o[i-1] && k.c[i] < k.c[i-1] && k.c[i] > k.c[i-2]
	return boolSignal(ok, -100)
}

func sideGapThreeMethods(k *candles, i int, _ float64) int {
	ok := k.color(i-2) == k.color(i-1) && k.color(i-1) == -k.color(i) &&
		k.o[i] < k.bodyTop(i-1) && k.o[i] > k.bodyBottom(i-1) &&
		k.c[i] < k.bodyTop(i-2) && k.c[i] > k.bodyBottom(i-2) &&
		((k.white(i-2) && k.bodyGapUp(i-1, i-2)) || (k.black(i-2) && k.bodyGapDown(i-1, i-2)))
	return boolSignal(ok, k.color(i-2)*100)
}
