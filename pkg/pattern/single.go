package pattern

func init() {
	register(Recognizer{Name: "cdlbelthold", kinds: []Kind{BodyLong, ShadowVeryShort}, detect: beltHold})
	register(Recognizer{Name: "cdlclosingmarubozu", kinds: []Kind{BodyLong, ShadowVeryShort}, detect: closingMarubozu})
	register(Recognizer{Name: "cdldoji", kinds: []Kind{BodyDoji}, detect: doji})
	register(Recognizer{Name: "cdldragonflydoji", kinds: []Kind{BodyDoji, ShadowVeryShort}, detect: dragonflyDoji})
	register(Recognizer{Name: "cdlgravestonedoji", kinds: []Kind{BodyDoji, ShadowVeryShort}, detect: gravestoneDoji})
	register(Recognizer{Name: "cdlhighwave", kinds: []Kind{BodyShort, ShadowVeryLong}, detect: highWave})
	register(Recognizer{Name: "cdllongleggeddoji", kinds: []Kind{BodyDoji, ShadowLong}, detect: longLeggedDoji})
	register(Recognizer{Name: "cdllongline", kinds: []Kind{BodyLong, ShadowShort}, detect: longLine})
	register(Recognizer{Name: "cdlmarubozu", kinds: []Kind{BodyLong, ShadowVeryShort}, detect: marubozu})
	register(Recognizer{Name: "cdlrickshawman", kinds: []Kind{BodyDoji, ShadowLong, Near}, detect: rickshawMan})
	register(Recognizer{Name: "cdlshortline", kinds: []Kind{BodyShort, ShadowShort}, detect: shortLine})
	register(Recognizer{Name: "cdlspinningtop", kinds: []Kind{BodyShort}, detect: spinningTop})
	register(Recognizer{Name: "cdltakuri", kinds: []Kind{BodyDoji, ShadowVeryShort, ShadowVeryLong}, detect: takuri})
}

func beltHold(k *candles, i int, _ float64) int {
	ok := k.realBody(i) > k.avg(BodyLong, i) &&
		((k.white(i) && k.lowerShadow(i) < k.avg(ShadowVeryShort, i)) ||
			(k.black(i) && k.upperShadow(i) < k.avg(ShadowVeryShort, i)))
	return boolSignal(ok, k.color(i)*100)
}

func closingMarubozu(k *candles, i int, _ float64) int {
	ok := k.realBody(i) > k.avg(BodyLong, i) &&
		((k.white(i) && k.upperShadow(i) < k.avg(ShadowVeryShort, i)) ||
			(k.black(i) && k.lowerShadow(i) < k.avg(ShadowVeryShort, i)))
	return boolSignal(ok, k.color(i)*100)
}

func doji(k *candles, i int, _ float64) int {
	return boolSignal(k.realBody(i) <= k.avg(BodyDoji, i), 100)
}

func dragonflyDoji(k *candles, i int, _ float64) int {
	ok := k.realBody(i) <= k.avg(BodyDoji, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.lowerShadow(i) > k.avg(ShadowVeryShort, i)
	return boolSignal(ok, 100)
}

func gravestoneDoji(k *candles, i int, _ float64) int {
	ok := k.realBody(i) <= k.avg(BodyDoji, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.upperShadow(i) > k.avg(ShadowVeryShort, i)
	return boolSignal(ok, 100)
}

func highWave(k *candles, i int, _ float64) int {
	ok := k.realBody(i) < k.avg(BodyShort, i) &&
		k.upperShadow(i) > k.avg(ShadowVeryLong, i) &&
		k.lowerShadow(i) > k.avg(ShadowVeryLong, i)
	return boolSignal(ok, k.color(i)*100)
}

func longLeggedDoji(k *candles, i int, _ float64) int {
	ok := k.realBody(i) <= k.avg(BodyDoji, i) &&
		(k.lowerShadow(i) > k.avg(ShadowLong, i) || k.upperShadow(i) > k.avg(ShadowLong, i))
	return boolSignal(ok, 100)
}

func longLine(k *candles, i int, _ float64) int {
	ok := k.realBody(i) > k.avg(BodyLong, i) &&
		k.upperShadow(i) < k.avg(ShadowShort, i) &&
		k.lowerShadow(i) < k.avg(ShadowShort, i)
	return boolSignal(ok, k.color(i)*100)
}

func marubozu(k *candles, i int, _ float64) int {
	ok := k.realBody(i) > k.avg(BodyLong, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.lowerShadow(i) < k.avg(ShadowVeryShort, i)
	return boolSignal(ok, k.color(i)*100)
}

func rickshawMan(k *candles, i int, _ float64) int {
	mid := k.h[i] - k.highLow(i)/2
	near := k.avg(Near, i)
	ok := k.realBody(i) <= k.avg(BodyDoji, i) &&
		k.lowerShadow(i) > k.avg(ShadowLong, i) &&
		k.upperShadow(i) > k.avg(ShadowLong, i) &&
		k.bodyBottom(i) <= mid+near &&
		k.bodyTop(i) >= mid-near
	return boolSignal(ok, 100)
}

func shortLine(k *candles, i int, _ float64) int {
	ok := k.realBody(i) < k.avg(BodyShort, i) &&
		k.upperShadow(i) < k.avg(ShadowShort, i) &&
		k.lowerShadow(i) < k.avg(ShadowShort, i)
	return boolSignal(ok, k.color(i)*100)
}

func spinningTop(k *candles, i int, _ float64) int {
	rb := k.realBody(i)
	ok := rb < k.avg(BodyShort, i) && k.upperShadow(i) > rb && k.lowerShadow(i) > rb
	return boolSignal(ok, k.color(i)*100)
}

func takuri(k *candles, i int, _ float64) int {
	ok := k.realBody(i) <= k.avg(BodyDoji, i) &&
		k.upperShadow(i) < k.avg(ShadowVeryShort, i) &&
		k.lowerShadow(i) > k.avg(ShadowVeryLong, i)
	return boolSignal(ok, 100)
}
