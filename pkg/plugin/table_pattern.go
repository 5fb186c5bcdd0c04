package plugin

var patternFunctions = []Function{
	{
		Name:        "cdl2crows",
		Group:       PatternRecognition,
		Description: "Two Crows",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3blackcrows",
		Group:       PatternRecognition,
		Description: "Three Black Crows",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3inside",
		Group:       PatternRecognition,
		Description: "Three Inside Up/Down",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3linestrike",
		Group:       PatternRecognition,
		Description: "Three-Line Strike",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3outside",
		Group:       PatternRecognition,
		Description: "Three Outside Up/Down",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3starsinsouth",
		Group:       PatternRecognition,
		Description: "Three Stars In The South",
		Inputs:      ohlc,
	},
	{
		Name:        "cdl3whitesoldiers",
		Group:       PatternRecognition,
		Description: "Three Advancing White Soldiers",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlabandonedbaby",
		Group:       PatternRecognition,
		Description: "Abandoned Baby",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.3)},
	},
	{
		Name:        "cdladvanceblock",
		Group:       PatternRecognition,
		Description: "Advance Block",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlbelthold",
		Group:       PatternRecognition,
		Description: "Belt-hold",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlbreakaway",
		Group:       PatternRecognition,
		Description: "Breakaway",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlclosingmarubozu",
		Group:       PatternRecognition,
		Description: "Closing Marubozu",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlconcealbabyswall",
		Group:       PatternRecognition,
		Description: "Concealing Baby Swallow",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlcounterattack",
		Group:       PatternRecognition,
		Description: "Counterattack",
		Inputs:      ohlc,
	},
	{
		Name:        "cdldarkcloudcover",
		Group:       PatternRecognition,
		Description: "Dark Cloud Cover",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.5)},
	},
	{
		Name:        "cdldoji",
		Group:       PatternRecognition,
		Description: "Doji",
		Inputs:      ohlc,
	},
	{
		Name:        "cdldojistar",
		Group:       PatternRecognition,
		Description: "Doji Star",
		Inputs:      ohlc,
	},
	{
		Name:        "cdldragonflydoji",
		Group:       PatternRecognition,
		Description: "Dragonfly Doji",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlengulfing",
		Group:       PatternRecognition,
		Description: "Engulfing Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdleveningdojistar",
		Group:       PatternRecognition,
		Description: "Evening Doji Star",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.3)},
	},
	{
		Name:        "cdleveningstar",
		Group:       PatternRecognition,
		Description: "Evening Star",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.3)},
	},
	{
		Name:        "cdlgapsidesidewhite",
		Group:       PatternRecognition,
		Description: "Up/Down-gap side-by-side white lines",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlgravestonedoji",
		Group:       PatternRecognition,
		Description: "Gravestone Doji",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhammer",
		Group:       PatternRecognition,
		Description: "Hammer",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhangingman",
		Group:       PatternRecognition,
		Description: "Hanging Man",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlharami",
		Group:       PatternRecognition,
		Description: "Harami Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlharamicross",
		Group:       PatternRecognition,
		Description: "Harami Cross Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhighwave",
		Group:       PatternRecognition,
		Description: "High-Wave Candle",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhikkake",
		Group:       PatternRecognition,
		Description: "Hikkake Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhikkakemod",
		Group:       PatternRecognition,
		Description: "Modified Hikkake Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlhomingpigeon",
		Group:       PatternRecognition,
		Description: "Homing Pigeon",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlidentical3crows",
		Group:       PatternRecognition,
		Description: "Identical Three Crows",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlinneck",
		Group:       PatternRecognition,
		Description: "In-Neck Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlinvertedhammer",
		Group:       PatternRecognition,
		Description: "Inverted Hammer",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlkicking",
		Group:       PatternRecognition,
		Description: "Kicking",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlkickingbylength",
		Group:       PatternRecognition,
		Description: "Kicking - bull/bear determined by the longer marubozu",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlladderbottom",
		Group:       PatternRecognition,
		Description: "Ladder Bottom",
		Inputs:      ohlc,
	},
	{
		Name:        "cdllongleggeddoji",
		Group:       PatternRecognition,
		Description: "Long Legged Doji",
		Inputs:      ohlc,
	},
	{
		Name:        "cdllongline",
		Group:       PatternRecognition,
		Description: "Long Line Candle",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlmarubozu",
		Group:       PatternRecognition,
		Description: "Marubozu",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlmatchinglow",
		Group:       PatternRecognition,
		Description: "Matching Low",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlmathold",
		Group:       PatternRecognition,
		Description: "Mat Hold",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.5)},
	},
	{
		Name:        "cdlmorningdojistar",
		Group:       PatternRecognition,
		Description: "Morning Doji Star",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.3)},
	},
	{
		Name:        "cdlmorningstar",
		Group:       PatternRecognition,
		Description: "Morning Star",
		Inputs:      ohlc,
		Params:      []Param{penetration(0.3)},
	},
	{
		Name:        "cdlonneck",
		Group:       PatternRecognition,
		Description: "On-Neck Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlpiercing",
		Group:       PatternRecognition,
		Description: "Piercing Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlrickshawman",
		Group:       PatternRecognition,
		Description: "Rickshaw Man",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlrisefall3methods",
		Group:       PatternRecognition,
		Description: "Rising/Falling Three Methods",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlseparatinglines",
		Group:       PatternRecognition,
		Description: "Separating Lines",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlshootingstar",
		Group:       PatternRecognition,
		Description: "Shooting Star",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlshortline",
		Group:       PatternRecognition,
		Description: "Short Line Candle",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlspinningtop",
		Group:       PatternRecognition,
		Description: "Spinning Top",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlstalledpattern",
		Group:       PatternRecognition,
		Description: "Stalled Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlsticksandwich",
		Group:       PatternRecognition,
		Description: "Stick Sandwich",
		Inputs:      ohlc,
	},
	{
		Name:        "cdltakuri",
		Group:       PatternRecognition,
		Description: "Takuri (Dragonfly Doji with very long lower shadow)",
		Inputs:      ohlc,
	},
	{
		Name:        "cdltasukigap",
		Group:       PatternRecognition,
		Description: "Tasuki Gap",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlthrusting",
		Group:       PatternRecognition,
		Description: "Thrusting Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdltristar",
		Group:       PatternRecognition,
		Description: "Tristar Pattern",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlunique3river",
		Group:       PatternRecognition,
		Description: "Unique 3 River",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlupsidegap2crows",
		Group:       PatternRecognition,
		Description: "Upside Gap Two Crows",
		Inputs:      ohlc,
	},
	{
		Name:        "cdlxsidegap3methods",
		Group:       PatternRecognition,
		Description: "Upside/Downside Gap Three Methods",
		Inputs:      ohlc,
	},
}
