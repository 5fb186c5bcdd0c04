package plugin

var momentumFunctions = []Function{
	{
		Name:        "adx",
		Group:       MomentumIndicators,
		Description: "Average Directional Movement Index",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "adxr",
		Group:       MomentumIndicators,
		Description: "Average Directional Movement Index Rating",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "apo",
		Group:       MomentumIndicators,
		Description: "Absolute Price Oscillator",
		Inputs:      closeOnly,
		Params:      []Param{period("fastperiod", 12, 2), period("slowperiod", 26, 2), maType("matype")},
	},
	{
		Name:        "aroon",
		Group:       MomentumIndicators,
		Description: "Aroon",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 14, 2)},
		Outputs:     []string{"aroondown", "aroonup"},
	},
	{
		Name:        "aroonosc",
		Group:       MomentumIndicators,
		Description: "Aroon Oscillator",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "bop",
		Group:       MomentumIndicators,
		Description: "Balance Of Power",
		Inputs:      ohlc,
	},
	{
		Name:        "cci",
		Group:       MomentumIndicators,
		Description: "Commodity Channel Index",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "cmo",
		Group:       MomentumIndicators,
		Description: "Chande Momentum Oscillator",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "dx",
		Group:       MomentumIndicators,
		Description: "Directional Movement Index",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "macd",
		Group:       MomentumIndicators,
		Description: "Moving Average Convergence/Divergence",
		Inputs:      closeOnly,
		Params: []Param{
			period("fastperiod", 12, 2),
			period("slowperiod", 26, 2),
			period("signalperiod", 9, 1),
		},
		Outputs: []string{"macd", "macdsignal", "macdhist"},
	},
	{
		Name:        "macdext",
		Group:       MomentumIndicators,
		Description: "MACD with controllable MA type",
		Inputs:      closeOnly,
		Params: []Param{
			period("fastperiod", 12, 2),
			maType("fastmatype"),
			period("slowperiod", 26, 2),
			maType("slowmatype"),
			period("signalperiod", 9, 1),
			maType("signalmatype"),
		},
		Outputs: []string{"macd", "macdsignal", "macdhist"},
	},
	{
		Name:        "macdfix",
		Group:       MomentumIndicators,
		Description: "Moving Average Convergence/Divergence Fix 12/26",
		Inputs:      closeOnly,
		Params:      []Param{period("signalperiod", 9, 1)},
		Outputs:     []string{"macd", "macdsignal", "macdhist"},
	},
	{
		Name:        "mfi",
		Group:       MomentumIndicators,
		Description: "Money Flow Index",
		Inputs:      hlcv,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "minus_di",
		Group:       MomentumIndicators,
		Description: "Minus Directional Indicator",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "minus_dm",
		Group:       MomentumIndicators,
		Description: "Minus Directional Movement",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "mom",
		Group:       MomentumIndicators,
		Description: "Momentum",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 10, 1)},
	},
	{
		Name:        "plus_di",
		Group:       MomentumIndicators,
		Description: "Plus Directional Indicator",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "plus_dm",
		Group:       MomentumIndicators,
		Description: "Plus Directional Movement",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "ppo",
		Group:       MomentumIndicators,
		Description: "Percentage Price Oscillator",
		Inputs:      closeOnly,
		Params:      []Param{period("fastperiod", 12, 2), period("slowperiod", 26, 2), maType("matype")},
	},
	{
		Name:        "roc",
		Group:       MomentumIndicators,
		Description: "Rate of change : ((price/prevPrice)-1)*100",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 10, 1)},
	},
	{
		Name:        "rocp",
		Group:       MomentumIndicators,
		Description: "Rate of change Percentage: (price-prevPrice)/prevPrice",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 10, 1)},
	},
	{
		Name:        "rocr",
		Group:       MomentumIndicators,
		Description: "Rate of change ratio: (price/prevPrice)",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 10, 1)},
	},
	{
		Name:        "rocr100",
		Group:       MomentumIndicators,
		Description: "Rate of change ratio 100 scale: (price/prevPrice)*100",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 10, 1)},
	},
	{
		Name:        "rsi",
		Group:       MomentumIndicators,
		Description: "Relative Strength Index",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "stoch",
		Group:       MomentumIndicators,
		Description: "Stochastic",
		Inputs:      hlc,
		Params: []Param{
			period("fastk_period", 5, 1),
			period("slowk_period", 3, 1),
			maType("slowk_matype"),
			period("slowd_period", 3, 1),
			maType("slowd_matype"),
		},
		Outputs: []string{"slowk", "slowd"},
	},
	{
		Name:        "stochf",
		Group:       MomentumIndicators,
		Description: "Stochastic Fast",
		Inputs:      hlc,
		Params: []Param{
			period("fastk_period", 5, 1),
			period("fastd_period", 3, 1),
			maType("fastd_matype"),
		},
		Outputs: []string{"fastk", "fastd"},
	},
	{
		Name:        "stochrsi",
		Group:       MomentumIndicators,
		Description: "Stochastic Relative Strength Index",
		Inputs:      closeOnly,
		Params: []Param{
			period("timeperiod", 14, 2),
			period("fastk_period", 5, 1),
			period("fastd_period", 3, 1),
			maType("fastd_matype"),
		},
		Outputs: []string{"fastk", "fastd"},
	},
	{
		Name:        "trix",
		Group:       MomentumIndicators,
		Description: "1-day Rate-Of-Change (ROC) of a Triple Smooth EMA",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 1)},
	},
	{
		Name:        "ultosc",
		Group:       MomentumIndicators,
		Description: "Ultimate Oscillator",
		Inputs:      hlc,
		Params: []Param{
			period("timeperiod1", 7, 1),
			period("timeperiod2", 14, 1),
			period("timeperiod3", 28, 1),
		},
	},
	{
		Name:        "willr",
		Group:       MomentumIndicators,
		Description: "Williams' %R",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
}
