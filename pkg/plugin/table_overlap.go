package plugin

var overlapFunctions = []Function{
	{
		Name:        "bbands",
		Group:       OverlapStudies,
		Description: "Bollinger Bands",
		Inputs:      closeOnly,
		Params: []Param{
			period("timeperiod", 5, 2),
			realParam("nbdevup", 2.0, -3e37, 3e37),
			realParam("nbdevdn", 2.0, -3e37, 3e37),
			maType("matype"),
		},
		Outputs: []string{"upperband", "middleband", "lowerband"},
	},
	{
		Name:        "dema",
		Group:       OverlapStudies,
		Description: "Double Exponential Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "ema",
		Group:       OverlapStudies,
		Description: "Exponential Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "ht_trendline",
		Group:       OverlapStudies,
		Description: "Hilbert Transform - Instantaneous Trendline",
		Inputs:      closeOnly,
	},
	{
		Name:        "kama",
		Group:       OverlapStudies,
		Description: "Kaufman Adaptive Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "ma",
		Group:       OverlapStudies,
		Description: "Moving average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 1), maType("matype")},
	},
	{
		Name:        "mama",
		Group:       OverlapStudies,
		Description: "MESA Adaptive Moving Average",
		Inputs:      closeOnly,
		Params: []Param{
			realParam("fastlimit", 0.5, 0.01, 0.99),
			realParam("slowlimit", 0.05, 0.01, 0.99),
		},
		Outputs: []string{"mama", "fama"},
	},
	{
		Name:        "mavp",
		Group:       OverlapStudies,
		Description: "Moving average with variable period",
		Inputs:      closePeriods,
		Params:      []Param{period("minperiod", 2, 2), period("maxperiod", 30, 2), maType("matype")},
	},
	{
		Name:        "midpoint",
		Group:       OverlapStudies,
		Description: "MidPoint over period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "midprice",
		Group:       OverlapStudies,
		Description: "Midpoint Price over period",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "sar",
		Group:       OverlapStudies,
		Description: "Parabolic SAR",
		Inputs:      highLow,
		Params: []Param{
			realParam("acceleration", 0.02, 0, 3e37),
			realParam("maximum", 0.2, 0, 3e37),
		},
	},
	{
		Name:        "sarext",
		Group:       OverlapStudies,
		Description: "Parabolic SAR - Extended",
		Inputs:      highLow,
		Params: []Param{
			realParam("startvalue", 0, -3e37, 3e37),
			realParam("offsetonreverse", 0, 0, 3e37),
			realParam("accelerationinitlong", 0.02, 0, 3e37),
			realParam("accelerationlong", 0.02, 0, 3e37),
			realParam("accelerationmaxlong", 0.2, 0, 3e37),
			realParam("accelerationinitshort", 0.02, 0, 3e37),
			realParam("accelerationshort", 0.02, 0, 3e37),
			realParam("accelerationmaxshort", 0.2, 0, 3e37),
		},
	},
	{
		Name:        "sma",
		Group:       OverlapStudies,
		Description: "Simple Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "t3",
		Group:       OverlapStudies,
		Description: "Triple Exponential Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 5, 2), realParam("vfactor", 0.7, 0, 1)},
	},
	{
		Name:        "tema",
		Group:       OverlapStudies,
		Description: "Triple Exponential Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "trima",
		Group:       OverlapStudies,
		Description: "Triangular Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "wma",
		Group:       OverlapStudies,
		Description: "Weighted Moving Average",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
}
