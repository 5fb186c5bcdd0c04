package plugin

var statisticFunctions = []Function{
	{
		Name:        "beta",
		Group:       StatisticFunctions,
		Description: "Beta",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 5, 1)},
	},
	{
		Name:        "correl",
		Group:       StatisticFunctions,
		Description: "Pearson's Correlation Coefficient (r)",
		Inputs:      highLow,
		Params:      []Param{period("timeperiod", 30, 1)},
	},
	{
		Name:        "linearreg",
		Group:       StatisticFunctions,
		Description: "Linear Regression",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "linearreg_angle",
		Group:       StatisticFunctions,
		Description: "Linear Regression Angle",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "linearreg_intercept",
		Group:       StatisticFunctions,
		Description: "Linear Regression Intercept",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "linearreg_slope",
		Group:       StatisticFunctions,
		Description: "Linear Regression Slope",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "stddev",
		Group:       StatisticFunctions,
		Description: "Standard Deviation",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 5, 2), realParam("nbdev", 1, -3e37, 3e37)},
	},
	{
		Name:        "tsf",
		Group:       StatisticFunctions,
		Description: "Time Series Forecast",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 14, 2)},
	},
	{
		Name:        "var",
		Group:       StatisticFunctions,
		Description: "Variance",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 5, 1), realParam("nbdev", 1, -3e37, 3e37)},
	},
}
