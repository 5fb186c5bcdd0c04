package plugin

var volatilityFunctions = []Function{
	{
		Name:        "atr",
		Group:       VolatilityIndicators,
		Description: "Average True Range",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "natr",
		Group:       VolatilityIndicators,
		Description: "Normalized Average True Range",
		Inputs:      hlc,
		Params:      []Param{period("timeperiod", 14, 1)},
	},
	{
		Name:        "trange",
		Group:       VolatilityIndicators,
		Description: "True Range",
		Inputs:      hlc,
	},
}
