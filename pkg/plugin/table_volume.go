package plugin

var volumeFunctions = []Function{
	{
		Name:        "ad",
		Group:       VolumeIndicators,
		Description: "Chaikin A/D Line",
		Inputs:      hlcv,
	},
	{
		Name:        "adosc",
		Group:       VolumeIndicators,
		Description: "Chaikin A/D Oscillator",
		Inputs:      hlcv,
		Params:      []Param{period("fastperiod", 3, 2), period("slowperiod", 10, 2)},
	},
	{
		Name:        "obv",
		Group:       VolumeIndicators,
		Description: "On Balance Volume",
		Inputs:      closeVolume,
	},
}
