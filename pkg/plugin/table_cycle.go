package plugin

var cycleFunctions = []Function{
	{
		Name:        "ht_dcperiod",
		Group:       CycleIndicators,
		Description: "Hilbert Transform - Dominant Cycle Period",
		Inputs:      closeOnly,
	},
	{
		Name:        "ht_dcphase",
		Group:       CycleIndicators,
		Description: "Hilbert Transform - Dominant Cycle Phase",
		Inputs:      closeOnly,
	},
	{
		Name:        "ht_phasor",
		Group:       CycleIndicators,
		Description: "Hilbert Transform - Phasor Components",
		Inputs:      closeOnly,
		Outputs:     []string{"inphase", "quadrature"},
	},
	{
		Name:        "ht_sine",
		Group:       CycleIndicators,
		Description: "Hilbert Transform - SineWave",
		Inputs:      closeOnly,
		Outputs:     []string{"sine", "leadsine"},
	},
	{
		Name:        "ht_trendmode",
		Group:       CycleIndicators,
		Description: "Hilbert Transform - Trend vs Cycle Mode",
		Inputs:      closeOnly,
	},
}
