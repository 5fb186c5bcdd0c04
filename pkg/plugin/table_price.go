package plugin

var priceFunctions = []Function{
	{
		Name:        "avgprice",
		Group:       PriceTransform,
		Description: "Average Price",
		Inputs:      ohlc,
	},
	{
		Name:        "medprice",
		Group:       PriceTransform,
		Description: "Median Price",
		Inputs:      highLow,
	},
	{
		Name:        "typprice",
		Group:       PriceTransform,
		Description: "Typical Price",
		Inputs:      hlc,
	},
	{
		Name:        "wclprice",
		Group:       PriceTransform,
		Description: "Weighted Close Price",
		Inputs:      hlc,
	},
}
