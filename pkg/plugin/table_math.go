package plugin

var mathOperatorsFunctions = []Function{
	{
		Name:        "add",
		Group:       MathOperators,
		Description: "Vector Arithmetic Add",
		Inputs:      highLow,
	},
	{
		Name:        "div",
		Group:       MathOperators,
		Description: "Vector Arithmetic Div",
		Inputs:      highLow,
	},
	{
		Name:        "max",
		Group:       MathOperators,
		Description: "Highest value over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "maxindex",
		Group:       MathOperators,
		Description: "Index of highest value over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "min",
		Group:       MathOperators,
		Description: "Lowest value over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "minindex",
		Group:       MathOperators,
		Description: "Index of lowest value over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
	{
		Name:        "minmax",
		Group:       MathOperators,
		Description: "Lowest and highest values over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
		Outputs:     []string{"min", "max"},
	},
	{
		Name:        "minmaxindex",
		Group:       MathOperators,
		Description: "Indexes of lowest and highest values over a specified period",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
		Outputs:     []string{"minidx", "maxidx"},
	},
	{
		Name:        "mult",
		Group:       MathOperators,
		Description: "Vector Arithmetic Mult",
		Inputs:      highLow,
	},
	{
		Name:        "sub",
		Group:       MathOperators,
		Description: "Vector Arithmetic Substraction",
		Inputs:      highLow,
	},
	{
		Name:        "sum",
		Group:       MathOperators,
		Description: "Summation",
		Inputs:      closeOnly,
		Params:      []Param{period("timeperiod", 30, 2)},
	},
}

var mathTransformFunctions = []Function{
	{
		Name:        "acos",
		Group:       MathTransform,
		Description: "Vector Trigonometric ACos",
		Inputs:      closeOnly,
	},
	{
		Name:        "asin",
		Group:       MathTransform,
		Description: "Vector Trigonometric ASin",
		Inputs:      closeOnly,
	},
	{
		Name:        "atan",
		Group:       MathTransform,
		Description: "Vector Trigonometric ATan",
		Inputs:      closeOnly,
	},
	{
		Name:        "ceil",
		Group:       MathTransform,
		Description: "Vector Ceil",
		Inputs:      closeOnly,
	},
	{
		Name:        "cos",
		Group:       MathTransform,
		Description: "Vector Trigonometric Cos",
		Inputs:      closeOnly,
	},
	{
		Name:        "cosh",
		Group:       MathTransform,
		Description: "Vector Trigonometric Cosh",
		Inputs:      closeOnly,
	},
	{
		Name:        "exp",
		Group:       MathTransform,
		Description: "Vector Arithmetic Exp",
		Inputs:      closeOnly,
	},
	{
		Name:        "floor",
		Group:       MathTransform,
		Description: "Vector Floor",
		Inputs:      closeOnly,
	},
	{
		Name:        "ln",
		Group:       MathTransform,
		Description: "Vector Log Natural",
		Inputs:      closeOnly,
	},
	{
		Name:        "log10",
		Group:       MathTransform,
		Description: "Vector Log10",
		Inputs:      closeOnly,
	},
	{
		Name:        "sin",
		Group:       MathTransform,
		Description: "Vector Trigonometric Sin",
		Inputs:      closeOnly,
	},
	{
		Name:        "sinh",
		Group:       MathTransform,
		Description: "Vector Trigonometric Sinh",
		Inputs:      closeOnly,
	},
	{
		Name:        "sqrt",
		Group:       MathTransform,
		Description: "Vector Square Root",
		Inputs:      closeOnly,
	},
	{
		Name:        "tan",
		Group:       MathTransform,
		Description: "Vector Trigonometric Tan",
		Inputs:      closeOnly,
	},
	{
		Name:        "tanh",
		Group:       MathTransform,
		Description: "Vector Trigonometric Tanh",
		Inputs:      closeOnly,
	},
}
