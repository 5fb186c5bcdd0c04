package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Cycle Indicators
// ------------------------------------------

// HTDCPeriod calculates Hilbert Transform - Dominant Cycle Period
func HTDCPeriod(opts ...Option) frame.Expr { return Expr("ht_dcperiod", opts...) }

// HTDCPhase calculates Hilbert Transform - Dominant Cycle Phase
func HTDCPhase(opts ...Option) frame.Expr { return Expr("ht_dcphase", opts...) }

// HTPhasor calculates Hilbert Transform - Phasor Components
// Fields: inphase, quadrature
func HTPhasor(opts ...Option) frame.Expr { return Expr("ht_phasor", opts...) }

// HTSine calculates Hilbert Transform - SineWave
// Fields: sine, leadsine
func HTSine(opts ...Option) frame.Expr { return Expr("ht_sine", opts...) }

// HTTrendMode calculates Hilbert Transform - Trend vs Cycle Mode
func HTTrendMode(opts ...Option) frame.Expr { return Expr("ht_trendmode", opts...) }
