package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Momentum Indicators
// ------------------------------------------

// ADX calculates Average Directional Movement Index
func ADX(opts ...Option) frame.Expr { return Expr("adx", opts...) }

// ADXR calculates Average Directional Movement Index Rating
func ADXR(opts ...Option) frame.Expr { return Expr("adxr", opts...) }

// APO calculates Absolute Price Oscillator
func APO(opts ...Option) frame.Expr { return Expr("apo", opts...) }

// Aroon calculates Aroon
// Fields: aroondown, aroonup
func Aroon(opts ...Option) frame.Expr { return Expr("aroon", opts...) }

// AroonOsc calculates Aroon Oscillator
func AroonOsc(opts ...Option) frame.Expr { return Expr("aroonosc", opts...) }

// BOP calculates Balance Of Power
func BOP(opts ...Option) frame.Expr { return Expr("bop", opts...) }

// CCI calculates Commodity Channel Index
func CCI(opts ...Option) frame.Expr { return Expr("cci", opts...) }

// CMO calculates Chande Momentum Oscillator
func CMO(opts ...Option) frame.Expr { return Expr("cmo", opts...) }

// DX calculates Directional Movement Index
func DX(opts ...Option) frame.Expr { return Expr("dx", opts...) }

// MACD calculates Moving Average Convergence/Divergence
// Fields: macd, macdsignal, macdhist
func MACD(opts ...Option) frame.Expr { return Expr("macd", opts...) }

// MACDExt calculates MACD with controllable MA type
// Fields: macd, macdsignal, macdhist
func MACDExt(opts ...Option) frame.Expr { return Expr("macdext", opts...) }

// MACDFix calculates Moving Average Convergence/Divergence Fix 12/26
// Fields: macd, macdsignal, macdhist
func MACDFix(opts ...Option) frame.Expr { return Expr("macdfix", opts...) }

// MFI calculates Money Flow Index
func MFI(opts ...Option) frame.Expr { return Expr("mfi", opts...) }

// MinusDI calculates Minus Directional Indicator
func MinusDI(opts ...Option) frame.Expr { return Expr("minus_di", opts...) }

// MinusDM calculates Minus Directional Movement
func MinusDM(opts ...Option) frame.Expr { return Expr("minus_dm", opts...) }

// Mom calculates Momentum
func Mom(opts ...Option) frame.Expr { return Expr("mom", opts...) }

// PlusDI calculates Plus Directional Indicator
func PlusDI(opts ...Option) frame.Expr { return Expr("plus_di", opts...) }

// PlusDM calculates Plus Directional Movement
func PlusDM(opts ...Option) frame.Expr { return Expr("plus_dm", opts...) }

// PPO calculates Percentage Price Oscillator
func PPO(opts ...Option) frame.Expr { return Expr("ppo", opts...) }

// ROC calculates Rate of change : ((price/prevPrice)-1)*100
func ROC(opts ...Option) frame.Expr { return Expr("roc", opts...) }

// ROCP calculates Rate of change Percentage: (price-prevPrice)/prevPrice
func ROCP(opts ...Option) frame.Expr { return Expr("rocp", opts...) }

// ROCR calculates Rate of change ratio: (price/prevPrice)
func ROCR(opts ...Option) frame.Expr { return Expr("rocr", opts...) }

// ROCR100 calculates Rate of change ratio 100 scale: (price/prevPrice)*100
func ROCR100(opts ...Option) frame.Expr { return Expr("rocr100", opts...) }

// RSI calculates Relative Strength Index
func RSI(opts ...Option) frame.Expr { return Expr("rsi", opts...) }

// Stoch calculates Stochastic
// Fields: slowk, slowd
func Stoch(opts ...Option) frame.Expr { return Expr("stoch", opts...) }

// StochF calculates Stochastic Fast
// Fields: fastk, fastd
func StochF(opts ...Option) frame.Expr { return Expr("stochf", opts...) }

// StochRSI calculates Stochastic Relative Strength Index
// Fields: fastk, fastd
func StochRSI(opts ...Option) frame.Expr { return Expr("stochrsi", opts...) }

// TRIX calculates 1-day Rate-Of-Change (ROC) of a Triple Smooth EMA
func TRIX(opts ...Option) frame.Expr { return Expr("trix", opts...) }

// UltOsc calculates Ultimate Oscillator
func UltOsc(opts ...Option) frame.Expr { return Expr("ultosc", opts...) }

// WillR calculates Williams' %R
func WillR(opts ...Option) frame.Expr { return Expr("willr", opts...) }
