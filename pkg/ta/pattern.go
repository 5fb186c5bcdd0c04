package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Pattern Recognition
// ------------------------------------------

// CDL2Crows recognizes Two Crows
func CDL2Crows(opts ...Option) frame.Expr { return Expr("cdl2crows", opts...) }

// CDL3BlackCrows recognizes Three Black Crows
func CDL3BlackCrows(opts ...Option) frame.Expr { return Expr("cdl3blackcrows", opts...) }

// CDL3Inside recognizes Three Inside Up/Down
func CDL3Inside(opts ...Option) frame.Expr { return Expr("cdl3inside", opts...) }

// CDL3LineStrike recognizes Three-Line Strike
func CDL3LineStrike(opts ...Option) frame.Expr { return Expr("cdl3linestrike", opts...) }

// CDL3Outside recognizes Three Outside Up/Down
func CDL3Outside(opts ...Option) frame.Expr { return Expr("cdl3outside", opts...) }

// CDL3StarsInSouth recognizes Three Stars In The South
func CDL3StarsInSouth(opts ...Option) frame.Expr { return Expr("cdl3starsinsouth", opts...) }

// CDL3WhiteSoldiers recognizes Three Advancing White Soldiers
func CDL3WhiteSoldiers(opts ...Option) frame.Expr { return Expr("cdl3whitesoldiers", opts...) }

// CDLAbandonedBaby recognizes Abandoned Baby
func CDLAbandonedBaby(opts ...Option) frame.Expr { return Expr("cdlabandonedbaby", opts...) }

// CDLAdvanceBlock recognizes Advance Block
func CDLAdvanceBlock(opts ...Option) frame.Expr { return Expr("cdladvanceblock", opts...) }

// CDLBeltHold recognizes Belt-hold
func CDLBeltHold(opts ...Option) frame.Expr { return Expr("cdlbelthold", opts...) }

// CDLBreakaway recognizes Breakaway
func CDLBreakaway(opts ...Option) frame.Expr { return Expr("cdlbreakaway", opts...) }

// CDLClosingMarubozu recognizes Closing Marubozu
func CDLClosingMarubozu(opts ...Option) frame.Expr { return Expr("cdlclosingmarubozu", opts...) }

// CDLConcealBabySwall recognizes Concealing Baby Swallow
func CDLConcealBabySwall(opts ...Option) frame.Expr { return Expr("cdlconcealbabyswall", opts...) }

// CDLCounterAttack recognizes Counterattack
func CDLCounterAttack(opts ...Option) frame.Expr { return Expr("cdlcounterattack", opts...) }

// CDLDarkCloudCover recognizes Dark Cloud Cover
func CDLDarkCloudCover(opts ...Option) frame.Expr { return Expr("cdldarkcloudcover", opts...) }

// CDLDoji recognizes Doji
func CDLDoji(opts ...Option) frame.Expr { return Expr("cdldoji", opts...) }

// CDLDojiStar recognizes Doji Star
func CDLDojiStar(opts ...Option) frame.Expr { return Expr("cdldojistar", opts...) }

// CDLDragonflyDoji recognizes Dragonfly Doji
func CDLDragonflyDoji(opts ...Option) frame.Expr { return Expr("cdldragonflydoji", opts...) }

// CDLEngulfing recognizes Engulfing Pattern
func CDLEngulfing(opts ...Option) frame.Expr { return Expr("cdlengulfing", opts...) }

// CDLEveningDojiStar recognizes Evening Doji Star
func CDLEveningDojiStar(opts ...Option) frame.Expr { return Expr("cdleveningdojistar", opts...) }

// CDLEveningStar recognizes Evening Star
func CDLEveningStar(opts ...Option) frame.Expr { return Expr("cdleveningstar", opts...) }

// CDLGapSideSideWhite recognizes Up/Down-gap side-by-side white lines
func CDLGapSideSideWhite(opts ...Option) frame.Expr { return Expr("cdlgapsidesidewhite", opts...) }

// CDLGravestoneDoji recognizes Gravestone Doji
func CDLGravestoneDoji(opts ...Option) frame.Expr { return Expr("cdlgravestonedoji", opts...) }

// CDLHammer recognizes Hammer
func CDLHammer(opts ...Option) frame.Expr { return Expr("cdlhammer", opts...) }

// CDLHangingMan recognizes Hanging Man
func CDLHangingMan(opts ...Option) frame.Expr { return Expr("cdlhangingman", opts...) }

// CDLHarami recognizes Harami Pattern
func CDLHarami(opts ...Option) frame.Expr { return Expr("cdlharami", opts...) }

// CDLHaramiCross recognizes Harami Cross Pattern
func CDLHaramiCross(opts ...Option) frame.Expr { return Expr("cdlharamicross", opts...) }

// CDLHighWave recognizes High-Wave Candle
func CDLHighWave(opts ...Option) frame.Expr { return Expr("cdlhighwave", opts...) }

// CDLHikkake recognizes Hikkake Pattern
func CDLHikkake(opts ...Option) frame.Expr { return Expr("cdlhikkake", opts...) }

// CDLHikkakeMod recognizes Modified Hikkake Pattern
func CDLHikkakeMod(opts ...Option) frame.Expr { return Expr("cdlhikkakemod", opts...) }

// CDLHomingPigeon recognizes Homing Pigeon
func CDLHomingPigeon(opts ...Option) frame.Expr { return Expr("cdlhomingpigeon", opts...) }

// CDLIdentical3Crows recognizes Identical Three Crows
func CDLIdentical3Crows(opts ...Option) frame.Expr { return Expr("cdlidentical3crows", opts...) }

// CDLInNeck recognizes In-Neck Pattern
func CDLInNeck(opts ...Option) frame.Expr { return Expr("cdlinneck", opts...) }

// CDLInvertedHammer recognizes Inverted Hammer
func CDLInvertedHammer(opts ...Option) frame.Expr { return Expr("cdlinvertedhammer", opts...) }

// CDLKicking recognizes Kicking
func CDLKicking(opts ...Option) frame.Expr { return Expr("cdlkicking", opts...) }

// CDLKickingByLength recognizes Kicking - bull/bear determined by the longer marubozu
func CDLKickingByLength(opts ...Option) frame.Expr { return Expr("cdlkickingbylength", opts...) }

// CDLLadderBottom recognizes Ladder Bottom
func CDLLadderBottom(opts ...Option) frame.Expr { return Expr("cdlladderbottom", opts...) }

// CDLLongLeggedDoji recognizes Long Legged Doji
func CDLLongLeggedDoji(opts ...Option) frame.Expr { return Expr("cdllongleggeddoji", opts...) }

// CDLLongLine recognizes Long Line Candle
func CDLLongLine(opts ...Option) frame.Expr { return Expr("cdllongline", opts...) }

// CDLMarubozu recognizes Marubozu
func CDLMarubozu(opts ...Option) frame.Expr { return Expr("cdlmarubozu", opts...) }

// CDLMatchingLow recognizes Matching Low
func CDLMatchingLow(opts ...Option) frame.Expr { return Expr("cdlmatchinglow", opts...) }

// CDLMatHold recognizes Mat Hold
func CDLMatHold(opts ...Option) frame.Expr { return Expr("cdlmathold", opts...) }

// CDLMorningDojiStar recognizes Morning Doji Star
func CDLMorningDojiStar(opts ...Option) frame.Expr { return Expr("cdlmorningdojistar", opts...) }

// CDLMorningStar recognizes Morning Star
func CDLMorningStar(opts ...Option) frame.Expr { return Expr("cdlmorningstar", opts...) }

// CDLOnNeck recognizes On-Neck Pattern
func CDLOnNeck(opts ...Option) frame.Expr { return Expr("cdlonneck", opts...) }

// CDLPiercing recognizes Piercing Pattern
func CDLPiercing(opts ...Option) frame.Expr { return Expr("cdlpiercing", opts...) }

// CDLRickshawMan recognizes Rickshaw Man
func CDLRickshawMan(opts ...Option) frame.Expr { return Expr("cdlrickshawman", opts...) }

// CDLRiseFall3Methods recognizes Rising/Falling Three Methods
func CDLRiseFall3Methods(opts ...Option) frame.Expr { return Expr("cdlrisefall3methods", opts...) }

// CDLSeparatingLines recognizes Separating Lines
func CDLSeparatingLines(opts ...Option) frame.Expr { return Expr("cdlseparatinglines", opts...) }

// CDLShootingStar recognizes Shooting Star
func CDLShootingStar(opts ...Option) frame.Expr { return Expr("cdlshootingstar", opts...) }

// CDLShortLine recognizes Short Line Candle
func CDLShortLine(opts ...Option) frame.Expr { return Expr("cdlshortline", opts...) }

// CDLSpinningTop recognizes Spinning Top
func CDLSpinningTop(opts ...Option) frame.Expr { return Expr("cdlspinningtop", opts...) }

// CDLStalledPattern recognizes Stalled Pattern
func CDLStalledPattern(opts ...Option) frame.Expr { return Expr("cdlstalledpattern", opts...) }

// CDLStickSandwich recognizes Stick Sandwich
func CDLStickSandwich(opts ...Option) frame.Expr { return Expr("cdlsticksandwich", opts...) }

// CDLTakuri recognizes Takuri (Dragonfly Doji with very long lower shadow)
func CDLTakuri(opts ...Option) frame.Expr { return Expr("cdltakuri", opts...) }

// CDLTasukiGap recognizes Tasuki Gap
func CDLTasukiGap(opts ...Option) frame.Expr { return Expr("cdltasukigap", opts...) }

// CDLThrusting recognizes Thrusting Pattern
func CDLThrusting(opts ...Option) frame.Expr { return Expr("cdlthrusting", opts...) }

// CDLTristar recognizes Tristar Pattern
func CDLTristar(opts ...Option) frame.Expr { return Expr("cdltristar", opts...) }

// CDLUnique3River recognizes Unique 3 River
func CDLUnique3River(opts ...Option) frame.Expr { return Expr("cdlunique3river", opts...) }

// CDLUpsideGap2Crows recognizes Upside Gap Two Crows
func CDLUpsideGap2Crows(opts ...Option) frame.Expr { return Expr("cdlupsidegap2crows", opts...) }

// CDLXSideGap3Methods recognizes Upside/Downside Gap Three Methods
func CDLXSideGap3Methods(opts ...Option) frame.Expr { return Expr("cdlxsidegap3methods", opts...) }
