package catalog

import "github.com/pattern-mastery/backend/internal/models"

// SeedPatterns is the static candlestick pattern catalog. Inert reference
// data: the mastery core only ever checks pattern IDs against it.
var SeedPatterns = []models.Pattern{
	{
		ID:         "hammer",
		Name:       "Hammer",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBullish,
		Meaning:    "A bullish reversal pattern that appears after a downtrend, showing strong buying pressure at lower prices.",
		KeyRules: []string{
			"Small real body at the top",
			"Long lower wick (2-3x body size)",
			"Little or no upper wick",
			"Appears after a downtrend",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Stock trading near lows",
			"Strong rejection of lower prices",
			"Buyer accumulation signal",
		},
		ActionProtocol:   "Wait for confirmation (close above the body). Buy on the next candle if confirmed. Place stop loss below the hammer's low.",
		RealWorldContext: "Often signals a potential reversal when support is found. Commonly seen at market bottoms.",
		Confusions:       []string{"Hanging man looks similar but is bearish"},
		QuickTest: &models.QuickTest{
			Question: "What distinguishes a Hammer from a Hanging Man?",
			Options: []string{
				"The location in the trend (hammer after downtrend, hanging man after uptrend)",
				"The size of the real body",
				"The length of the upper wick",
				"The color of the candle",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Hammers form after a downtrend and are bullish; Hanging Men form after an uptrend and are bearish.",
		},
		CandleGlyph: "M4 2v6M2 8h4v6h-4z",
	},
	{
		ID:         "hanging-man",
		Name:       "Hanging Man",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBearish,
		Meaning:    "A bearish reversal pattern that appears after an uptrend, signaling potential weakness despite the higher close.",
		KeyRules: []string{
			"Small real body at the top",
			"Long lower wick (2-3x body size)",
			"Little or no upper wick",
			"Appears after an uptrend",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Stock near highs",
			"Potential reversal signal",
			"Selling pressure below",
		},
		ActionProtocol:   "Wait for confirmation with a bearish candle. Short on confirmation or take profits on long positions. Place stop loss above the pattern.",
		RealWorldContext: "Signals potential exhaustion of an uptrend. Look for confirmation before acting.",
		Confusions:       []string{"Hammer looks identical but appears in downtrend"},
		QuickTest: &models.QuickTest{
			Question: "What makes a Hanging Man bearish despite its similar appearance to a Hammer?",
			Options: []string{
				"Its position after an uptrend",
				"The color of the candle",
				"The length of the wicks",
				"The volume on that day",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Context is crucial: the same shape is bullish after a downtrend (Hammer) and bearish after an uptrend (Hanging Man).",
		},
		CandleGlyph: "M4 2h4v6h-4zM6 8v6",
	},
	{
		ID:         "shooting-star",
		Name:       "Shooting Star",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBearish,
		Meaning:    "A bearish reversal pattern with a small body at the bottom and a long upper wick, indicating rejection of higher prices.",
		KeyRules: []string{
			"Small real body at the bottom",
			"Long upper wick (2-3x body size)",
			"Little or no lower wick",
			"Appears after an uptrend",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Failed breakout attempt",
			"Rejection at resistance",
			"Sellers overwhelming buyers intraday",
		},
		ActionProtocol:   "Confirm with a bearish close on the next candle. Exit longs or enter shorts; stop above the star's high.",
		RealWorldContext: "Frequent at resistance levels after extended rallies, where late buyers get trapped.",
		Confusions:       []string{"Inverted hammer has the same shape but is bullish after a downtrend"},
		QuickTest: &models.QuickTest{
			Question: "Where must a Shooting Star appear to be valid?",
			Options: []string{
				"After an uptrend, near resistance",
				"After a downtrend, near support",
				"Anywhere in a ranging market",
				"Only at all-time highs",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The long upper wick only signals rejection of higher prices when there was an uptrend pushing into them.",
		},
	},
	{
		ID:         "inverted-hammer",
		Name:       "Inverted Hammer",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBullish,
		Meaning:    "A bullish reversal candidate after a downtrend: buyers tested higher prices even though the close settled back down.",
		KeyRules: []string{
			"Small real body at the bottom",
			"Long upper wick",
			"Little or no lower wick",
			"Appears after a downtrend",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Downtrend losing momentum",
			"Early sign of buying interest",
		},
		ActionProtocol:   "Requires strong confirmation: a bullish close above the inverted hammer's body. Stop below the pattern's low.",
		RealWorldContext: "Weaker signal than the hammer; many traders wait two candles for confirmation.",
		Confusions:       []string{"Shooting star is the same shape in an uptrend"},
		QuickTest: &models.QuickTest{
			Question: "Why does an Inverted Hammer need confirmation more than a regular Hammer?",
			Options: []string{
				"The close near the low shows buyers failed to hold their gains",
				"It only appears on low volume",
				"Its body is always larger",
				"It cannot appear at support",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The intraday rally was sold off, so follow-through buying must be proven before acting.",
		},
	},
	{
		ID:         "doji",
		Name:       "Doji",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryNeutral,
		Meaning:    "Indecision: open and close are virtually equal, with wicks on both sides. Neither buyers nor sellers won the session.",
		KeyRules: []string{
			"Open and close virtually equal",
			"Wicks on both sides",
			"Context determines significance",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Pause inside a strong trend",
			"Potential turning point at support or resistance",
		},
		ActionProtocol:   "Do not trade the doji itself. Wait for the next candle to break the doji's range and trade in that direction.",
		RealWorldContext: "A doji after a long rally is a caution sign; in a quiet range it means nothing.",
		Confusions:       []string{"Spinning top has a small body rather than none"},
		QuickTest: &models.QuickTest{
			Question: "What does a Doji fundamentally represent?",
			Options: []string{
				"Indecision between buyers and sellers",
				"Guaranteed trend reversal",
				"Strong buying pressure",
				"Low trading volume",
			},
			CorrectOptionIndex: 0,
			Explanation:        "With open equal to close, neither side controlled the session; the next candle decides.",
		},
	},
	{
		ID:         "dragonfly-doji",
		Name:       "Dragonfly Doji",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBullish,
		Meaning:    "A doji with a long lower wick and no upper wick: sellers drove price down but buyers reclaimed the entire range by the close.",
		KeyRules: []string{
			"Open, high, and close at nearly the same level",
			"Long lower wick",
			"No meaningful upper wick",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Rejection of lower prices at support",
			"Downtrend exhaustion",
		},
		ActionProtocol:   "Bullish at support with confirmation. Stop below the wick's low.",
		RealWorldContext: "Strongest when the lower wick probes below a known support level and recovers.",
		Confusions:       []string{"Hammer has a small body; dragonfly doji has essentially none"},
		QuickTest: &models.QuickTest{
			Question: "What does the long lower wick of a Dragonfly Doji show?",
			Options: []string{
				"Complete rejection of lower prices",
				"Sellers in control at the close",
				"A gap in trading",
				"Low liquidity",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Price fell hard intraday but closed back at the open, showing buyers absorbed all the selling.",
		},
	},
	{
		ID:         "gravestone-doji",
		Name:       "Gravestone Doji",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBearish,
		Meaning:    "A doji with a long upper wick and no lower wick: buyers pushed price up but sellers erased the entire advance by the close.",
		KeyRules: []string{
			"Open, low, and close at nearly the same level",
			"Long upper wick",
			"No meaningful lower wick",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Rejection at resistance",
			"Uptrend exhaustion",
		},
		ActionProtocol:   "Bearish at resistance with confirmation. Stop above the wick's high.",
		RealWorldContext: "The mirror image of the dragonfly; most meaningful after a sustained advance.",
		QuickTest: &models.QuickTest{
			Question: "A Gravestone Doji closing at its low after an uptrend suggests what?",
			Options: []string{
				"Sellers rejected all higher prices",
				"Buyers remain in full control",
				"The trend will continue",
				"A gap up is imminent",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The entire intraday rally was sold into, leaving the close back at the open.",
		},
	},
	{
		ID:         "bullish-engulfing",
		Name:       "Bullish Engulfing",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBullish,
		Meaning:    "A two-candle reversal where a large bullish body completely engulfs the prior bearish body, showing a decisive shift to buyers.",
		KeyRules: []string{
			"First candle bearish, second bullish",
			"Second body completely engulfs the first body",
			"Appears after a downtrend",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Sharp reversal off support",
			"Shakeout followed by strong buying",
		},
		ActionProtocol:   "Enter on the close of the engulfing candle or on a retest of its midpoint. Stop below the pattern's low.",
		RealWorldContext: "One of the more reliable two-candle reversals, especially on elevated volume.",
		Confusions:       []string{"Piercing line only penetrates the prior body, it does not engulf it"},
		QuickTest: &models.QuickTest{
			Question: "What must the second candle of a Bullish Engulfing do?",
			Options: []string{
				"Completely engulf the previous candle's real body",
				"Close exactly at the previous high",
				"Gap up and stay above",
				"Have no lower wick",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Full engulfment of the prior real body is the defining requirement of the pattern.",
		},
	},
	{
		ID:         "bearish-engulfing",
		Name:       "Bearish Engulfing",
		Difficulty: models.DifficultyBeginner,
		Category:   models.CategoryBearish,
		Meaning:    "A two-candle reversal where a large bearish body completely engulfs the prior bullish body, showing a decisive shift to sellers.",
		KeyRules: []string{
			"First candle bullish, second bearish",
			"Second body completely engulfs the first body",
			"Appears after an uptrend",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Failed breakout reversed hard",
			"Distribution at resistance",
		},
		ActionProtocol:   "Exit longs or enter shorts on the close. Stop above the pattern's high.",
		RealWorldContext: "Watch for it after parabolic moves; it often marks the start of a deeper pullback.",
		QuickTest: &models.QuickTest{
			Question: "Where is a Bearish Engulfing pattern meaningful?",
			Options: []string{
				"After an uptrend",
				"After a downtrend",
				"Only in sideways markets",
				"Only on weekly charts",
			},
			CorrectOptionIndex: 0,
			Explanation:        "A reversal pattern needs a trend to reverse; bearish engulfing reverses an advance.",
		},
	},
	{
		ID:         "morning-star",
		Name:       "Morning Star",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBullish,
		Meaning:    "A three-candle bottom: a strong bearish candle, a small-bodied pause, then a strong bullish candle closing deep into the first body.",
		KeyRules: []string{
			"First candle strongly bearish",
			"Second candle small-bodied (the star)",
			"Third candle closes above the midpoint of the first",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Capitulation followed by stabilization and recovery",
			"Major support holding",
		},
		ActionProtocol:   "Enter on the third candle's close. Stop below the star's low.",
		RealWorldContext: "A classic bottoming structure; the star often forms on a gap in liquid markets.",
		Confusions:       []string{"Evening star is the bearish mirror image"},
		QuickTest: &models.QuickTest{
			Question: "What does the middle candle of a Morning Star represent?",
			Options: []string{
				"Indecision as selling pressure fades",
				"Continuation of the downtrend",
				"A failed rally",
				"Guaranteed reversal",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The small star shows the downtrend stalling before buyers take over on candle three.",
		},
	},
	{
		ID:         "evening-star",
		Name:       "Evening Star",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBearish,
		Meaning:    "A three-candle top: a strong bullish candle, a small-bodied pause, then a strong bearish candle closing deep into the first body.",
		KeyRules: []string{
			"First candle strongly bullish",
			"Second candle small-bodied (the star)",
			"Third candle closes below the midpoint of the first",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Euphoric rally stalling at highs",
			"Resistance rejecting a breakout",
		},
		ActionProtocol:   "Exit longs or enter shorts on the third candle's close. Stop above the star's high.",
		RealWorldContext: "The bearish mirror of the morning star; common at the end of news-driven spikes.",
		QuickTest: &models.QuickTest{
			Question: "The third candle of an Evening Star must do what?",
			Options: []string{
				"Close below the midpoint of the first candle",
				"Gap above the star",
				"Be a doji",
				"Close at a new high",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The deep bearish close into the first body confirms sellers have taken control.",
		},
	},
	{
		ID:         "three-white-soldiers",
		Name:       "Three White Soldiers",
		Difficulty: models.DifficultyAdvanced,
		Category:   models.CategoryBullish,
		Meaning:    "Three consecutive strong bullish candles, each opening within the prior body and closing near its high: sustained, orderly buying.",
		KeyRules: []string{
			"Three consecutive bullish candles",
			"Each opens within the previous body",
			"Each closes near its high with small upper wicks",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Trend reversal off a major low",
			"Breakout continuation with conviction",
		},
		ActionProtocol:   "Enter on pullbacks rather than chasing the third candle. Invalidated if price falls below the first soldier's open.",
		RealWorldContext: "After a long decline this marks determined accumulation; late in a rally it can signal exhaustion instead.",
		Confusions:       []string{"Three black crows is the bearish counterpart"},
		QuickTest: &models.QuickTest{
			Question: "What warns that Three White Soldiers may be exhaustion rather than strength?",
			Options: []string{
				"It appears after an already extended rally",
				"The candles have small bodies",
				"Volume is increasing",
				"It forms at support",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Three large bullish candles late in a mature advance can be the final buying climax.",
		},
	},
	{
		ID:         "three-black-crows",
		Name:       "Three Black Crows",
		Difficulty: models.DifficultyAdvanced,
		Category:   models.CategoryBearish,
		Meaning:    "Three consecutive strong bearish candles, each opening within the prior body and closing near its low: sustained, orderly selling.",
		KeyRules: []string{
			"Three consecutive bearish candles",
			"Each opens within the previous body",
			"Each closes near its low with small lower wicks",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Top formation breaking down",
			"Distribution turning into a markdown",
		},
		ActionProtocol:   "Avoid new longs; short bounces into the crows' bodies. Invalidated above the first crow's open.",
		RealWorldContext: "A serious warning when it breaks below a major support shelf.",
		QuickTest: &models.QuickTest{
			Question: "Three Black Crows is most significant when it appears where?",
			Options: []string{
				"At the top of an uptrend or breaking support",
				"At the bottom of a downtrend",
				"In a quiet range",
				"After a gap down",
			},
			CorrectOptionIndex: 0,
			Explanation:        "It marks the transition from distribution to markdown; late in a decline it is just momentum.",
		},
	},
	{
		ID:         "piercing-line",
		Name:       "Piercing Line",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBullish,
		Meaning:    "A two-candle reversal: after a bearish candle, a bullish candle opens below its low and closes above the midpoint of its body.",
		KeyRules: []string{
			"First candle bearish",
			"Second opens below the first candle's low",
			"Second closes above the midpoint of the first body",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Gap-down open reversed by strong buying",
			"Support holding after a scare",
		},
		ActionProtocol:   "Confirm with follow-through; enter above the piercing candle's high with a stop below its low.",
		RealWorldContext: "Weaker than a full engulfing; the deeper the pierce, the stronger the signal.",
		Confusions:       []string{"Bullish engulfing covers the whole prior body; piercing line only passes its midpoint"},
		QuickTest: &models.QuickTest{
			Question: "How far must the second candle of a Piercing Line close into the first body?",
			Options: []string{
				"Above its midpoint",
				"Above its high",
				"Only above its close",
				"Any amount",
			},
			CorrectOptionIndex: 0,
			Explanation:        "Closing beyond the midpoint distinguishes a genuine pierce from a routine bounce.",
		},
	},
	{
		ID:         "dark-cloud-cover",
		Name:       "Dark Cloud Cover",
		Difficulty: models.DifficultyIntermediate,
		Category:   models.CategoryBearish,
		Meaning:    "A two-candle reversal: after a bullish candle, a bearish candle opens above its high and closes below the midpoint of its body.",
		KeyRules: []string{
			"First candle bullish",
			"Second opens above the first candle's high",
			"Second closes below the midpoint of the first body",
		},
		NeedsConfirmation: true,
		Scenarios: []string{
			"Gap-up open sold into heavily",
			"Failed breakout at resistance",
		},
		ActionProtocol:   "Confirm with a bearish follow-through candle. Stop above the dark cloud's high.",
		RealWorldContext: "The bearish mirror of the piercing line; common after earnings gap-ups that fade.",
		QuickTest: &models.QuickTest{
			Question: "What makes Dark Cloud Cover bearish rather than a routine red candle?",
			Options: []string{
				"It opens above the prior high yet closes deep into the prior body",
				"It has no wicks",
				"It forms in a downtrend",
				"It closes at its high",
			},
			CorrectOptionIndex: 0,
			Explanation:        "The failed gap up trapping buyers and the deep close show sellers seized control.",
		},
	},
	{
		ID:         "marubozu",
		Name:       "Marubozu",
		Difficulty: models.DifficultyAdvanced,
		Category:   models.CategoryNeutral,
		Meaning:    "A candle with no wicks at all: one side controlled the session from open to close. Direction depends on the candle's color and context.",
		KeyRules: []string{
			"No upper wick and no lower wick",
			"Open equals the extreme at one end, close at the other",
			"Color determines which side dominated",
		},
		NeedsConfirmation: false,
		Scenarios: []string{
			"Breakout with full conviction",
			"Capitulation candle at trend extremes",
		},
		ActionProtocol:   "Trade in the candle's direction on continuation setups; a marubozu against your position is a strong exit signal.",
		RealWorldContext: "Rare on higher timeframes; a bullish marubozu through resistance is a notably strong signal.",
		QuickTest: &models.QuickTest{
			Question: "What defines a Marubozu?",
			Options: []string{
				"A candle with no upper or lower wick",
				"A candle with equal open and close",
				"Any candle larger than average",
				"A gap candle",
			},
			CorrectOptionIndex: 0,
			Explanation:        "No wicks means one side held control for the entire session.",
		},
	},
}
