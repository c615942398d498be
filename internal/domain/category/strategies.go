package category

// Canned improvement strategies keyed by canonical category name. Purely
// descriptive text attached to weaknesses; no computation.
var battingStrategies = map[string]string{
	"AVG": "Target high-contact hitters with good plate discipline",
	"HR":  "Add power hitters, even if they have lower batting averages",
	"R":   "Target high-OBP players and those hitting at the top of strong lineups",
	"RBI": "Look for sluggers and players hitting in the middle of the order",
	"SB":  "Add speedsters and top-of-order hitters, even with less power",
	"OBP": "Prioritize players with good walk rates and plate discipline",
	"SLG": "Focus on power hitters with extra-base hit ability",
	"OPS": "Balance power and on-base skills in your hitting acquisitions",
	"TB":  "Target players with extra-base hit power and consistent playing time",
	"H":   "Add players with high batting averages and consistent playing time",
	"2B":  "Look for gap hitters, especially those in parks with deep outfields",
	"3B":  "Rare category; target speedsters in parks with large outfields",
	"BB":  "Focus on patient hitters with good plate discipline",
	"XBH": "Add players with gap power and good ballparks for extra-base hits",
}

var pitchingStrategies = map[string]string{
	"ERA":  "Target pitchers with good underlying skills (high K%, low BB%, groundball tendencies)",
	"WHIP": "Prioritize control pitchers with low walk rates",
	"W":    "Focus on starters on good teams with high strikeout ability",
	"SV":   "Add established closers, especially on winning teams",
	"K":    "Target high-strikeout pitchers, even with slightly higher ratios",
	"HLD":  "Add setup men on good teams with high strikeout rates",
	"QS":   "Look for durable starters who pitch deep into games",
	"IP":   "Maximize your innings with efficient starters",
	"K/9":  "Focus on high-strikeout pitchers, even in shorter outings",
	"BB/9": "Target control specialists with proven command",
	"K/BB": "Balance strikeout ability with control in your pitching staff",
	"SVH":  "Add both closers and high-quality setup men",
}
