package category

// Tier is the ordinal classification of a team's category performance
// relative to the league baseline. Never persisted; always recomputed from a
// z-score.
type Tier string

// Strength tiers, weakest to strongest.
const (
	TierVeryWeak   Tier = "Very Weak"
	TierWeak       Tier = "Weak"
	TierAverage    Tier = "Average"
	TierStrong     Tier = "Strong"
	TierVeryStrong Tier = "Very Strong"
)

// Percentile tier thresholds.
const (
	veryStrongPct = 80
	strongPct     = 60
	averagePct    = 40
	weakPct       = 20
)

// TierFor maps a percentile onto its strength tier.
func TierFor(percentile float64) Tier {
	switch {
	case percentile >= veryStrongPct:
		return TierVeryStrong
	case percentile >= strongPct:
		return TierStrong
	case percentile >= averagePct:
		return TierAverage
	case percentile >= weakPct:
		return TierWeak
	default:
		return TierVeryWeak
	}
}

// Percentile maps a z-score onto a 0-100 percentile via the fixed affine
// clamp treating z in [-3, +3] as the full range. This is intentionally not
// a normal-CDF lookup; downstream thresholds depend on this exact mapping.
func Percentile(z float64) float64 {
	p := (z + 3) / 6
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p * 100
}
