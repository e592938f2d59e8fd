// Package plan maps subscription tiers to feature limits.
package plan

import "github.com/limbo/ascent/pkg/entity"

// Unlimited marks a limit that never blocks.
const Unlimited = -1

type Feature string

const (
	FeatureCreateMountain Feature = "create_mountain"
	FeatureAddStep        Feature = "add_step"
	FeatureShare          Feature = "share"
)

type Limits struct {
	MaxMountains int `json:"max_mountains"`
	MaxSteps     int `json:"max_steps"`
	MaxShares    int `json:"max_shares"`
}

// Usage is what the current journey already consumes.
type Usage struct {
	Mountains int `json:"mountains"`
	Steps     int `json:"steps"`
	Shares    int `json:"shares"`
}

var limitTable = map[entity.PlanTier]Limits{
	entity.PlanFree: {MaxMountains: 1, MaxSteps: 6, MaxShares: 4},
	entity.PlanPro:  {MaxMountains: 1, MaxSteps: Unlimited, MaxShares: Unlimited},
}

// LimitsFor returns the limits of tier. Unknown tiers get the free limits.
func LimitsFor(tier entity.PlanTier) Limits {
	if l, ok := limitTable[tier]; ok {
		return l
	}
	return limitTable[entity.PlanFree]
}

func within(limit, used int) bool {
	return limit == Unlimited || used < limit
}

// CheckLimit reports whether one more use of feature is allowed.
func CheckLimit(tier entity.PlanTier, feature Feature, usage Usage) bool {
	l := LimitsFor(tier)
	switch feature {
	case FeatureCreateMountain:
		return within(l.MaxMountains, usage.Mountains)
	case FeatureAddStep:
		return within(l.MaxSteps, usage.Steps)
	case FeatureShare:
		return within(l.MaxShares, usage.Shares)
	}
	return false
}

// Gates evaluates every feature at once, for the client to disable controls.
func Gates(tier entity.PlanTier, usage Usage) map[Feature]bool {
	return map[Feature]bool{
		FeatureCreateMountain: CheckLimit(tier, FeatureCreateMountain, usage),
		FeatureAddStep:        CheckLimit(tier, FeatureAddStep, usage),
		FeatureShare:          CheckLimit(tier, FeatureShare, usage),
	}
}
