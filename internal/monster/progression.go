package monster

import (
	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/pricing"
)

// ActionResult is the full outcome of resolving one care action. The
// resolver is pure; persisting the monster and paying the reward is the
// service's job.
type ActionResult struct {
	Action   domain.CareAction     `json:"action"`
	OldState domain.EmotionalState `json:"old_state"`
	NewState domain.EmotionalState `json:"new_state"`

	OldXP         int `json:"old_xp"`
	NewXP         int `json:"new_xp"`
	OldLevel      int `json:"old_level"`
	NewLevel      int `json:"new_level"`
	XPToNextLevel int `json:"xp_to_next_level"`

	Rewarded bool `json:"rewarded"`
	Reward   int  `json:"reward"`
}

// LeveledUp reports whether the resolution crossed at least one level
// threshold.
func (r ActionResult) LeveledUp() bool {
	return r.NewLevel > r.OldLevel
}

// ResolveAction runs one step of the progression state machine.
//
// A matching action (one that cures the monster's current state) settles the
// monster to happy, grants XP and earns a level-scaled coin reward. Any other
// action, including caring for an already-happy monster, leaves the state
// alone and costs XP, floored at zero. Level is always recomputed from
// absolute XP.
func ResolveAction(m domain.Monster, action domain.CareAction) ActionResult {
	result := ActionResult{
		Action:   action,
		OldState: m.State,
		NewState: m.State,
		OldXP:    m.XP,
		NewXP:    m.XP,
		OldLevel: m.Level,
		NewLevel: m.Level,
	}

	cured, known := action.Cures()
	if !known {
		result.XPToNextLevel = pricing.XPToNextLevel(m.XP)
		return result
	}

	if cured == m.State {
		result.NewState = domain.StateHappy
		result.NewXP = m.XP + domain.XPGainPerAction
		result.NewLevel = pricing.LevelForXP(result.NewXP)
		result.Rewarded = true
		result.Reward = pricing.ActionReward(result.NewLevel)
	} else {
		result.NewXP = m.XP - domain.XPLossPerWrongAction
		if result.NewXP < 0 {
			result.NewXP = 0
		}
		result.NewLevel = pricing.LevelForXP(result.NewXP)
	}

	result.XPToNextLevel = pricing.XPToNextLevel(result.NewXP)
	return result
}

// Apply writes a resolution back onto the monster.
func (r ActionResult) Apply(m *domain.Monster) {
	m.State = r.NewState
	m.XP = r.NewXP
	m.Level = r.NewLevel
	m.XPToNextLevel = r.XPToNextLevel
}
