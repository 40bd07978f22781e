package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EmotionalState is the monster's current mood
type EmotionalState string

const (
	StateHappy  EmotionalState = "happy"
	StateSad    EmotionalState = "sad"
	StateAngry  EmotionalState = "angry"
	StateHungry EmotionalState = "hungry"
	StateSleepy EmotionalState = "sleepy"
)

// Valid reports whether s is a known emotional state.
func (s EmotionalState) Valid() bool {
	switch s {
	case StateHappy, StateSad, StateAngry, StateHungry, StateSleepy:
		return true
	}
	return false
}

// CareAction is a player-initiated care interaction
type CareAction string

const (
	ActionFeed    CareAction = "feed"
	ActionComfort CareAction = "comfort"
	ActionHug     CareAction = "hug"
	ActionWake    CareAction = "wake"
)

// careCures maps each action to the single state it resolves
var careCures = map[CareAction]EmotionalState{
	ActionFeed:    StateHungry,
	ActionComfort: StateAngry,
	ActionHug:     StateSad,
	ActionWake:    StateSleepy,
}

// Valid reports whether a is a known care action.
func (a CareAction) Valid() bool {
	_, ok := careCures[a]
	return ok
}

// Cures returns the emotional state this action resolves.
func (a CareAction) Cures() (EmotionalState, bool) {
	state, ok := careCures[a]
	return state, ok
}

// Reason returns the ledger reason recorded when this action earns a reward.
func (a CareAction) Reason() TransactionReason {
	switch a {
	case ActionFeed:
		return ReasonFeedMonster
	case ActionComfort:
		return ReasonComfortMonster
	case ActionHug:
		return ReasonHugMonster
	case ActionWake:
		return ReasonWakeMonster
	}
	return ""
}

// Monster carries the progression state the engine reads and rewrites.
type Monster struct {
	ID            string         `json:"id" db:"monster_id"`
	OwnerID       string         `json:"owner_id" db:"owner_id"`
	Name          string         `json:"name" db:"name"`
	Level         int            `json:"level" db:"level"`
	XP            int            `json:"xp" db:"xp"`
	XPToNextLevel int            `json:"xp_to_next_level" db:"xp_to_next_level"`
	State         EmotionalState `json:"state" db:"emotional_state"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// NewMonster creates a level-1 monster with no XP, starting happy.
func NewMonster(ownerID, name string) (*Monster, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: monster name is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	return &Monster{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Name:          name,
		Level:         1,
		XP:            0,
		XPToNextLevel: XPPerLevel,
		State:         StateHappy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
