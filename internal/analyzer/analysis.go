package analyzer

import (
	"fmt"
	"strings"
)

// Immediate need values the model may return.
const (
	NeedEscape  = "escape"
	NeedProcess = "process"
	NeedUplift  = "uplift"
	NeedCalm    = "calm"
	NeedMatch   = "match"
	NeedChannel = "channel"
)

var validNeeds = map[string]bool{
	NeedEscape:  true,
	NeedProcess: true,
	NeedUplift:  true,
	NeedCalm:    true,
	NeedMatch:   true,
	NeedChannel: true,
}

// Analysis is the structured result of classifying a mood description.
type Analysis struct {
	PrimaryMood    string   `json:"primary_mood"`
	Intensity      int      `json:"intensity"`
	Context        string   `json:"context,omitempty"`
	ImmediateNeed  string   `json:"immediate_need"`
	MultiMood      bool     `json:"multi_mood"`
	SecondaryMoods []string `json:"secondary_moods"`
	TimeContext    string   `json:"time_context,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// Moods returns the primary mood followed by any secondary moods, the
// label list fed to the mapping engine.
func (a *Analysis) Moods() []string {
	moods := make([]string, 0, 1+len(a.SecondaryMoods))
	moods = append(moods, a.PrimaryMood)
	moods = append(moods, a.SecondaryMoods...)
	return moods
}

// normalize lowercases mood labels, clamps numeric fields into range
// and defaults the immediate need when the model leaves it blank.
func (a *Analysis) normalize() {
	a.PrimaryMood = strings.ToLower(strings.TrimSpace(a.PrimaryMood))
	for i, m := range a.SecondaryMoods {
		a.SecondaryMoods[i] = strings.ToLower(strings.TrimSpace(m))
	}
	a.ImmediateNeed = strings.ToLower(strings.TrimSpace(a.ImmediateNeed))
	if a.ImmediateNeed == "" {
		a.ImmediateNeed = NeedMatch
	}
	if a.Intensity < 1 {
		a.Intensity = 1
	}
	if a.Intensity > 10 {
		a.Intensity = 10
	}
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}
	if !a.MultiMood {
		a.SecondaryMoods = nil
	}
}

// validate rejects analyses that cannot drive a recommendation.
func (a *Analysis) validate() error {
	if a.PrimaryMood == "" {
		return fmt.Errorf("analysis missing primary mood")
	}
	if !validNeeds[a.ImmediateNeed] {
		return fmt.Errorf("invalid immediate need %q", a.ImmediateNeed)
	}
	return nil
}
