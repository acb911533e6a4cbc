// Package wellness turns a daily check-in into a wellness score and the
// operating mode the planner runs in.
package wellness

import (
	"math"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// fullSleepHours is the amount of sleep that earns full sleep credit.
const fullSleepHours = 8.0

// Input is a single check-in. Stress and energy are on a 0–10 scale.
// Values are not range-checked.
type Input struct {
	Stress     float64 `json:"stress"`
	SleepHours float64 `json:"sleepHours"`
	Energy     float64 `json:"energy"`
}

type Result struct {
	Score float64              `json:"score"`
	Mode  domain.WellnessMode  `json:"mode"`
	Level domain.WellnessLevel `json:"level"`
	Tips  []string             `json:"tips"`
}

type tipRule struct {
	applies func(in Input, score float64) bool
	tip     string
}

// tipRules are evaluated in order; the order is the display order.
var tipRules = []tipRule{
	{func(in Input, _ float64) bool { return in.Stress > 7 },
		"Stress is running high. Try a five-minute breathing exercise before you start."},
	{func(in Input, _ float64) bool { return in.Stress > 5 },
		"Break work into short focused blocks to keep stress manageable."},
	{func(in Input, _ float64) bool { return in.SleepHours < 6 },
		"Aim for at least seven hours of sleep tonight."},
	{func(in Input, _ float64) bool { return in.SleepHours < 4 },
		"Very little sleep last night. Keep today light and protect your rest."},
	{func(in Input, _ float64) bool { return in.Energy < 4 },
		"Energy is low. Start with an easy task to build momentum."},
	{func(in Input, _ float64) bool { return in.Energy < 3 },
		"Take a short walk or a healthy snack before your next session."},
	{func(_ Input, s float64) bool { return s > 7 },
		"You're in great shape. Tackle your most demanding task first."},
	{func(_ Input, s float64) bool { return s >= 4 && s <= 7 },
		"Steady day. Mix focused work with regular breaks."},
	{func(_ Input, s float64) bool { return s < 4 },
		"Light mode is on. Only high-priority tasks are planned today."},
}

// Calculate scores a check-in. It never fails; out-of-range input produces
// arithmetically valid output.
func Calculate(in Input) Result {
	sleepNormalized := math.Min(in.SleepHours/fullSleepHours, 1) * 10
	score := round1(((10 - in.Stress) + sleepNormalized + in.Energy) / 3)

	level := LevelFor(score)
	mode := domain.ModeNormal
	if level == domain.LevelLow {
		mode = domain.ModeLight
	}

	tips := []string{}
	for _, r := range tipRules {
		if r.applies(in, score) {
			tips = append(tips, r.tip)
		}
	}

	return Result{Score: score, Mode: mode, Level: level, Tips: tips}
}

// LevelFor buckets a score: above 7 is good, below 4 is low.
func LevelFor(score float64) domain.WellnessLevel {
	switch {
	case score > 7:
		return domain.LevelGood
	case score >= 4:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
