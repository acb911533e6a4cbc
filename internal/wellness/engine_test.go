package wellness

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_MediumBoundary(t *testing.T) {
	// (4 + 5 + 4) / 3 = 4.33
	r := Calculate(Input{Stress: 6, SleepHours: 4, Energy: 4})

	assert.Equal(t, 4.3, r.Score)
	assert.Equal(t, domain.LevelMedium, r.Level)
	assert.Equal(t, domain.ModeNormal, r.Mode)
	assert.Equal(t, []string{
		tipRules[1].tip, // stress > 5
		tipRules[2].tip, // sleep < 6
		tipRules[7].tip, // 4 <= score <= 7
	}, r.Tips)
}

func TestCalculate_WorstCaseIsLight(t *testing.T) {
	r := Calculate(Input{Stress: 10, SleepHours: 0, Energy: 0})

	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, domain.LevelLow, r.Level)
	assert.Equal(t, domain.ModeLight, r.Mode)
	assert.Len(t, r.Tips, 7)
	assert.Equal(t, tipRules[0].tip, r.Tips[0], "stress tip should lead")
	assert.Equal(t, tipRules[8].tip, r.Tips[6], "light-mode tip should close")
}

func TestCalculate_ScoreOfExactlyFourIsMedium(t *testing.T) {
	// (0 + 10 + 2) / 3 = 4.0
	r := Calculate(Input{Stress: 10, SleepHours: 8, Energy: 2})

	assert.Equal(t, 4.0, r.Score)
	assert.Equal(t, domain.LevelMedium, r.Level)
	assert.Equal(t, domain.ModeNormal, r.Mode)
}

func TestCalculate_ScoreOfExactlySevenIsMedium(t *testing.T) {
	// (6 + 10 + 5) / 3 = 7.0
	r := Calculate(Input{Stress: 4, SleepHours: 8, Energy: 5})

	assert.Equal(t, 7.0, r.Score)
	assert.Equal(t, domain.LevelMedium, r.Level)
}

func TestCalculate_GoodDay(t *testing.T) {
	r := Calculate(Input{Stress: 2, SleepHours: 8, Energy: 9})

	assert.Equal(t, 9.0, r.Score)
	assert.Equal(t, domain.LevelGood, r.Level)
	assert.Equal(t, []string{tipRules[6].tip}, r.Tips)
}

func TestCalculate_SleepCreditCapsAtEightHours(t *testing.T) {
	eight := Calculate(Input{Stress: 5, SleepHours: 8, Energy: 5})
	twelve := Calculate(Input{Stress: 5, SleepHours: 12, Energy: 5})
	assert.Equal(t, eight.Score, twelve.Score)
}

func TestCalculate_OutOfRangeInputIsNotRejected(t *testing.T) {
	r := Calculate(Input{Stress: -10, SleepHours: 30, Energy: 20})
	assert.Equal(t, 16.7, r.Score)
	assert.Equal(t, domain.LevelGood, r.Level)
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.WellnessLevel
	}{
		{7.1, domain.LevelGood},
		{7.0, domain.LevelMedium},
		{4.0, domain.LevelMedium},
		{3.9, domain.LevelLow},
		{0, domain.LevelLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.score), "score=%v", tc.score)
	}
}

// TestCalculate_Monotonicity property-tests that each input moves the score
// in one direction only.
func TestCalculate_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		stress := float64(rng.Intn(11))
		sleep := float64(rng.Intn(9))
		energy := float64(rng.Intn(11))
		base := Calculate(Input{Stress: stress, SleepHours: sleep, Energy: energy}).Score

		if stress < 10 {
			more := Calculate(Input{Stress: stress + 1, SleepHours: sleep, Energy: energy}).Score
			assert.LessOrEqual(t, more, base, "trial %d: more stress must not raise score", trial)
		}
		if sleep < 8 {
			more := Calculate(Input{Stress: stress, SleepHours: sleep + 1, Energy: energy}).Score
			assert.GreaterOrEqual(t, more, base, "trial %d: more sleep must not lower score", trial)
		}
		if energy < 10 {
			more := Calculate(Input{Stress: stress, SleepHours: sleep, Energy: energy + 1}).Score
			assert.GreaterOrEqual(t, more, base, "trial %d: more energy must not lower score", trial)
		}
	}
}
