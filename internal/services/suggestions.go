package services

import (
	"math/rand"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// SuggestionPicker chooses an index into a pool of suggestion strings.
// Injected so tests can pin the choice; production uses the random picker.
type SuggestionPicker func(optionCount int) int

func RandomSuggestionPicker(optionCount int) int {
	return rand.Intn(optionCount)
}

var phaseSuggestions = map[string][]string{
	models.PhaseMenstrual: {
		"Take it easy today. Your body is working hard.",
		"Hydrate more than usual today.",
		"Warmth may help with cramps - try a heating pad.",
		"It's okay to rest more during this phase.",
		"Consider iron-rich foods today.",
	},
	models.PhaseFollicular: {
		"Your energy is building. A good day for starting new projects.",
		"You might feel more creative today - embrace it!",
		"Your body responds well to exercise during this phase.",
		"Social activities might feel more appealing now.",
		"This is a good time for planning and decision-making.",
	},
	models.PhaseOvulation: {
		"You may feel more confident and energetic today.",
		"This is a peak time for verbal and physical communication.",
		"A good day for social events or important conversations.",
		"You may notice heightened senses during this phase.",
		"Your problem-solving abilities are enhanced during this phase.",
	},
	models.PhaseLuteal: {
		"You may be more sensitive during this phase - practice self-compassion.",
		"Your attention to detail increases during this phase.",
		"This is a good time for organization and routine tasks.",
		"Listen to your body if you need more calories or comfort.",
		"Mindfulness activities can be helpful during this phase.",
	},
}

// SuggestionForPhase picks one suggestion from the phase's pool. An unknown
// phase falls back to the luteal pool rather than returning nothing.
func SuggestionForPhase(phase string, pick SuggestionPicker) string {
	if pick == nil {
		pick = RandomSuggestionPicker
	}
	pool, ok := phaseSuggestions[phase]
	if !ok {
		pool = phaseSuggestions[models.PhaseLuteal]
	}
	return pool[floorMod(pick(len(pool)), len(pool))]
}

// SuggestionsForPhase exposes the full pool, so callers can treat a picked
// suggestion as "one of these" when asserting.
func SuggestionsForPhase(phase string) []string {
	pool := phaseSuggestions[phase]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// DailySuggestion prefers the day's table-driven optimal activity and falls
// back to the per-phase pool when no enrichment row applied.
func DailySuggestion(record models.CycleDay, pick SuggestionPicker) string {
	if record.Optimal != "" {
		return record.Optimal
	}
	return SuggestionForPhase(record.Phase, pick)
}

var moonPhaseEmojis = [8]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

// MoonPhaseEmoji maps the day's position in the cycle onto a simplified
// 8-step lunar sequence. Purely decorative.
func MoonPhaseEmoji(cycle models.CycleData, day time.Time) string {
	info := DayInfoForDay(cycle, day)
	phaseIndex := ((info.DayOfCycle - 1) * len(moonPhaseEmojis) / cycle.AverageCycleLength) % len(moonPhaseEmojis)
	return moonPhaseEmojis[floorMod(phaseIndex, len(moonPhaseEmojis))]
}
