package services

import (
	"log"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// CyclePhaseForDay derives the phase for an arbitrary calendar day from the
// cycle baseline. A day already present in the registry wins over any
// computation. The modular arithmetic extends the baseline cycle in both
// directions, so dates before lastPeriodStart resolve too.
func CyclePhaseForDay(cycle models.CycleData, day time.Time) string {
	dateKey := dateOnly(day).Format(models.DateLayout)
	if entry, ok := cycle.Entries[dateKey]; ok {
		return entry.Phase
	}

	daysSinceBaseline := daysBetween(baselineDate(cycle), day)
	dayInCycle := floorMod(daysSinceBaseline, cycle.AverageCycleLength)

	switch {
	case dayInCycle < cycle.PeriodLength:
		return models.PhaseMenstrual
	case dayInCycle < cycle.AverageCycleLength-cycle.LutealPhaseLength:
		return models.PhaseFollicular
	case dayInCycle < cycle.AverageCycleLength-cycle.LutealPhaseLength+models.OvulationWindowDays:
		return models.PhaseOvulation
	default:
		return models.PhaseLuteal
	}
}

// DayInfoForDay builds the full day record for a calendar day. Stored
// registry entries are returned verbatim. The day-of-cycle ordinal is
// computed on its own cycle-offset path, deliberately separate from the
// modular phase math above: the detailed-phase lookup keys strictly off
// this ordinal, and the two paths may disagree at cycle boundaries.
func DayInfoForDay(cycle models.CycleData, day time.Time) models.CycleDay {
	dateKey := dateOnly(day).Format(models.DateLayout)
	if entry, ok := cycle.Entries[dateKey]; ok {
		return entry
	}

	dayOfCycle := DayOfCycleForDay(cycle, day)
	phase := CyclePhaseForDay(cycle, day)

	record := models.CycleDay{
		Date:           dateKey,
		Phase:          phase,
		DayOfCycle:     dayOfCycle,
		IsMenstruation: phase == models.PhaseMenstrual,
	}

	if detail, ok := DetailedPhaseForDay(dayOfCycle); ok {
		record.DetailedPhase = detail.DetailedPhase
		record.HormoneState = detail.HormoneState
		record.Cognition = detail.Cognition
		record.Optimal = detail.Optimal
		record.Avoid = detail.Avoid
	}

	return record
}

// DayOfCycleForDay returns the 1-based position of the day within its
// enclosing cycle repetition, in [1, averageCycleLength] for any date.
func DayOfCycleForDay(cycle models.CycleData, day time.Time) int {
	baseline := baselineDate(cycle)
	daysSinceBaseline := daysBetween(baseline, day)
	cycleOffset := floorDiv(daysSinceBaseline, cycle.AverageCycleLength)
	thisCycleStart := baseline.AddDate(0, 0, cycleOffset*cycle.AverageCycleLength)
	return daysBetween(thisCycleStart, day) + 1
}

// baselineDate parses the stored lastPeriodStart. A malformed value is
// recovered by substituting today with a logged warning rather than failing,
// so a phase display degrades instead of crashing.
func baselineDate(cycle models.CycleData) time.Time {
	baseline, err := time.Parse(models.DateLayout, cycle.LastPeriodStart)
	if err != nil {
		log.Printf("invalid lastPeriodStart %q, substituting today: %v", cycle.LastPeriodStart, err)
		return dateOnly(time.Now())
	}
	return baseline
}

// dateOnly normalizes to a UTC midnight so whole-day arithmetic never sees
// DST-shortened days.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func floorDiv(a int, b int) int {
	quotient := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		quotient--
	}
	return quotient
}

func floorMod(a int, b int) int {
	return ((a % b) + b) % b
}
