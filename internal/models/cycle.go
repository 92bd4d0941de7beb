package models

import "time"

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

const (
	DefaultCycleLength        = 28
	DefaultPeriodLength       = 5
	DefaultLutealPhaseLength  = 14
	MinCycleLength            = 21
	MaxCycleLength            = 40
	MinPeriodLength           = 2
	MaxPeriodLength           = 10
	OvulationWindowDays       = 4
	DefaultBaselineOffsetDays = 14
)

// DateLayout is the calendar-date format used for registry keys and the
// cycle baseline throughout the persisted snapshot.
const DateLayout = "2006-01-02"

// CycleData is the user-set cycle baseline plus the registry of annotated
// days. Entries mix calculator output with user annotations; once a date is
// present here it is returned as stored and never recomputed.
type CycleData struct {
	AverageCycleLength int                 `json:"averageCycleLength"`
	LastPeriodStart    string              `json:"lastPeriodStart"`
	PeriodLength       int                 `json:"periodLength"`
	LutealPhaseLength  int                 `json:"lutealPhaseLength"`
	Entries            map[string]CycleDay `json:"entries"`
}

func DefaultCycleData(now time.Time) CycleData {
	return CycleData{
		AverageCycleLength: DefaultCycleLength,
		LastPeriodStart:    now.AddDate(0, 0, -DefaultBaselineOffsetDays).Format(DateLayout),
		PeriodLength:       DefaultPeriodLength,
		LutealPhaseLength:  DefaultLutealPhaseLength,
		Entries:            map[string]CycleDay{},
	}
}
