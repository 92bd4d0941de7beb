package services

const (
	DetailedPhaseEarlyFollicular = "Early Follicular"
	DetailedPhasePreOvulatory    = "Pre-Ovulatory"
	DetailedPhaseMidLuteal       = "Mid-Luteal"
	DetailedPhaseLateLuteal      = "Late Luteal (PME)"
)

// PhaseDetail is one row of the fixed day-by-day enrichment table.
type PhaseDetail struct {
	DetailedPhase string
	HormoneState  string
	Cognition     string
	Optimal       string
	Avoid         string
}

// DetailedPhaseForDay looks up the enrichment row for a day-of-cycle
// ordinal. The table assumes a canonical 28-day cycle and is keyed strictly
// 1-28; days outside that range get no enrichment regardless of the user's
// actual cycle length. It is a fixed approximation and is never rescaled.
func DetailedPhaseForDay(dayOfCycle int) (PhaseDetail, bool) {
	if dayOfCycle < 1 || dayOfCycle > len(phaseDetailTable) {
		return PhaseDetail{}, false
	}
	return phaseDetailTable[dayOfCycle-1], true
}

var phaseDetailTable = [28]PhaseDetail{
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen and progesterone at their lowest",
		Cognition:     "Mental fog is common; working memory runs below your usual pace.",
		Optimal:       "Gentle routines, journaling, and low-stakes admin work.",
		Avoid:         "Demanding negotiations or big public commitments.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Hormones still low, estrogen beginning to stir",
		Cognition:     "Focus comes in short stretches; reflection feels natural.",
		Optimal:       "Reviewing plans, quiet reading, restorative movement.",
		Avoid:         "Overbooking the calendar.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen starting a slow climb",
		Cognition:     "Verbal recall improving; mood steadier than the first days.",
		Optimal:       "Light brainstorming and tidying up loose ends.",
		Avoid:         "Intense endurance training.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen rising steadily",
		Cognition:     "Energy returning; ideas begin to connect more easily.",
		Optimal:       "Sketching out new projects and easing back into exercise.",
		Avoid:         "Harsh self-criticism about the slower week behind you.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen climbing, FSH recruiting follicles",
		Cognition:     "Concentration noticeably sharper; optimism picks up.",
		Optimal:       "Planning sessions and learning something new.",
		Avoid:         "Comfort-eating out of habit rather than need.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen in a clear upward trend",
		Cognition:     "Problem-solving feels lighter; social battery recharging.",
		Optimal:       "Collaborative work and moderate cardio.",
		Avoid:         "Saying yes to everything at once.",
	},
	{
		DetailedPhase: DetailedPhaseEarlyFollicular,
		HormoneState:  "Estrogen approaching mid-range",
		Cognition:     "Verbal fluency and confidence on the rise.",
		Optimal:       "Difficult conversations you postponed, strength training.",
		Avoid:         "Late nights that cut into recovery sleep.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "Estrogen high and still rising",
		Cognition:     "Peak learning window opens; memory consolidation strong.",
		Optimal:       "Starting ambitious tasks and public speaking practice.",
		Avoid:         "Wasting the energy spike on busywork.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "Estrogen nearing its peak, testosterone edging up",
		Cognition:     "Quick thinking and risk tolerance both elevated.",
		Optimal:       "Pitches, interviews, and competitive sport.",
		Avoid:         "Impulse purchases and snap commitments.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "Estrogen peaking, LH beginning its surge",
		Cognition:     "Sociability and verbal sharpness near their monthly high.",
		Optimal:       "Networking, presentations, important conversations.",
		Avoid:         "Overcommitting to plans the luteal weeks must carry.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "LH surge building on peak estrogen",
		Cognition:     "Confidence high; attention broad rather than detailed.",
		Optimal:       "Big-picture strategy and creative leaps.",
		Avoid:         "Fine-grained proofreading you will regret skipping.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "LH surge peaking; ovulation imminent",
		Cognition:     "Senses and social perception heightened.",
		Optimal:       "High-stakes communication and physical challenges.",
		Avoid:         "Ignoring mid-cycle twinges if they appear.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "Ovulation window; estrogen at maximum",
		Cognition:     "Peak expressive fluency; motivation effortless.",
		Optimal:       "Anything requiring charisma or persuasion.",
		Avoid:         "Scheduling nothing and letting the peak pass unused.",
	},
	{
		DetailedPhase: DetailedPhasePreOvulatory,
		HormoneState:  "Estrogen cresting as ovulation completes",
		Cognition:     "Energy still high; a first hint of inward turn.",
		Optimal:       "Wrapping up the sprint started earlier this week.",
		Avoid:         "Assuming this pace is the permanent baseline.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone rising from the new corpus luteum",
		Cognition:     "Focus narrows pleasantly; detail work gets easier.",
		Optimal:       "Editing, organizing, and methodical execution.",
		Avoid:         "Launching brand-new ventures on impulse.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone climbing, estrogen in a second smaller rise",
		Cognition:     "Calm, steady attention; good tolerance for routine.",
		Optimal:       "Deep work blocks and household systems.",
		Avoid:         "Caffeine late in the day as sleep grows lighter.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone dominant",
		Cognition:     "Preference for familiar tasks; comfort matters more.",
		Optimal:       "Finishing projects and nesting activities.",
		Avoid:         "Back-to-back social obligations.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone near peak, appetite signals stronger",
		Cognition:     "Attention to detail high, patience slightly thinner.",
		Optimal:       "Checklists, audits, and steady-state exercise.",
		Avoid:         "Skipping meals; blood-sugar dips hit harder now.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone at its monthly peak",
		Cognition:     "Body runs warmer; energy best in the morning.",
		Optimal:       "Morning-loaded schedules and early nights.",
		Avoid:         "Evening commitments that demand sharpness.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Progesterone high; estrogen beginning to ease",
		Cognition:     "Sensitivity to friction rises; recovery takes longer.",
		Optimal:       "Quiet productivity and time outdoors.",
		Avoid:         "Reading too much into small slights.",
	},
	{
		DetailedPhase: DetailedPhaseMidLuteal,
		HormoneState:  "Both hormones starting their descent",
		Cognition:     "Inward focus deepens; reflection comes naturally.",
		Optimal:       "Reviewing the month and adjusting plans kindly.",
		Avoid:         "Major irreversible decisions made while tired.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Estrogen and progesterone falling",
		Cognition:     "Mood more reactive; inner critic louder than usual.",
		Optimal:       "Routine tasks, comfort food cooked well, early sleep.",
		Avoid:         "Conflict you can reasonably postpone.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Hormone withdrawal underway",
		Cognition:     "Concentration fragments sooner; breaks help a lot.",
		Optimal:       "Short focused sprints with generous pauses.",
		Avoid:         "Marathon work sessions.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Progesterone dropping steeply",
		Cognition:     "Emotional volume turned up; small things feel big.",
		Optimal:       "Gentle movement, time with trusted people.",
		Avoid:         "Interpreting this week's feelings as permanent facts.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Low and falling estrogen, serotonin dips with it",
		Cognition:     "Cravings and fatigue peak for many.",
		Optimal:       "Protein-forward meals, naps without guilt.",
		Avoid:         "Weighing yourself against peak-week output.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Hormones approaching their monthly low",
		Cognition:     "Need for solitude grows; patience is a finite resource.",
		Optimal:       "Saying no, simplifying the schedule.",
		Avoid:         "Volunteering for extra responsibilities.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Premenstrual trough",
		Cognition:     "Physical symptoms may crowd out focus; that is normal.",
		Optimal:       "Heat, rest, and whatever genuinely soothes.",
		Avoid:         "Pushing through pain signals.",
	},
	{
		DetailedPhase: DetailedPhaseLateLuteal,
		HormoneState:  "Lowest hormone point; menstruation imminent",
		Cognition:     "Quiet before the reset; energy conserves itself.",
		Optimal:       "Preparing for a slow start to the next cycle.",
		Avoid:         "Scheduling anything that cannot flex.",
	},
}
