package engine

// MilestoneState is where a health milestone stands relative to the streak.
type MilestoneState string

const (
	MilestoneCompleted MilestoneState = "completed"
	MilestoneNext      MilestoneState = "next"
	MilestoneUpcoming  MilestoneState = "upcoming"
)

// HealthMilestone is a recovery marker reached after Hours smoke-free.
type HealthMilestone struct {
	Hours       float64
	Label       string
	Description string
}

// MilestoneStatus is a milestone classified against a streak.
type MilestoneStatus struct {
	HealthMilestone
	State    MilestoneState
	Progress float64
}

// Sorted by Hours ascending.
var healthMilestones = []HealthMilestone{
	{Hours: 0.33, Label: "20 Minutes", Description: "Heart rate and blood pressure drop to normal levels"},
	{Hours: 12, Label: "12 Hours", Description: "Carbon monoxide level in blood drops to normal"},
	{Hours: 24, Label: "1 Day", Description: "Risk of heart attack begins to decrease"},
	{Hours: 48, Label: "2 Days", Description: "Nerve endings start regrowing. Smell and taste improve"},
	{Hours: 72, Label: "3 Days", Description: "Breathing becomes easier. Bronchial tubes relax"},
	{Hours: 168, Label: "1 Week", Description: "Sense of taste and smell significantly improved"},
	{Hours: 336, Label: "2 Weeks", Description: "Circulation improves. Lung function increases"},
	{Hours: 720, Label: "1 Month", Description: "Coughing and shortness of breath decrease"},
	{Hours: 2160, Label: "3 Months", Description: "Lung function continues to improve significantly"},
	{Hours: 4380, Label: "6 Months", Description: "Overall energy levels increase"},
	{Hours: 8760, Label: "1 Year", Description: "Risk of heart disease is cut in half"},
	{Hours: 43800, Label: "5 Years", Description: "Stroke risk reduced to that of a non-smoker"},
	{Hours: 87600, Label: "10 Years", Description: "Lung cancer risk drops to half that of a smoker"},
}

// HealthMilestones returns a copy of the milestone catalog.
func HealthMilestones() []HealthMilestone {
	out := make([]HealthMilestone, len(healthMilestones))
	copy(out, healthMilestones)
	return out
}

// ClassifyHealthMilestones walks the catalog once. Milestones whose threshold
// is met are completed, the first one that is not is next, everything after it
// is upcoming. The next milestone's Progress is measured from the previous
// threshold.
func ClassifyHealthMilestones(hoursSinceLastSlipUp float64) []MilestoneStatus {
	if hoursSinceLastSlipUp < 0 {
		hoursSinceLastSlipUp = 0
	}

	out := make([]MilestoneStatus, 0, len(healthMilestones))
	seenNext := false
	prev := 0.0
	for _, m := range healthMilestones {
		st := MilestoneStatus{HealthMilestone: m}
		switch {
		case hoursSinceLastSlipUp >= m.Hours:
			st.State = MilestoneCompleted
			st.Progress = 100
		case !seenNext:
			seenNext = true
			st.State = MilestoneNext
			st.Progress = clampPercent((hoursSinceLastSlipUp - prev) / (m.Hours - prev) * 100)
		default:
			st.State = MilestoneUpcoming
		}
		prev = m.Hours
		out = append(out, st)
	}
	return out
}

// NextMilestone returns the milestone currently being worked toward. ok is
// false once every milestone is completed.
func NextMilestone(hoursSinceLastSlipUp float64) (MilestoneStatus, bool) {
	for _, st := range ClassifyHealthMilestones(hoursSinceLastSlipUp) {
		if st.State == MilestoneNext {
			return st, true
		}
	}
	return MilestoneStatus{}, false
}

// CompletedMilestones counts the milestones already reached.
func CompletedMilestones(hoursSinceLastSlipUp float64) int {
	n := 0
	for _, m := range healthMilestones {
		if hoursSinceLastSlipUp >= m.Hours {
			n++
		}
	}
	return n
}
