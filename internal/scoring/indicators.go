// Package scoring holds the pure indicator math: no storage, no context, no
// side effects. Services load a student's ledger and hand it over.
package scoring

import "mentoria_engine/internal/model"

// Compute derives the six sub-indicators and the composite from a student's
// ledger. Every value lands on a 0-100 scale. An indicator with nothing to
// measure is 0, never NaN, and still counts in the composite divisor.
func Compute(ledger *model.StudentLedger) model.Indicators {
	var ind model.Indicators

	ind.Mentoring = mentoringParticipation(ledger.Sessions)
	ind.Tasks = taskDelivery(ledger.Sessions)
	ind.Engagement, ind.EngagementNoData = engagement(ind.Mentoring, ind.Tasks, ledger.Sessions)
	ind.Competencies = competencyPerformance(ledger.FrozenPlanItems)
	ind.Learning, ind.LearningNoData = learningPerformance(ledger.FrozenPlanItems)
	ind.Events = eventParticipation(ledger.Participations)

	// Equal weighting; zero-denominator indicators already contributed 0 and
	// the divisor stays at six.
	ind.Composite = (ind.Mentoring + ind.Tasks + ind.Engagement +
		ind.Competencies + ind.Learning + ind.Events) / 6.0

	ind.Stage = ClassifyOn100(ind.Composite)
	ind.StageLabel = ind.Stage.Label()

	return ind
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// mentoringParticipation counts every logged session, assessment included.
func mentoringParticipation(sessions []*model.MentoringSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	present := 0
	for _, s := range sessions {
		if s.Presence == model.Present {
			present++
		}
	}
	return clamp(float64(present) / float64(len(sessions)) * 100)
}

// taskDelivery excludes session #1 (the assessment session) and sessions
// marked sem_tarefa from the denominator.
func taskDelivery(sessions []*model.MentoringSession) float64 {
	eligible, delivered := 0, 0
	for _, s := range sessions {
		if s.SessionNumber == model.AssessmentSessionNumber {
			continue
		}
		if s.TaskStatus == model.TaskNone {
			continue
		}
		eligible++
		if s.TaskStatus == model.TaskDelivered {
			delivered++
		}
	}
	if eligible == 0 {
		return 0
	}
	return clamp(float64(delivered) / float64(eligible) * 100)
}

// engagement averages three sub-components: the mentoring indicator, the task
// indicator, and the mean engagement rating mapped 1-5 onto 20-100. When no
// ratings exist the third component contributes 0 rather than being excluded;
// that asymmetry matches the historical behavior and is reported through the
// no-data flag.
func engagement(mentoring, tasks float64, sessions []*model.MentoringSession) (float64, bool) {
	var sum float64
	var n int
	for _, s := range sessions {
		if s.EngagementScore != nil {
			sum += float64(*s.EngagementScore)
			n++
		}
	}
	ratingComponent := 0.0
	noData := n == 0
	if n > 0 {
		ratingComponent = clamp(sum / float64(n) * 20)
	}
	return clamp((mentoring + tasks + ratingComponent) / 3.0), noData
}

// competencyPerformance is restricted to frozen cycles; the loader guarantees
// the slice only holds frozen-cycle items.
func competencyPerformance(items []*model.PlanItem) float64 {
	if len(items) == 0 {
		return 0
	}
	approved := 0
	for _, it := range items {
		if it.Status == model.PlanDone {
			approved++
		}
	}
	return clamp(float64(approved) / float64(len(items)) * 100)
}

// learningPerformance averages assessment scores from frozen cycles, rescaled
// onto 0-100. Scores at or below 10 are read as the legacy 0-10 scale.
func learningPerformance(items []*model.PlanItem) (float64, bool) {
	var sum float64
	var n int
	for _, it := range items {
		if it.AssessmentScore == nil {
			continue
		}
		score := *it.AssessmentScore
		if score <= 10 {
			score *= 10
		}
		sum += clamp(score)
		n++
	}
	if n == 0 {
		return 0, true
	}
	return clamp(sum / float64(n)), false
}

// eventParticipation treats webinars and workshops uniformly.
func eventParticipation(participations []*model.EventParticipation) float64 {
	if len(participations) == 0 {
		return 0
	}
	present := 0
	for _, p := range participations {
		if p.Status == model.Present {
			present++
		}
	}
	return clamp(float64(present) / float64(len(participations)) * 100)
}
