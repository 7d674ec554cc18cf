package scoring

import (
	"testing"

	"mentoria_engine/internal/model"

	"github.com/stretchr/testify/assert"
)

func session(number int, presence model.Presence, task model.TaskStatus, rating *int) *model.MentoringSession {
	return &model.MentoringSession{
		SessionNumber:   number,
		Presence:        presence,
		TaskStatus:      task,
		EngagementScore: rating,
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCompute_EmptyLedger(t *testing.T) {
	ind := Compute(&model.StudentLedger{})

	assert.Equal(t, 0.0, ind.Mentoring)
	assert.Equal(t, 0.0, ind.Tasks)
	assert.Equal(t, 0.0, ind.Engagement)
	assert.Equal(t, 0.0, ind.Competencies)
	assert.Equal(t, 0.0, ind.Learning)
	assert.Equal(t, 0.0, ind.Events)
	assert.Equal(t, 0.0, ind.Composite)
	assert.True(t, ind.LearningNoData)
	assert.True(t, ind.EngagementNoData)
	assert.Equal(t, model.StageInicial, ind.Stage)
	assert.Equal(t, "Inicial", ind.StageLabel)
}

func TestCompute_CompositeIsExactMean(t *testing.T) {
	ledger := &model.StudentLedger{
		Sessions: []*model.MentoringSession{
			session(1, model.Present, model.TaskNone, intPtr(5)),
			session(2, model.Present, model.TaskDelivered, intPtr(4)),
			session(3, model.Absent, model.TaskNotDelivered, nil),
		},
		Participations: []*model.EventParticipation{
			{Status: model.Present},
			{Status: model.Absent},
		},
		FrozenPlanItems: []*model.PlanItem{
			{Status: model.PlanDone, AssessmentScore: floatPtr(8.0)},
			{Status: model.PlanPending},
		},
	}

	ind := Compute(ledger)

	sum := ind.Mentoring + ind.Tasks + ind.Engagement + ind.Competencies + ind.Learning + ind.Events
	assert.InDelta(t, sum/6.0, ind.Composite, 1e-9)
}

// Full worked scenario: every indicator exercised, learning with no data, and
// the composite landing just below the Avançado boundary.
func TestCompute_WorkedScenario(t *testing.T) {
	sessions := []*model.MentoringSession{
		// Assessment session: present, no task, rated 4.
		session(1, model.Present, model.TaskNone, intPtr(4)),
	}
	// Sessions 2-7 carry tasks: five delivered, one not.
	for i := 2; i <= 6; i++ {
		sessions = append(sessions, session(i, model.Present, model.TaskDelivered, intPtr(4)))
	}
	sessions = append(sessions, session(7, model.Present, model.TaskNotDelivered, intPtr(4)))
	// Sessions 8-10: no tasks, two absences.
	sessions = append(sessions, session(8, model.Present, model.TaskNone, intPtr(4)))
	sessions = append(sessions, session(9, model.Absent, model.TaskNone, nil))
	sessions = append(sessions, session(10, model.Absent, model.TaskNone, nil))

	ledger := &model.StudentLedger{
		Sessions: sessions,
		Participations: []*model.EventParticipation{
			{Status: model.Present},
			{Status: model.Present},
		},
		FrozenPlanItems: []*model.PlanItem{
			{Status: model.PlanDone},
			{Status: model.PlanDone},
			{Status: model.PlanDone},
			{Status: model.PlanInProgress},
		},
	}

	ind := Compute(ledger)

	// 8 of 10 sessions present.
	assert.InDelta(t, 80.0, ind.Mentoring, 1e-9)
	// 6 eligible tasks (session #1 and sem_tarefa rows excluded), 5 delivered.
	assert.InDelta(t, 83.333333, ind.Tasks, 1e-4)
	// Ratings all 4 -> component 80; mean of (80, 83.33, 80).
	assert.InDelta(t, 81.111111, ind.Engagement, 1e-4)
	assert.False(t, ind.EngagementNoData)
	// 3 of 4 frozen items done.
	assert.InDelta(t, 75.0, ind.Competencies, 1e-9)
	// No assessment scores anywhere: 0 with the flag set, still in the divisor.
	assert.Equal(t, 0.0, ind.Learning)
	assert.True(t, ind.LearningNoData)
	assert.InDelta(t, 100.0, ind.Events, 1e-9)

	assert.InDelta(t, 69.9074, ind.Composite, 1e-3)
	assert.Equal(t, model.StageIntermediario, ind.Stage)
	assert.Equal(t, "Intermediário", ind.StageLabel)
}

func TestTaskDelivery_ExcludesAssessmentSession(t *testing.T) {
	// Session #1 is marked delivered but must not count.
	ledger := &model.StudentLedger{
		Sessions: []*model.MentoringSession{
			session(1, model.Present, model.TaskDelivered, nil),
			session(2, model.Present, model.TaskNotDelivered, nil),
		},
	}

	ind := Compute(ledger)
	assert.Equal(t, 0.0, ind.Tasks)
}

func TestTaskDelivery_AllTasklessIsZeroNotNaN(t *testing.T) {
	ledger := &model.StudentLedger{
		Sessions: []*model.MentoringSession{
			session(2, model.Present, model.TaskNone, nil),
			session(3, model.Present, model.TaskNone, nil),
		},
	}

	ind := Compute(ledger)
	assert.Equal(t, 0.0, ind.Tasks)
	assert.False(t, ind.Composite != ind.Composite, "composite must never be NaN")
}

func TestEngagement_NoRatingsContributesZeroComponent(t *testing.T) {
	ledger := &model.StudentLedger{
		Sessions: []*model.MentoringSession{
			session(2, model.Present, model.TaskDelivered, nil),
		},
	}

	ind := Compute(ledger)
	// Mentoring 100, tasks 100, rating component 0.
	assert.InDelta(t, 66.666666, ind.Engagement, 1e-4)
	assert.True(t, ind.EngagementNoData)
}

func TestLearning_LegacyScaleRescaled(t *testing.T) {
	ledger := &model.StudentLedger{
		FrozenPlanItems: []*model.PlanItem{
			{Status: model.PlanDone, AssessmentScore: floatPtr(8.0)},
			{Status: model.PlanDone, AssessmentScore: floatPtr(6.0)},
			// Null score rows are excluded from the mean, not counted as zero.
			{Status: model.PlanPending},
		},
	}

	ind := Compute(ledger)
	assert.InDelta(t, 70.0, ind.Learning, 1e-9)
	assert.False(t, ind.LearningNoData)
}

func TestLearning_MixedScales(t *testing.T) {
	ledger := &model.StudentLedger{
		FrozenPlanItems: []*model.PlanItem{
			// Already normalized 0-100.
			{AssessmentScore: floatPtr(90.0)},
			// Legacy 0-10.
			{AssessmentScore: floatPtr(7.0)},
		},
	}

	ind := Compute(ledger)
	assert.InDelta(t, 80.0, ind.Learning, 1e-9)
}
