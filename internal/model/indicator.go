package model

import "github.com/google/uuid"

// Stage is the five-step classification ladder. Lower number means higher
// performance; boundaries are inclusive on the lower bound.
type Stage int

const (
	StageExcelencia    Stage = 1
	StageAvancado      Stage = 2
	StageIntermediario Stage = 3
	StageBasico        Stage = 4
	StageInicial       Stage = 5
)

// Label returns the display name used by every dashboard consumer.
func (s Stage) Label() string {
	switch s {
	case StageExcelencia:
		return "Excelência"
	case StageAvancado:
		return "Avançado"
	case StageIntermediario:
		return "Intermediário"
	case StageBasico:
		return "Básico"
	case StageInicial:
		return "Inicial"
	default:
		return "Inicial"
	}
}

// Indicators is the per-student output record: six sub-indicators and the
// composite, all on a 0-100 scale. Composite is the exact arithmetic mean of
// the six, with zero-denominator indicators contributing 0 and still counted
// in the divisor.
type Indicators struct {
	StudentID uuid.UUID `json:"student_id"`

	Mentoring    float64 `json:"mentoring"`    // present / total sessions
	Tasks        float64 `json:"tasks"`        // delivered / eligible tasks
	Engagement   float64 `json:"engagement"`   // mean of three sub-components
	Competencies float64 `json:"competencies"` // approved / total, frozen cycles only
	Learning     float64 `json:"learning"`     // mean assessment score, frozen cycles only
	Events       float64 `json:"events"`       // present / total events

	Composite float64 `json:"composite"`

	// No-data flags let callers tell "measured 0" from "nothing to measure".
	LearningNoData   bool `json:"learning_no_data"`
	EngagementNoData bool `json:"engagement_no_data"`

	Stage      Stage  `json:"stage"`
	StageLabel string `json:"stage_label"`
}

// StudentLedger is the read model the calculator consumes: everything known
// about one student, already restricted to what each indicator may see.
type StudentLedger struct {
	Sessions       []*MentoringSession
	Participations []*EventParticipation
	// PlanItems restricted to frozen cycles feed indicators 4 and 5; the
	// loader performs that restriction, the calculator trusts it.
	FrozenPlanItems []*PlanItem
}
