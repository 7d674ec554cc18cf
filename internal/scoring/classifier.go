package scoring

import "mentoria_engine/internal/model"

// Classify maps a score onto one of the five stages. Two scales coexist: the
// legacy "Nota Final" on 0-10 and the composite indicator on 0-100. A score at
// or below 10 is read as the legacy scale; callers that know the scale can use
// ClassifyOn100 directly.
func Classify(score float64) model.Stage {
	if score <= 10 {
		score *= 10
	}
	return ClassifyOn100(score)
}

// ClassifyOn100 applies the stage thresholds to a 0-100 score. Boundaries are
// inclusive on the lower bound.
func ClassifyOn100(score float64) model.Stage {
	switch {
	case score >= 90:
		return model.StageExcelencia
	case score >= 70:
		return model.StageAvancado
	case score >= 50:
		return model.StageIntermediario
	case score >= 30:
		return model.StageBasico
	default:
		return model.StageInicial
	}
}
