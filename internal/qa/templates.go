package qa

// AnswersPerPair is the fixed answer-set cardinality. Every pair carries
// exactly five paraphrased candidate answers; index 0 is the canonical
// phrasing.
const AnswersPerPair = 5

// PairsPerEntry is the fixed number of pairs per segment, in order:
// instrument visibility, energy-device usage, training objective.
const PairsPerEntry = 3

// maxQuestionWords bounds the interpolated visibility question. Longer
// questions fall back to the fixed wording below.
const maxQuestionWords = 20

// Question wordings.
const (
	visibilityQuestionFormat   = "Which instruments are visible in this clip while performing %s?"
	visibilityQuestionFallback = "Which instruments are visible in this surgical training video segment?"
	noToolsQuestion            = "Are any robotic instruments listed for this segment in the detected objects?"
	energyQuestion             = "Is an energy device such as monopolar scissors or bipolar forceps being used here?"
	objectiveQuestion          = "According to the ground truth label, what training objective is being practiced?"
)

// fallbackTaskName stands in when a segment has no usable ground-truth label.
const fallbackTaskName = "the labeled task"

// energySubstrings mark electrosurgical instruments. Matching is a plain
// case-sensitive substring test against the raw (pre-normalization) tool
// names, so "monopolar_curved_scissors" counts.
var energySubstrings = []string{
	"monopolar",
	"bipolar",
	"vessel_sealer",
	"permanent_cautery_hook_spatula",
	"force_bipolar",
}

// Answer variant tables, one per question type. Five templates each; the
// interpolation point (if any) receives the summarized tool phrase or the
// normalized task name.
var (
	visibilityAnswerFormats = [AnswersPerPair]string{
		"Includes %s.",
		"Visible: %s.",
		"Present: %s.",
		"Tools include %s.",
		"Seen here: %s.",
	}

	noToolsAnswers = [AnswersPerPair]string{
		"No, no instruments listed.",
		"No tools are detected.",
		"None listed in objects.",
		"No, instruments not provided.",
		"No detected instruments.",
	}

	energyYesAnswers = [AnswersPerPair]string{
		"Yes, energy device in use.",
		"Yes, monopolar/bipolar used.",
		"Affirmative, energy is used.",
		"Yes, energy instruments present.",
		"Yes, energy applied here.",
	}

	energyNoAnswers = [AnswersPerPair]string{
		"No, no energy device used.",
		"Negative, no energy here.",
		"No energy instruments present.",
		"No, energy not applied.",
		"No, none used here.",
	}

	objectiveAnswerFormats = [AnswersPerPair]string{
		"%s.",
		"%s task.",
		"Training focus: %s.",
		"%s is practiced.",
		"Objective: %s.",
	}
)
