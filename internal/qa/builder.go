package qa

import (
	"fmt"
	"strings"
)

// Pair is one question with its fixed-size set of acceptable answers.
// Answer order is significant; callers may treat index 0 as the primary
// phrasing.
type Pair struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// UsesEnergyDevice reports whether any raw tool name refers to an
// electrosurgical instrument. See energySubstrings for the match rules.
func UsesEnergyDevice(tools []string) bool {
	for _, t := range tools {
		for _, sub := range energySubstrings {
			if strings.Contains(t, sub) {
				return true
			}
		}
	}
	return false
}

// BuildPairs produces the three supervision pairs for one segment, in fixed
// order: instrument visibility, energy-device usage, training objective.
// It never fails; an absent tool list or task name degrades to the
// documented fallback wordings.
func BuildPairs(tools []string, rawTaskName string) []Pair {
	groundtruth := strings.TrimSpace(Normalize(rawTaskName))
	if groundtruth == "" {
		groundtruth = fallbackTaskName
	}

	pairs := make([]Pair, 0, PairsPerEntry)
	pairs = append(pairs, buildVisibilityPair(tools, groundtruth))
	pairs = append(pairs, buildEnergyPair(tools))
	pairs = append(pairs, buildObjectivePair(groundtruth))
	return pairs
}

// buildVisibilityPair asks which instruments are visible. With no tools the
// question flips to the fixed negative form with non-interpolated answers.
func buildVisibilityPair(tools []string, groundtruth string) Pair {
	if len(tools) == 0 {
		return Pair{Question: noToolsQuestion, Answers: answerSet(noToolsAnswers)}
	}

	question := fmt.Sprintf(visibilityQuestionFormat, groundtruth)
	if len(strings.Fields(question)) > maxQuestionWords {
		question = visibilityQuestionFallback
	}

	// The tool phrase is computed once and shared by all five paraphrases.
	phrase := SummarizeTools(tools)
	answers := make([]string, 0, AnswersPerPair)
	for _, format := range visibilityAnswerFormats {
		answers = append(answers, fmt.Sprintf(format, phrase))
	}
	return Pair{Question: question, Answers: answers}
}

// buildEnergyPair is a yes/no on electrosurgical instrument usage; the
// answer set is selected wholesale.
func buildEnergyPair(tools []string) Pair {
	if UsesEnergyDevice(tools) {
		return Pair{Question: energyQuestion, Answers: answerSet(energyYesAnswers)}
	}
	return Pair{Question: energyQuestion, Answers: answerSet(energyNoAnswers)}
}

// answerSet copies a variant table into a fresh slice so callers never
// alias the package-level tables.
func answerSet(table [AnswersPerPair]string) []string {
	return append([]string(nil), table[:]...)
}

// buildObjectivePair restates the ground-truth training objective.
func buildObjectivePair(groundtruth string) Pair {
	answers := make([]string, 0, AnswersPerPair)
	for _, format := range objectiveAnswerFormats {
		answers = append(answers, fmt.Sprintf(format, groundtruth))
	}
	return Pair{Question: objectiveQuestion, Answers: answers}
}
