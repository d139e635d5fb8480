// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the assignment-engine
// pipeline: the analysis of an assignment description, the synthesized draft,
// stored draft records, and stage configuration.
package types

// AssignmentType is the closed classification label assigned to an
// assignment description.
type AssignmentType string

const (
	TypeWriting      AssignmentType = "Writing Assignment"
	TypeQuizTest     AssignmentType = "Quiz/Test"
	TypeProgramming  AssignmentType = "Programming Assignment"
	TypeResearch     AssignmentType = "Research Assignment"
	TypePresentation AssignmentType = "Presentation"
	TypeGeneral      AssignmentType = "General Assignment"
)

// AssignmentTypes lists every label in classification priority order.
var AssignmentTypes = []AssignmentType{
	TypeWriting,
	TypeQuizTest,
	TypeProgramming,
	TypeResearch,
	TypePresentation,
	TypeGeneral,
}

// Valid reports whether t is one of the known labels.
func (t AssignmentType) Valid() bool {
	for _, known := range AssignmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseAssignmentType converts a label received from a caller into an
// AssignmentType. Unknown labels map to TypeGeneral.
func ParseAssignmentType(label string) AssignmentType {
	t := AssignmentType(label)
	if t.Valid() {
		return t
	}
	return TypeGeneral
}

// AnalysisResult is the structured output of analyzing an assignment
// description. It is a plain value: no identity, no lifecycle.
type AnalysisResult struct {
	// AssignmentType is the single classification label for the description.
	AssignmentType AssignmentType `json:"assignmentType" yaml:"assignment_type"`

	// Topics are capitalized vocabulary keywords found in the description,
	// in vocabulary order. Between one and five entries.
	Topics []string `json:"topics" yaml:"topics"`

	// Requirements are fragments of the description, verbatim or trimmed.
	Requirements []string `json:"requirements" yaml:"requirements"`

	// SuggestedApproach is a numbered, multi-line plan that depends only on
	// AssignmentType.
	SuggestedApproach string `json:"suggestedApproach" yaml:"suggested_approach"`

	// ExternalLinks are anchor href values found in the description,
	// excluding in-page fragment links.
	ExternalLinks []string `json:"externalLinks" yaml:"external_links"`

	// CustomPrompt restates the analysis for a downstream generator.
	CustomPrompt string `json:"customPrompt" yaml:"custom_prompt"`
}

// DraftResult is a synthesized Markdown draft.
type DraftResult struct {
	// Content is the Markdown document.
	Content string `json:"content" yaml:"content"`

	// Citations is set only when external content was supplied.
	Citations []string `json:"citations,omitempty" yaml:"citations,omitempty"`

	// Notes describes the provenance of the draft.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
