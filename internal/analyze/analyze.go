// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze classifies an assignment description and extracts its
// topics, requirements, and links. Every function in this package is a
// pure, total function of its input text: there is no I/O, no shared
// mutable state, and no error path.
package analyze

import (
	"regexp"
	"strings"

	"github.com/pdiddy/assignment-engine/pkg/types"
)

// ExternalRequirementNote is appended to the requirements when external
// content accompanies the description. The external text itself is not
// mined for requirements.
const ExternalRequirementNote = "Additional requirements from external resources have been incorporated."

const maxTopics = 5

// classificationRules are tested in order; the first rule with a matching
// keyword wins. A description mentioning both "research" and "write" is a
// Writing Assignment.
var classificationRules = []struct {
	keywords []string
	label    types.AssignmentType
}{
	{[]string{"essay", "write"}, types.TypeWriting},
	{[]string{"quiz", "test"}, types.TypeQuizTest},
	{[]string{"code", "program"}, types.TypeProgramming},
	{[]string{"research", "report"}, types.TypeResearch},
	{[]string{"present"}, types.TypePresentation},
}

// topicVocabulary is matched against the lowercased description. Output
// order follows this list, not the order of appearance in the text.
var topicVocabulary = []string{
	"python", "javascript", "programming", "math", "history", "science",
	"literature", "physics", "chemistry", "biology", "economics", "business",
	"art", "music", "philosophy", "psychology", "sociology", "anthropology",
	"engineering", "medicine", "law", "education", "technology", "climate",
	"environment", "politics", "health", "sport", "culture", "religion",
	"language", "geography", "debate", "ethics", "research", "analysis",
	"design", "development", "testing", "implementation", "evaluation",
}

// anchorPattern matches an HTML anchor tag and captures its href value,
// quoted with either single or double quotes.
var anchorPattern = regexp.MustCompile(`<a[^>]+href=["']([^"']+)["'][^>]*>`)

// Analyze produces the full analysis of an assignment description. When
// external is non-nil, ExternalRequirementNote is appended to the
// requirements after the custom prompt has been built from them.
func Analyze(description string, external *string) types.AnalysisResult {
	assignmentType := ClassifyAssignmentType(description)
	requirements := ExtractRequirements(description)
	topics := extractTopics(description, assignmentType)

	result := types.AnalysisResult{
		AssignmentType:    assignmentType,
		Topics:            topics,
		SuggestedApproach: SuggestedApproach(assignmentType),
		ExternalLinks:     ExtractLinks(description),
		CustomPrompt:      CustomPrompt(assignmentType, requirements, topics),
	}

	if external != nil {
		requirements = append(requirements, ExternalRequirementNote)
	}
	result.Requirements = requirements

	return result
}

// ClassifyAssignmentType assigns exactly one label to the description using
// case-insensitive substring tests in fixed priority order. Descriptions that
// match no rule are TypeGeneral.
func ClassifyAssignmentType(description string) types.AssignmentType {
	lower := strings.ToLower(description)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return types.TypeGeneral
}

// ExtractTopics returns up to five capitalized vocabulary keywords found in
// the description. When nothing matches, the single topic is the
// description's assignment type.
func ExtractTopics(description string) []string {
	return extractTopics(description, ClassifyAssignmentType(description))
}

func extractTopics(description string, fallback types.AssignmentType) []string {
	lower := strings.ToLower(description)
	var topics []string
	for _, kw := range topicVocabulary {
		if strings.Contains(lower, kw) {
			topics = append(topics, capitalize(kw))
			if len(topics) == maxTopics {
				break
			}
		}
	}
	if len(topics) == 0 {
		return []string{string(fallback)}
	}
	return topics
}

// capitalize upper-cases the first letter of an ASCII keyword.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ExtractLinks returns the href values of anchor tags in the description in
// order of appearance, keeping duplicates and skipping fragment links ("#...").
func ExtractLinks(description string) []string {
	links := []string{}
	for _, m := range anchorPattern.FindAllStringSubmatch(description, -1) {
		href := m[1]
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		links = append(links, href)
	}
	return links
}
