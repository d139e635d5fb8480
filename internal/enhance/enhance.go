// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enhance rewrites draft content according to a natural-language
// instruction. Each known instruction maps to a fixed, ordered sequence of
// literal substitutions or a fixed appended block.
package enhance

import (
	"fmt"
	"strings"
)

// Known instructions. Matching is exact and case-insensitive.
const (
	ImproveWriting = "improve writing quality"
	FixGrammar     = "fix grammar and spelling"
	MakeConcise    = "make more concise"
	ExpandDetails  = "expand with more details"
	AddCitations   = "add academic citations"
)

// replacement is one literal, case-sensitive find-and-replace.
type replacement struct {
	old, new string
}

// Replacement sets are applied in order; later entries see the output of
// earlier ones.
var (
	improveReplacements = []replacement{
		{"very", "significantly"},
		{"good", "excellent"},
		{"bad", "problematic"},
		{"big", "substantial"},
		{"important", "critical"},
		{"shows", "demonstrates"},
		{"uses", "utilizes"},
		{"make", "develop"},
		{"has", "possesses"},
		{"but", "however"},
	}

	grammarReplacements = []replacement{
		{"i ", "I "},
		{"dont", "don't"},
		{"cant", "can't"},
		{"wont", "won't"},
		{"wasnt", "wasn't"},
		{"didnt", "didn't"},
		{"its ", "it's "},
		{"Im ", "I'm "},
		{"youre", "you're"},
		{"there ", "their "},
		{"thier", "their"},
		{"alot", "a lot"},
	}

	conciseReplacements = []replacement{
		{"in order to", "to"},
		{"due to the fact that", "because"},
		{"at this point in time", "now"},
		{"in the event that", "if"},
		{"for the purpose of", "for"},
		{"with regard to", "regarding"},
		{"in spite of the fact that", "although"},
		{"on the grounds that", "because"},
		{"in view of the fact that", "because"},
		{"on the basis of", "based on"},
		{"it should be noted that", "note that"},
		{"it is important to note that", "notably"},
		{"needless to say", ""},
	}
)

// Instructions returns the known instructions in a stable order.
func Instructions() []string {
	return []string{ImproveWriting, FixGrammar, MakeConcise, ExpandDetails, AddCitations}
}

// Lookup returns the known instruction selected by instruction, if any.
func Lookup(instruction string) (string, bool) {
	lower := strings.ToLower(instruction)
	for _, known := range Instructions() {
		if lower == known {
			return known, true
		}
	}
	return "", false
}

// Enhance applies the instruction to content. An unrecognized instruction
// leaves the content unchanged apart from a trailing italic annotation
// naming the instruction.
func Enhance(content, instruction string) string {
	switch strings.ToLower(instruction) {
	case ImproveWriting:
		return replaceAll(content, improveReplacements)
	case FixGrammar:
		return replaceAll(content, grammarReplacements)
	case MakeConcise:
		return replaceAll(content, conciseReplacements)
	case ExpandDetails:
		if strings.Contains(content, "function") || strings.Contains(content, "code") {
			return content + implementationDetails
		}
		return content + extendedAnalysis
	case AddCitations:
		return content + academicReferences
	default:
		return content + Annotation(instruction)
	}
}

// Annotation is the trailer appended for an unrecognized instruction.
func Annotation(instruction string) string {
	return fmt.Sprintf("\n\n*This content has been enhanced based on the instruction: \"%s\"*", instruction)
}

func replaceAll(content string, rs []replacement) string {
	for _, r := range rs {
		content = strings.ReplaceAll(content, r.old, r.new)
	}
	return content
}
