// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft synthesizes a Markdown draft from an assignment analysis.
// A generator is selected by assignment type; each generator is a pure
// string-template function over the description, the optional external
// content, and the analysis.
package draft

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/assignment-engine/pkg/types"
)

const (
	// ExternalCitation is the single citation recorded when external
	// content contributed to a draft.
	ExternalCitation = "External resource cited in this draft"

	// Notes is the provenance disclaimer attached to every draft.
	Notes = "This draft has been generated based on the assignment requirements. Please review and personalize it as needed."
)

// Overview budgets, in runes, for the context shown under Assignment Overview.
const (
	overviewShort  = 150
	overviewMedium = 200
	overviewLong   = 300
)

// stepNumberPattern matches a leading "N." step marker.
var stepNumberPattern = regexp.MustCompile(`^\d+\.\s*`)

// generator renders the Markdown body for one family of assignment types.
type generator func(in input) string

// input is the shared context every generator renders from.
type input struct {
	context  string
	title    string
	analysis types.AnalysisResult
}

// Generate builds the draft for an analyzed assignment. When external is
// non-nil its text is folded into the overview context and the draft
// carries ExternalCitation.
func Generate(description string, analysis types.AnalysisResult, external *string) types.DraftResult {
	in := input{
		context:  buildContext(description, external),
		title:    draftTitle(analysis),
		analysis: analysis,
	}

	result := types.DraftResult{
		Content: generatorFor(analysis.AssignmentType)(in),
		Notes:   Notes,
	}
	if external != nil {
		result.Citations = []string{ExternalCitation}
	}
	return result
}

// generatorFor selects the template for an assignment type. Quiz/Test has a
// suggested approach of its own but no dedicated draft template; it renders
// with the General template, as does any unknown label.
func generatorFor(t types.AssignmentType) generator {
	switch t {
	case types.TypeProgramming:
		return programmingDraft
	case types.TypeWriting:
		return writingDraft
	case types.TypeResearch:
		return researchDraft
	case types.TypePresentation:
		return presentationDraft
	case types.TypeQuizTest, types.TypeGeneral:
		return generalDraft
	default:
		return generalDraft
	}
}

// buildContext combines the description with external content under
// separate labels. Without external content the description is used as is.
func buildContext(description string, external *string) string {
	if external == nil {
		return description
	}
	return fmt.Sprintf("Assignment Details:\n%s\n\nAdditional Context:\n%s", description, *external)
}

// draftTitle is the first topic, or the assignment type when there are no
// topics.
func draftTitle(a types.AnalysisResult) string {
	if len(a.Topics) > 0 {
		return a.Topics[0]
	}
	return string(a.AssignmentType)
}

// overview truncates s to at most n runes and appends an ellipsis. The
// ellipsis is always present: the overview is a summary, not the full text.
func overview(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

// bulletList renders items as a Markdown bullet list.
func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// approachLines returns the trimmed, non-empty lines of a suggested approach.
func approachLines(approach string) []string {
	var lines []string
	for _, line := range strings.Split(approach, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// step is one line of a suggested approach, re-parsed for header rendering.
type step struct {
	text string
	sub  bool
}

// approachSteps re-parses approach lines into sections and subsections. A
// line starting with "- " is a subsection of the preceding section; any
// other line is a section, stripped of its own "N." marker so the caller
// can number it.
func approachSteps(approach string) []step {
	lines := approachLines(approach)
	steps := make([]step, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			steps = append(steps, step{text: strings.TrimSpace(line[2:]), sub: true})
			continue
		}
		steps = append(steps, step{text: stepNumberPattern.ReplaceAllString(line, "")})
	}
	return steps
}

// numberedHeaders renders steps as "## N. text" sections and "### N.K text"
// subsections. body, when non-nil, supplies the paragraph written under
// each header.
func numberedHeaders(steps []step, body func(s step) string) string {
	var blocks []string
	section, sub := 0, 0
	for _, s := range steps {
		var header string
		if s.sub {
			sub++
			header = fmt.Sprintf("### %d.%d %s", section, sub, s.text)
		} else {
			section++
			sub = 0
			header = fmt.Sprintf("## %d. %s", section, s.text)
		}
		if body != nil {
			header += "\n\n" + body(s)
		}
		blocks = append(blocks, header)
	}
	return strings.Join(blocks, "\n\n")
}
