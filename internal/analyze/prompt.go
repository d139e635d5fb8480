// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/assignment-engine/pkg/types"
)

// SuggestedApproach returns the fixed numbered plan for an assignment type.
// Quiz/Test has its own plan; General and any unknown label share the
// default plan.
func SuggestedApproach(t types.AssignmentType) string {
	switch t {
	case types.TypeWriting:
		return `1. Start by outlining your main arguments
2. Create a strong thesis statement
3. Develop each point with evidence and analysis
4. Write a compelling introduction and conclusion
5. Review for clarity, coherence, and grammar`
	case types.TypeProgramming:
		return `1. Break down the problem into smaller components
2. Plan your data structures and algorithms
3. Implement the core functionality first
4. Add error handling and edge case management
5. Test thoroughly with various inputs
6. Document your code and approach`
	case types.TypeResearch:
		return `1. Gather sources and relevant research
2. Analyze different perspectives on the topic
3. Organize your findings into logical sections
4. Develop your own analysis based on the research
5. Cite sources properly and create a bibliography`
	case types.TypeQuizTest:
		return `1. Review key concepts and definitions
2. Practice with similar problems or questions
3. Identify patterns in question types
4. Create a structured approach for each question type
5. Allocate time based on point values`
	case types.TypePresentation:
		return `1. Define your key message and takeaways
2. Structure content with a clear beginning, middle, and end
3. Include visual elements to support your points
4. Prepare speaking notes and practice delivery
5. Anticipate questions and prepare responses`
	default:
		return `1. Understand all requirements thoroughly
2. Break down the assignment into manageable parts
3. Create a structured outline addressing each requirement
4. Develop high-quality content for each section
5. Review against the original requirements`
	}
}

// typeGuidance returns the type-specific block appended to the custom
// prompt. Quiz/Test has no dedicated guidance and uses the default block.
func typeGuidance(t types.AssignmentType) string {
	switch t {
	case types.TypeWriting:
		return `Structure your response with a clear introduction, well-developed body paragraphs, and a conclusion.
Use formal academic language and avoid colloquialisms.
Include a thesis statement in the introduction that previews your main arguments.
Each paragraph should have a clear topic sentence and supporting evidence.`
	case types.TypeProgramming:
		return `Include well-commented code examples that address the requirements.
Explain your approach and the logic behind your code.
Consider edge cases and error handling in your implementation.
Include explanations of any algorithms or data structures you use.`
	case types.TypeResearch:
		return `Present a balanced view of the topic, considering multiple perspectives.
Cite relevant sources and research to support your arguments.
Structure your response with clear sections addressing different aspects of the topic.
Conclude with implications or recommendations based on your research.`
	case types.TypePresentation:
		return `Create a clear structure with an introduction, main points, and conclusion.
Include visual elements or descriptions where appropriate.
Use engaging language that would capture the audience's attention.
Include speaker notes or additional context where needed.`
	default:
		return `Structure your response clearly with appropriate headings and sections.
Balance theoretical knowledge with practical applications.
Include specific examples that demonstrate understanding of the concepts.`
	}
}

// customPromptTmpl renders the generic preamble followed by the guidance for
// the assignment type.
var customPromptTmpl = template.Must(template.New("custom-prompt").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`You are a knowledgeable assistant helping a student complete an assignment.
Assignment type: {{.Type}}
Topics: {{join .Topics ", "}}

Key requirements:
{{range .Requirements}}- {{.}}
{{end}}
Create a well-structured, thoughtful response that addresses all requirements.
Write in a clear, academic style that demonstrates understanding of the subject.
Provide specific examples and evidence to support your points.
Ensure the work is original and tailored to the specific assignment.

{{.Guidance}}
`))

type customPromptData struct {
	Type         types.AssignmentType
	Topics       []string
	Requirements []string
	Guidance     string
}

// CustomPrompt builds the generation prompt for an analysis: a preamble
// restating the type, topics, and requirements, then the guidance block for
// the type.
func CustomPrompt(t types.AssignmentType, requirements, topics []string) string {
	var buf bytes.Buffer
	data := customPromptData{
		Type:         t,
		Topics:       topics,
		Requirements: requirements,
		Guidance:     typeGuidance(t),
	}
	if err := customPromptTmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("rendering custom prompt: %v", err))
	}
	return buf.String()
}
