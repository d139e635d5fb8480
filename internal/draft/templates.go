// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draft

import (
	"fmt"
	"strings"
)

func programmingDraft(in input) string {
	a := in.analysis
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", in.title)
	fmt.Fprintf(&b, "## Assignment Overview\n%s\n\n", overview(in.context, overviewMedium))
	fmt.Fprintf(&b, "## Requirements\n%s\n\n", bulletList(a.Requirements))
	fmt.Fprintf(&b, "## Implementation Strategy\n%s\n\n", strings.Join(approachLines(a.SuggestedApproach), "\n"))
	b.WriteString(`## Implementation Plan
1. Understand the problem requirements completely
2. Design the solution architecture using appropriate programming patterns
3. Implement the core functionality with robust error handling
4. Create comprehensive tests to verify correctness
5. Document the code and solution approach

## Conclusion
This implementation plan addresses all the specified requirements while ensuring code quality, maintainability, and performance.

`)
	fmt.Fprintf(&b, "## Notes\n%s\n", a.CustomPrompt)
	return b.String()
}

func writingDraft(in input) string {
	a := in.analysis
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", in.title)
	fmt.Fprintf(&b, "## Assignment Overview\n%s\n\n", overview(in.context, overviewLong))
	fmt.Fprintf(&b, "## Requirements\n%s\n\n", bulletList(a.Requirements))
	fmt.Fprintf(&b, "## Outline\n%s\n\n", numberedHeaders(approachSteps(a.SuggestedApproach), nil))
	b.WriteString(`## Writing Approach
1. Conduct thorough research on the topic using credible sources
2. Develop a clear thesis statement that addresses the main requirements
3. Structure the essay with a logical flow of ideas
4. Support arguments with evidence and examples
5. Conclude with meaningful insights and implications

`)
	fmt.Fprintf(&b, "## Notes\n%s\n", a.CustomPrompt)
	return b.String()
}

func researchDraft(in input) string {
	a := in.analysis
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", in.title)
	fmt.Fprintf(&b, "## Abstract\n\nThis research paper will examine %s through a systematic investigation of the topic, "+
		"incorporating analysis of relevant data and literature. The research aims to address key questions about %s "+
		"and provide insights on their implications.\n\n",
		strings.ToLower(in.title), strings.Join(a.Topics, ", "))
	fmt.Fprintf(&b, "## Assignment Overview\n%s\n\n", overview(in.context, overviewLong))
	fmt.Fprintf(&b, "## Research Requirements\n%s\n\n", bulletList(a.Requirements))
	if sections := numberedHeaders(approachSteps(a.SuggestedApproach), nil); sections != "" {
		fmt.Fprintf(&b, "%s\n\n", sections)
	}
	b.WriteString(`## Methodology

This research will employ a mixed-methods approach combining:

- Literature review of relevant scholarly sources
- Data analysis from primary and secondary sources
- Comparative case studies
- Synthesis of findings into actionable recommendations

`)
	fmt.Fprintf(&b, `## Expected Outcomes

This research aims to contribute to the understanding of %s by:
1. Identifying key patterns and relationships
2. Establishing a theoretical framework for analysis
3. Providing evidence-based recommendations
4. Opening avenues for future research

`, in.title)
	fmt.Fprintf(&b, "## Notes\n%s\n", a.CustomPrompt)
	return b.String()
}

// firstSlide is the slide number of the first approach slide; slides 1 and 2
// are the title and overview slides.
const firstSlide = 3

func presentationDraft(in input) string {
	a := in.analysis
	steps := approachSteps(a.SuggestedApproach)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n## Presentation Outline\n\n", in.title)
	fmt.Fprintf(&b, "### Slide 1: Title Slide\n**%s**\n- Presenter Name\n- Date\n- Course Information\n\n", in.title)

	agenda := make([]string, len(steps))
	for i, s := range steps {
		agenda[i] = s.text
	}
	fmt.Fprintf(&b, "### Slide 2: Presentation Overview\n**Today's Agenda:**\n%s\n\n", bulletList(agenda))

	fmt.Fprintf(&b, "## Assignment Overview\n%s\n\n", overview(in.context, overviewShort))
	fmt.Fprintf(&b, "## Presentation Requirements\n%s\n\n", bulletList(a.Requirements))

	for i, s := range steps {
		fmt.Fprintf(&b, "### Slide %d: %s\n", firstSlide+i, s.text)
		b.WriteString(`**Key Points:**
- Topic exploration
- Supporting evidence
- Visual elements
- Discussion points

*[Speaker notes: Focus on clear explanation of concepts and engaging delivery.]*

`)
	}

	next := firstSlide + len(steps)
	fmt.Fprintf(&b, `### Slide %d: Key Takeaways
**Remember These Points:**
- Main insights from the presentation
- Critical analysis of the topic
- Real-world applications
- Future research directions

*[Speaker notes: Emphasize actionable insights participants can apply.]*

`, next)
	fmt.Fprintf(&b, `### Slide %d: Discussion Questions
**Let's Discuss:**
- What aspects of %s do you find most interesting?
- How can these concepts be applied in practice?
- What challenges might arise in implementation?
- How might future developments change our understanding?

*[Speaker notes: Prepare additional prompts if discussion is slow to start.]*

`, next+1, in.title)
	fmt.Fprintf(&b, `### Slide %d: Thank You
**Contact Information:**
- Email address
- References and resources for further reading

`, next+2)
	fmt.Fprintf(&b, "## Notes\n%s\n", a.CustomPrompt)
	return b.String()
}

func generalDraft(in input) string {
	a := in.analysis
	subject := strings.ToLower(in.title)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", in.title)
	fmt.Fprintf(&b, "## Assignment Overview\n%s\n\n", overview(in.context, overviewMedium))
	fmt.Fprintf(&b, "## Requirements\n%s\n\n", bulletList(a.Requirements))
	fmt.Fprintf(&b, "## Introduction\n\nThis assignment analyzes %s and its various dimensions. "+
		"The analysis covers key aspects, implications, and considerations related to this topic. "+
		"By evaluating current research and relevant factors, this work aims to provide a comprehensive "+
		"assessment of the subject matter.\n\n", subject)

	sections := numberedHeaders(approachSteps(a.SuggestedApproach), func(s step) string {
		if s.sub {
			return "This subsection explores key aspects of the topic in detail, providing analysis and examples.\n\n" +
				"- Important point 1 related to this subtopic\n" +
				"- Important point 2 related to this subtopic\n" +
				"- Supporting evidence and analysis\n" +
				"- Practical implications"
		}
		return fmt.Sprintf("This section provides an overview of %s, examining its significance and relationship to the overall topic.",
			strings.ToLower(s.text))
	})
	if sections != "" {
		fmt.Fprintf(&b, "%s\n\n", sections)
	}

	fmt.Fprintf(&b, "## Conclusion\n\nThis analysis has examined %s from multiple perspectives. "+
		"The key findings include the importance of understanding the interrelationships between various aspects of the topic, "+
		"the practical implications for relevant stakeholders, and potential future developments. "+
		"With appropriate approaches and methodologies, we can develop a more nuanced understanding of this subject "+
		"and its broader implications.\n\n", subject)
	fmt.Fprintf(&b, "## Notes\n%s\n", a.CustomPrompt)
	return b.String()
}
