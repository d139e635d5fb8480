// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strings"
	"unicode"
)

const summarySentences = 3

// bulletMarkers are the characters that open a bullet line.
var bulletMarkers = []string{"•", "-", "*"}

// numberedPattern matches a numbered list line ("1. text") and captures the
// text after the marker.
var numberedPattern = regexp.MustCompile(`^\s*\d+\.(.*)$`)

// sentenceBreak splits text into sentences on runs of terminal punctuation.
var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// requirementPhrases mark a sentence as a requirement (case-insensitive).
var requirementPhrases = []string{"must", "should", "need to", "required", "minimum", "at least"}

// ExtractRequirements pulls requirement fragments out of a description. The
// stages are tried in order and the first non-empty stage is returned on its
// own; results of different stages are never merged:
//
//  1. bullet lines (•, -, * after optional indentation)
//  2. numbered lines (N. after optional indentation)
//  3. sentences containing a requirement phrase
//  4. the first three sentences
//
// The result is empty only when the description contains no sentence text.
func ExtractRequirements(description string) []string {
	if reqs := bulletLines(description); len(reqs) > 0 {
		return reqs
	}
	if reqs := numberedLines(description); len(reqs) > 0 {
		return reqs
	}
	sentences := splitSentences(description)
	if reqs := phraseSentences(sentences); len(reqs) > 0 {
		return reqs
	}
	if len(sentences) > summarySentences {
		sentences = sentences[:summarySentences]
	}
	return sentences
}

// bulletLines returns the trimmed text following the bullet marker of every
// bullet line, in order.
func bulletLines(description string) []string {
	var reqs []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		for _, marker := range bulletMarkers {
			if !strings.HasPrefix(line, marker) {
				continue
			}
			if text := strings.TrimSpace(line[len(marker):]); text != "" {
				reqs = append(reqs, text)
			}
			break
		}
	}
	return reqs
}

// numberedLines returns the trimmed text following the number marker of
// every numbered line, in order.
func numberedLines(description string) []string {
	var reqs []string
	for _, line := range strings.Split(description, "\n") {
		m := numberedPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if text := strings.TrimSpace(m[1]); text != "" {
			reqs = append(reqs, text)
		}
	}
	return reqs
}

// splitSentences returns the trimmed, non-empty sentences of text.
func splitSentences(text string) []string {
	sentences := []string{}
	for _, s := range sentenceBreak.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func phraseSentences(sentences []string) []string {
	var reqs []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, phrase := range requirementPhrases {
			if strings.Contains(lower, phrase) {
				reqs = append(reqs, s)
				break
			}
		}
	}
	return reqs
}
