// Package intent maps free-text chat utterances onto a closed set of
// intents. Classification is keyword-based and total: FREEFORM is the
// exhaustive fallback, so Classify never fails.
package intent

import (
	"strings"
	"unicode"
)

// Intent is the classified purpose of a chat utterance.
type Intent string

const (
	Greeting       Intent = "GREETING"
	SearchJobs     Intent = "SEARCH_JOBS"
	ResumeFeedback Intent = "RESUME_FEEDBACK"
	CareerAdvice   Intent = "CAREER_ADVICE"
	Freeform       Intent = "FREEFORM"
)

// None marks the absence of a prior intent (empty history).
const None Intent = ""

var (
	searchWords   = wordSet("job", "jobs", "search", "find", "opportunity", "opportunities", "opening", "openings", "position", "positions", "vacancy", "vacancies", "hiring")
	feedbackWords = wordSet("resume", "cv", "feedback", "improve", "review")
	adviceWords   = wordSet("advice", "career", "help", "suggest", "recommend", "guidance")
	greetingWords = wordSet("hello", "hi", "hey", "greetings", "howdy")
)

// Classify determines the intent of an utterance. prior is the intent of
// the previous turn, or None on the first turn; it only influences the
// greeting fallback. Matching is on whole tokens, so it is insensitive to
// case and punctuation, and calling it twice with identical inputs always
// yields the identical intent.
func Classify(utterance string, prior Intent) Intent {
	tokens := tokenize(utterance)

	switch {
	case containsAny(tokens, searchWords):
		return SearchJobs
	case containsAny(tokens, feedbackWords):
		return ResumeFeedback
	case containsAny(tokens, adviceWords):
		return CareerAdvice
	case containsAny(tokens, greetingWords):
		return Greeting
	case prior == None:
		// First turn with no recognizable signal reads as a greeting.
		return Greeting
	default:
		return Freeform
	}
}

func containsAny(tokens []string, words map[string]struct{}) bool {
	for _, tok := range tokens {
		if _, ok := words[tok]; ok {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
