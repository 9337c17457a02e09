package occupancy

import "strings"

// candidate is one narrative occupancy figure with its supporting sentence.
type candidate struct {
	score    int
	rate     float64
	sentence string
}

// scoreSentence weights a sentence by how strongly it reads as a current
// portfolio occupancy statement. Same-store language is the strongest
// signal; time anchors ("as of", "ended") and leasing vocabulary add to it.
func scoreSentence(sentence string) int {
	s := strings.ToLower(sentence)
	score := 0
	if strings.Contains(s, "same store") {
		score += 10
	}
	if strings.Contains(s, "portfolio") {
		score += 5
	}
	if strings.Contains(s, "as of") || strings.Contains(s, "ended") {
		score += 8
	}
	if strings.Contains(s, "leased") || strings.Contains(s, "occupancy") {
		score += 5
	}
	if strings.Contains(s, "decreased") || strings.Contains(s, "increased") {
		score += 3
	}
	if strings.Contains(s, "percent leased") {
		score += 7
	}
	return score
}

// disqualified reports whether the sentence quotes the percentage in a
// definitional or financial context.
func disqualified(sentence string) bool {
	s := strings.ToLower(sentence)
	for _, bad := range disqualifiers {
		if strings.Contains(s, bad) {
			return true
		}
	}
	return false
}

// bestCandidate picks the highest-scoring candidate, breaking ties in favor
// of the higher rate.
func bestCandidate(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score || (c.score == best.score && c.rate > best.rate) {
			best = c
		}
	}
	return best, true
}

// contextSentence selects the sentence to report alongside a matched rate.
// The first sentence of the context window is the default; a longer sentence
// among the first three that carries occupancy vocabulary replaces it.
func contextSentence(context string) string {
	sentences := sentenceSplit.Split(context, -1)
	if len(sentences) == 0 {
		return context
	}
	chosen := sentences[0] + "."
	limit := 3
	if len(sentences) < limit {
		limit = len(sentences)
	}
	for _, s := range sentences[:limit] {
		lower := strings.ToLower(s)
		if len(s) > 50 && (strings.Contains(lower, "occupancy") ||
			strings.Contains(lower, "leased") || strings.Contains(lower, "portfolio")) {
			chosen = s + "."
			break
		}
	}
	return strings.TrimSpace(chosen)
}
