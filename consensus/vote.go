package consensus

import "strings"

import "github.com/neurlang/accent/alphabet"

// Vote merges guesses, the predictions of consecutive n-word windows sliding by one
// word, into one phrase. Word w of guess i votes for slot i+w. Each slot elects its
// majority word and the elected words are joined in slot order.
//
// Guesses are split on single spaces, so the empty words of a padded window keep
// the real words at their offsets. A guess with more or fewer words than n simply
// votes into shifted slots and words past the last slot are dropped.
func Vote(guesses []string, n int) string {
	if len(guesses) == 0 {
		return ""
	}
	if n < 1 {
		n = 1
	}
	var slots = make([]Tally, len(guesses)+n-1)
	for i, guess := range guesses {
		for w, word := range strings.Split(guess, " ") {
			if i+w >= len(slots) {
				break
			}
			slots[i+w].Add(word)
		}
	}
	var elected = make([]string, 0, len(slots))
	for i := range slots {
		if word, ok := slots[i].Majority(); ok && word != "" {
			elected = append(elected, word)
		}
	}
	return strings.Trim(strings.Join(elected, " "), string(alphabet.Pad)+" ")
}
