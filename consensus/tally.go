package consensus

// Tally counts votes for candidate words and returns the majority vote.
// Candidates keep their first-seen order, which decides ties.
type Tally struct {
	words []string
	votes []uint64
	index map[string]int
}

// Init resets the tally to be empty
func (t *Tally) Init() {
	t.words = nil
	t.votes = nil
	t.index = make(map[string]int)
}

// Add votes once for word
func (t *Tally) Add(word string) {
	if t.index == nil {
		t.Init()
	}
	if i, ok := t.index[word]; ok {
		t.votes[i]++
		return
	}
	t.index[word] = len(t.words)
	t.words = append(t.words, word)
	t.votes = append(t.votes, 1)
}

// Len is the number of distinct candidates
func (t *Tally) Len() int {
	return len(t.words)
}

// Votes reports the number of votes for word
func (t *Tally) Votes(word string) uint64 {
	if i, ok := t.index[word]; ok {
		return t.votes[i]
	}
	return 0
}

// Majority returns the most voted word, the earliest added one on ties.
// It reports false on an empty tally.
func (t *Tally) Majority() (string, bool) {
	if len(t.words) == 0 {
		return "", false
	}
	var best int
	for i := range t.votes {
		if t.votes[i] > t.votes[best] {
			best = i
		}
	}
	return t.words[best], true
}
