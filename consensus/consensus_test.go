package consensus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTallyMajority(t *testing.T) {
	var tally Tally
	if _, ok := tally.Majority(); ok {
		t.Error("empty tally elected a word")
	}
	for _, w := range []string{"ban", "bạn", "bán", "bạn", "ban"} {
		tally.Add(w)
	}
	if got, _ := tally.Majority(); got != "ban" {
		t.Errorf("tie went to %q, want first seen %q", got, "ban")
	}
	tally.Add("bạn")
	if got, _ := tally.Majority(); got != "bạn" {
		t.Errorf("majority %q, want %q", got, "bạn")
	}
	if tally.Len() != 3 || tally.Votes("bạn") != 3 || tally.Votes("x") != 0 {
		t.Errorf("Len %d Votes %d", tally.Len(), tally.Votes("bạn"))
	}
	tally.Init()
	if tally.Len() != 0 {
		t.Error("Init did not reset")
	}
}

func TestVoteUnpadded(t *testing.T) {
	got := Vote([]string{"tôi yêu", "yêu bạn"}, 2)
	if got != "tôi yêu bạn" {
		t.Errorf("Vote = %q", got)
	}
}

func TestVotePadded(t *testing.T) {
	got := Vote([]string{" tôi", "tôi yêu", "yêu bạn", "bạn "}, 2)
	if got != "tôi yêu bạn" {
		t.Errorf("Vote = %q", got)
	}
}

func TestVoteMajoritySuppressesOutlier(t *testing.T) {
	guesses := []string{
		"  mot",
		" mốt hai",
		"một hai ba",
		"hai bà ",
		"ba  ",
	}
	// slot 2: mot, mốt, một is a tie, first seen wins
	// slot 4: ba, bà, ba
	got := Vote(guesses, 3)
	if got != "mot hai ba" {
		t.Errorf("Vote = %q", got)
	}
	guesses[0] = "  một"
	if got := Vote(guesses, 3); got != "một hai ba" {
		t.Errorf("Vote = %q", got)
	}
}

func TestVoteWordCountMismatch(t *testing.T) {
	// the second window returned an extra word, it votes into a shifted slot
	got := Vote([]string{"a b", "b c d", "c e"}, 2)
	if got != "a b c d" {
		t.Errorf("Vote = %q", got)
	}
	// words past the last slot are dropped without panicking
	if got := Vote([]string{"a b c d e f"}, 2); got != "a b" {
		t.Errorf("Vote = %q", got)
	}
}

func TestVoteTrims(t *testing.T) {
	if got := Vote([]string{"\x00 a", " b\x00"}, 2); got != "a b" {
		t.Errorf("Vote = %q", got)
	}
	if got := Vote([]string{"", ""}, 2); got != "" {
		t.Errorf("Vote = %q", got)
	}
	if got := Vote(nil, 3); got != "" {
		t.Errorf("Vote = %q", got)
	}
}

func TestVoteDeterministic(t *testing.T) {
	guesses := []string{" x", "y z", "z w", "w "}
	first := Vote(guesses, 2)
	for i := 0; i < 50; i++ {
		if got := Vote(guesses, 2); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}

func TestVoteTable(t *testing.T) {
	var cases = []struct {
		guesses []string
		n       int
	}{
		{[]string{" tôi", "tôi yêu", "yêu bạn", "bạn "}, 2},
		{[]string{"  xin", " xin chào", "xin chào bạn", "chào bạn ", "bạn  "}, 3},
		{[]string{"xin chào bạn"}, 5},
		{[]string{"a"}, 0},
	}
	var got []string
	for _, tc := range cases {
		got = append(got, Vote(tc.guesses, tc.n))
	}
	want := []string{"tôi yêu bạn", "xin chào bạn", "xin chào bạn", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Vote (-want +got):\n%s", diff)
	}
}
