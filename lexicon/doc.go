// Package lexicon implements a dictionary sequence model for accent restoration.
// It learns, from a corpus of accented text, which accented forms each unaccented
// word takes and in which word context, and answers window predictions with the
// best scoring form of every word. Words with a single known form are resolved
// directly. A quaternary filter records which ambiguous words have a context able to
// overturn their most frequent form, the others skip context scoring.
package lexicon
