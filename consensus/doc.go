// Package consensus merges overlapping window predictions into one phrase by
// per-word majority vote.
package consensus
