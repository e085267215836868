// Package main restores diacritical accents in text using a lexicon model built from
// an accented corpus. Text is taken from -text, or read line by line from stdin.
package main
