// Package main evaluates accent restoration. Every line of an accented reference file
// is stripped of its accents, restored again and compared word by word, and the word
// success rate is printed.
package main
