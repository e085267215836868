// Package parallel contains the bounded ForEach loops used to evaluate sliding windows concurrently.
package parallel
