package utils

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func ToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("Unable to covert string to number")
	}

	return n
}

// Lines yields every line of s without its "\n" or "\r\n" terminator.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}

func Sum[T constraints.Integer](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Product of no values is 1.
func Product[T constraints.Integer](values ...T) T {
	var total T = 1
	for _, v := range values {
		total *= v
	}
	return total
}
