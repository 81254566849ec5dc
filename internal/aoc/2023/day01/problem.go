package aoc2023day01

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/povarna/advent-of-code-2023/internal/utils"
)

const Sample1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const Sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

var words = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

var tokenReg = regexp.MustCompile(`\d|one|two|three|four|five|six|seven|eight|nine`)

// Part1 sums the calibration values built from the digit characters of each line.
func Part1(input string) string {
	return strconv.Itoa(sumLines(input, Digits))
}

// Part2 is Part1 with spelled-out digits counted as well.
func Part2(input string) string {
	return strconv.Itoa(sumLines(input, Tokens))
}

func sumLines(input string, extract func(string) []int) int {
	values := []int{}
	for line := range utils.Lines(input) {
		if !qualifies(line) {
			continue
		}
		values = append(values, calibrationValue(extract(line)))
	}
	return utils.Sum(values...)
}

// Digits returns every decimal digit character of line, in order. A run like
// "12" gives 1 and 2, never 12.
func Digits(line string) []int {
	acc := []int{}
	for _, r := range line {
		if r >= '0' && r <= '9' {
			acc = append(acc, int(r-'0'))
		}
	}
	return acc
}

// Tokens returns the values of digits and spelled-out numbers in line in order of
// appearance. Overlapping spellings are all reported: "twone" gives [2 1].
func Tokens(line string) []int {
	acc := []int{}
	remaining := line
	for {
		loc := tokenReg.FindStringIndex(remaining)
		if loc == nil {
			break
		}
		acc = append(acc, tokenValue(remaining[loc[0]:loc[1]]))

		// step past the first character of the match only
		_, width := utf8.DecodeRuneInString(remaining[loc[0]:])
		remaining = remaining[loc[0]+width:]
	}
	return acc
}

func tokenValue(token string) int {
	if v, ok := words[token]; ok {
		return v
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return n
}

func calibrationValue(values []int) int {
	if len(values) == 0 {
		return 0
	}
	first, last := values[0], values[len(values)-1]
	return first*10 + last
}

func qualifies(line string) bool {
	return strings.IndexFunc(line, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}
