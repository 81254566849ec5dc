package aoc2023day02

import (
	"strconv"
	"strings"
)

// ParseGames parses one game per line. A single trailing line ending is
// allowed; anything else that does not match the grammar fails the whole parse.
//
//	games  := game (line_ending game)* line_ending?
//	game   := "Game " id ": " round ("; " round)*
//	round  := cube (", " cube)*
//	cube   := amount " " color
func ParseGames(input string) ([]Game, error) {
	p := newParser(input)

	games := []Game{}
	for {
		game, err := p.game()
		if err != nil {
			return nil, err
		}
		games = append(games, game)

		if !p.lineEnding() || p.atEnd() {
			break
		}
	}

	if !p.atEnd() {
		return nil, p.fail("line ending")
	}
	return games, nil
}

// ParseGame parses exactly one game line.
func ParseGame(line string) (Game, error) {
	p := newParser(line)
	game, err := p.game()
	if err != nil {
		return Game{}, err
	}
	if !p.atEnd() {
		return Game{}, p.fail("end of line")
	}
	return game, nil
}

type parser struct {
	src  string
	pos  int
	line int
	col  int
}

func newParser(src string) *parser {
	return &parser{src: src, line: 1, col: 1}
}

func (p *parser) game() (Game, error) {
	if err := p.expect("Game "); err != nil {
		return Game{}, err
	}
	start := p.position()
	id, err := p.digits("game id")
	if err != nil {
		return Game{}, err
	}
	if _, err := strconv.Atoi(id); err != nil {
		return Game{}, &ParseError{Pos: start, Expected: "game id within int range", Remaining: p.src[start.Offset:]}
	}
	if err := p.expect(": "); err != nil {
		return Game{}, err
	}

	var rounds []Round
	for {
		round, err := p.round()
		if err != nil {
			return Game{}, err
		}
		rounds = append(rounds, round)
		if !p.tag("; ") {
			break
		}
	}
	return Game{ID: id, Rounds: rounds}, nil
}

func (p *parser) round() (Round, error) {
	var round Round
	for {
		cube, err := p.cube()
		if err != nil {
			return nil, err
		}
		round = append(round, cube)
		if !p.tag(", ") {
			break
		}
	}
	return round, nil
}

func (p *parser) cube() (Cube, error) {
	start := p.position()
	digits, err := p.digits("cube amount")
	if err != nil {
		return Cube{}, err
	}
	amount, err := strconv.Atoi(digits)
	if err != nil {
		return Cube{}, &ParseError{Pos: start, Expected: "cube amount within int range", Remaining: p.src[start.Offset:]}
	}
	if err := p.expect(" "); err != nil {
		return Cube{}, err
	}
	color, err := p.alpha("cube color")
	if err != nil {
		return Cube{}, err
	}
	return Cube{Color: color, Amount: amount}, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.src)
}

func (p *parser) rest() string {
	return p.src[p.pos:]
}

func (p *parser) position() Position {
	return Position{Line: p.line, Column: p.col, Offset: p.pos}
}

func (p *parser) fail(expected string) *ParseError {
	return &ParseError{Pos: p.position(), Expected: expected, Remaining: p.rest()}
}

// tag consumes s if the input continues with it.
func (p *parser) tag(s string) bool {
	if !strings.HasPrefix(p.rest(), s) {
		return false
	}
	p.advance(len(s))
	return true
}

func (p *parser) expect(s string) error {
	if !p.tag(s) {
		return p.fail(strconv.Quote(s))
	}
	return nil
}

func (p *parser) lineEnding() bool {
	return p.tag("\n") || p.tag("\r\n")
}

func (p *parser) digits(what string) (string, error) {
	return p.takeWhile(what, func(c byte) bool { return c >= '0' && c <= '9' })
}

func (p *parser) alpha(what string) (string, error) {
	return p.takeWhile(what, func(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' })
}

// takeWhile consumes one or more bytes accepted by ok.
func (p *parser) takeWhile(what string, ok func(byte) bool) (string, error) {
	n := 0
	for p.pos+n < len(p.src) && ok(p.src[p.pos+n]) {
		n++
	}
	if n == 0 {
		return "", p.fail(what)
	}
	s := p.src[p.pos : p.pos+n]
	p.advance(n)
	return s, nil
}

func (p *parser) advance(n int) {
	for _, c := range []byte(p.src[p.pos : p.pos+n]) {
		if c == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
	p.pos += n
}
