// Package dice parses and evaluates the randomized value strings used by
// object definitions: flat integers ("7"), uniform ranges ("10-20"), dice
// terms ("2d6"), and sums of those ("2d6+3", "1d4-1").
package dice

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	qerr "github.com/hindren/qudprops/internal/errors"
)

type termKind int

const (
	termConstant termKind = iota
	termRange
	termDice
)

type term struct {
	kind  termKind
	value int // constant
	low   int // range low
	high  int // range high
	count int // dice count
	sides int // dice sides
}

var rangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// Expression is an immutable parsed dice string. The zero value is not
// usable; construct with Parse.
type Expression struct {
	source string
	terms  []term
}

// Parse parses a dice string. Callers are expected to pass strings that
// came out of the definition database; a string that cannot be parsed is a
// data error and yields a malformed_expression error.
func Parse(s string) (*Expression, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, qerr.MalformedExpression("empty dice expression")
	}

	expr := &Expression{source: trimmed}
	for _, chunk := range strings.Split(trimmed, "+") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			return nil, qerr.MalformedExpressionf("empty term in %q", s)
		}

		terms, err := parseChunk(chunk, s)
		if err != nil {
			return nil, err
		}
		expr.terms = append(expr.terms, terms...)
	}

	return expr, nil
}

// parseChunk handles one '+'-separated piece, which is either a dice term
// with optional subtracted constants ("2d6-1"), a uniform range ("10-20"),
// or a signed integer.
func parseChunk(chunk, source string) ([]term, error) {
	if strings.ContainsRune(chunk, 'd') {
		pieces := strings.Split(chunk, "-")
		count, sides, err := parseDice(pieces[0], source)
		if err != nil {
			return nil, err
		}

		terms := []term{{kind: termDice, count: count, sides: sides}}
		for _, piece := range pieces[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(piece))
			if err != nil {
				return nil, qerr.MalformedExpressionf("bad modifier %q in %q", piece, source)
			}
			terms = append(terms, term{kind: termConstant, value: -n})
		}
		return terms, nil
	}

	if m := rangePattern.FindStringSubmatch(chunk); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		if low > high {
			return nil, qerr.MalformedExpressionf("inverted range %q in %q", chunk, source)
		}
		return []term{{kind: termRange, low: low, high: high}}, nil
	}

	n, err := strconv.Atoi(chunk)
	if err != nil {
		return nil, qerr.MalformedExpressionf("bad term %q in %q", chunk, source)
	}
	return []term{{kind: termConstant, value: n}}, nil
}

func parseDice(piece, source string) (count, sides int, err error) {
	parts := strings.SplitN(piece, "d", 2)
	if len(parts) != 2 {
		return 0, 0, qerr.MalformedExpressionf("bad dice term %q in %q", piece, source)
	}

	countStr := strings.TrimSpace(parts[0])
	if countStr == "" {
		countStr = "1" // "d6" rolls one die
	}
	count, err = strconv.Atoi(countStr)
	if err != nil || count < 1 {
		return 0, 0, qerr.MalformedExpressionf("bad dice count in %q", source)
	}

	sides, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || sides < 1 {
		return 0, 0, qerr.MalformedExpressionf("bad dice sides in %q", source)
	}

	return count, sides, nil
}

// Minimum returns the lowest value the expression can produce.
func (e *Expression) Minimum() int {
	total := 0
	for _, t := range e.terms {
		switch t.kind {
		case termConstant:
			total += t.value
		case termRange:
			total += t.low
		case termDice:
			total += t.count
		}
	}
	return total
}

// Maximum returns the highest value the expression can produce.
func (e *Expression) Maximum() int {
	total := 0
	for _, t := range e.terms {
		switch t.kind {
		case termConstant:
			total += t.value
		case termRange:
			total += t.high
		case termDice:
			total += t.count * t.sides
		}
	}
	return total
}

// Average returns the expected value of the expression.
func (e *Expression) Average() float64 {
	total := 0.0
	for _, t := range e.terms {
		switch t.kind {
		case termConstant:
			total += float64(t.value)
		case termRange:
			total += float64(t.low+t.high) / 2.0
		case termDice:
			total += float64(t.count) * float64(t.sides+1) / 2.0
		}
	}
	return total
}

// Roll draws a random value from the expression using rng.
func (e *Expression) Roll(rng *rand.Rand) int {
	total := 0
	for _, t := range e.terms {
		switch t.kind {
		case termConstant:
			total += t.value
		case termRange:
			total += t.low + rng.Intn(t.high-t.low+1)
		case termDice:
			for i := 0; i < t.count; i++ {
				total += rng.Intn(t.sides) + 1
			}
		}
	}
	return total
}

// String returns the original expression text.
func (e *Expression) String() string {
	return e.source
}
