package grammar

import (
	"fmt"
	"strings"
)

// Parse reads a grammar in line format, using the default empty symbol.
//
//    S -> a S b | c     # comments start with '#'
//    A -> ε
//
// Heads and bodies are separated by "->", "→" or "::=". Symbols within a body
// are separated by white space. A symbol is a non-terminal if it occurs as the
// head of a line, otherwise it is a terminal. An empty alternative denotes an
// empty body, as does the empty symbol on its own.
func Parse(gname string, text string) (*Grammar, error) {
	return ParseWithEmpty(gname, text, DefaultEmpty)
}

// ParseWithEmpty reads a grammar in line format (see Parse), using a given
// empty symbol.
func ParseWithEmpty(gname string, text string, empty Symbol) (*Grammar, error) {
	return ReadLines(gname, strings.Split(text, "\n"), empty)
}

type ruleLine struct {
	lineno int
	head   string
	alts   [][]string
}

// ReadLines reads a grammar from a list of lines, each in the format
// described for Parse.
func ReadLines(gname string, lines []string, empty Symbol) (*Grammar, error) {
	rules := make([]ruleLine, 0, len(lines))
	heads := make(map[string]bool)
	for n, line := range lines {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		head, rhs, ok := splitRule(line)
		if !ok {
			return nil, fmt.Errorf("%w %s: line %d: missing '->' in %q", ErrInvalidGrammar,
				gname, n+1, line)
		}
		if len(strings.Fields(head)) != 1 {
			return nil, fmt.Errorf("%w %s: line %d: rule head must be a single symbol, is %q",
				ErrInvalidGrammar, gname, n+1, head)
		}
		r := ruleLine{lineno: n + 1, head: head}
		for _, alt := range strings.Split(rhs, "|") {
			r.alts = append(r.alts, strings.Fields(alt))
		}
		heads[head] = true
		rules = append(rules, r)
	}
	tracer().Debugf("read %d rule lines for grammar %s", len(rules), gname)
	b := NewGrammarBuilder(gname).EmptySymbol(string(empty))
	for _, r := range rules {
		for _, alt := range r.alts {
			rb := b.LHS(r.head)
			if len(alt) == 0 {
				rb.Epsilon()
				continue
			}
			for _, sym := range alt {
				if heads[sym] {
					rb.N(sym)
				} else {
					rb.T(sym)
				}
			}
			rb.End()
		}
	}
	return b.Grammar()
}

func splitRule(line string) (head string, rhs string, ok bool) {
	for _, arrow := range []string{"::=", "->", "→"} {
		if i := strings.Index(line, arrow); i >= 0 {
			return strings.TrimSpace(line[:i]), line[i+len(arrow):], true
		}
	}
	return "", "", false
}
