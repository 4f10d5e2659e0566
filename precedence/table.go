package precedence

import (
	"fmt"
	"io"

	"github.com/npillmayer/weakprec/grammar"
	"github.com/npillmayer/weakprec/precedence/sparse"
)

// Action is an entry of a shift/reduce table.
type Action int32

// Actions for parser action tables.
const (
	Undefined Action = iota // no relation between stack symbol and lookahead
	Shift                   // stack symbol < lookahead or stack symbol = lookahead
	Reduce                  // stack symbol > lookahead
)

func (a Action) String() string {
	switch a {
	case Shift:
		return "S"
	case Reduce:
		return "R"
	}
	return ""
}

// Conflict is a table position holding a shift relation as well as a reduce
// relation. The table resolves it to Shift.
type Conflict struct {
	Row, Col grammar.Symbol
}

type cell struct {
	row, col int
}

// Table is a shift/reduce table for a weak precedence parser. Rows are the
// non-terminals, terminals and the end-of-input marker; columns are the
// terminals and the end-of-input marker.
//
// A table is immutable after construction and may be shared between
// parsers running concurrently.
type Table struct {
	rows, cols   []grammar.Symbol
	rowIndex     map[grammar.Symbol]int
	colIndex     map[grammar.Symbol]int
	matrix       *sparse.IntMatrix
	epsilon      map[cell]*grammar.Production
	conflicts    []Conflict
	end          grammar.Symbol
	fingerprint  string // of grammar and end marker
	HasConflicts bool
}

// BuildTable constructs the shift/reduce table from a set of relations:
//
//     (X < t) or (X = t)  ⇒  Shift
//     (X > t)             ⇒  Reduce
//     otherwise           ⇒  Undefined
//
// Shift is checked first. If a position qualifies for Shift and Reduce, the
// grammar is not a weak precedence grammar; the position is set to Shift and
// recorded as a conflict.
//
// Additionally, for every undefined position (X, t) the table records the first
// epsilon production A → ε (in declaration order) with (X < A) or (X = A) and
// a defined action for (A, t). The parser uses it to insert empty derivations.
func BuildTable(g Grammar, R *RelationSet, end grammar.Symbol) *Table {
	t := &Table{
		rowIndex: make(map[grammar.Symbol]int),
		colIndex: make(map[grammar.Symbol]int),
		epsilon:  make(map[cell]*grammar.Production),
		end:      end,
	}
	t.fingerprint, _ = grammarFingerprint(g, end)
	for _, A := range g.Terminals() {
		if !g.IsEmpty(A) {
			t.addColumn(A)
		}
	}
	t.addColumn(end)
	for _, N := range g.NonTerminals() {
		t.addRow(N)
	}
	for _, A := range t.cols {
		t.addRow(A)
	}
	tracer().Infof("shift/reduce table of size %d x %d", len(t.rows), len(t.cols))
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.cols), int32(Undefined))
	for i, X := range t.rows {
		for j, A := range t.cols {
			shift, reduce := R.Yields(X, A), R.Has(X, Greater, A)
			switch {
			case shift && reduce:
				tracer().Debugf("shift/reduce conflict at (%s, %s)", X, A)
				t.matrix.Add(i, j, int32(Shift))
				t.matrix.Add(i, j, int32(Reduce))
				t.conflicts = append(t.conflicts, Conflict{Row: X, Col: A})
			case shift:
				t.matrix.Set(i, j, int32(Shift))
			case reduce:
				t.matrix.Set(i, j, int32(Reduce))
			}
		}
	}
	t.HasConflicts = len(t.conflicts) > 0
	t.findEpsilonInsertions(g, R)
	checkBodies(g)
	return t
}

func (t *Table) addRow(sym grammar.Symbol) {
	if _, ok := t.rowIndex[sym]; !ok {
		t.rowIndex[sym] = len(t.rows)
		t.rows = append(t.rows, sym)
	}
}

func (t *Table) addColumn(sym grammar.Symbol) {
	if _, ok := t.colIndex[sym]; !ok {
		t.colIndex[sym] = len(t.cols)
		t.cols = append(t.cols, sym)
	}
}

func (t *Table) findEpsilonInsertions(g Grammar, R *RelationSet) {
	var epsilons []*grammar.Production
	for _, p := range g.Productions() {
		if len(p.Body) == 0 {
			epsilons = append(epsilons, p)
		}
	}
	if len(epsilons) == 0 {
		return
	}
	for i, X := range t.rows {
		for j, A := range t.cols {
			if t.matrix.Value(i, j) != int32(Undefined) {
				continue
			}
			for _, p := range epsilons {
				if R.Yields(X, p.Head) && t.Action(p.Head, A) != Undefined {
					tracer().Debugf("(%s, %s) inserts %v", X, A, p)
					t.epsilon[cell{i, j}] = p
					break
				}
			}
		}
	}
}

// Productions with identical bodies are resolved by declaration order during
// reduction. We make this visible in the trace.
func checkBodies(g Grammar) {
	seen := make(map[string]*grammar.Production)
	for _, p := range g.Productions() {
		if len(p.Body) == 0 {
			continue
		}
		if q, ok := seen[p.Key()]; ok {
			tracer().P("body", p.Key()).Errorf("%v shadowed by %v", p, q)
			continue
		}
		seen[p.Key()] = p
	}
}

// Action returns the table entry for a stack symbol (row) and a lookahead
// symbol (column). Symbols outside of the table yield Undefined.
func (t *Table) Action(row, col grammar.Symbol) Action {
	i, ok := t.rowIndex[row]
	if !ok {
		return Undefined
	}
	j, ok := t.colIndex[col]
	if !ok {
		return Undefined
	}
	return Action(t.matrix.Value(i, j))
}

// Epsilon returns the epsilon production to insert for a stack symbol (row) and
// a lookahead symbol (column), if any. Only undefined positions have one.
func (t *Table) Epsilon(row, col grammar.Symbol) (*grammar.Production, bool) {
	i, ok := t.rowIndex[row]
	if !ok {
		return nil, false
	}
	j, ok := t.colIndex[col]
	if !ok {
		return nil, false
	}
	p, ok := t.epsilon[cell{i, j}]
	return p, ok
}

// Rows returns the row symbols of t. Clients must not modify the slice.
func (t *Table) Rows() []grammar.Symbol {
	return t.rows
}

// Columns returns the column symbols of t. Clients must not modify the slice.
func (t *Table) Columns() []grammar.Symbol {
	return t.cols
}

// End returns the end-of-input marker t has been built for.
func (t *Table) End() grammar.Symbol {
	return t.end
}

// Conflicts returns the positions where a shift relation and a reduce relation
// collide.
func (t *Table) Conflicts() []Conflict {
	return t.conflicts
}

// Entry returns a printable form of the table entry at (row, col): "S", "R",
// "S/R" for a conflict, "ε:A" for an epsilon insertion, or "" if undefined.
func (t *Table) Entry(row, col grammar.Symbol) string {
	i, iok := t.rowIndex[row]
	j, jok := t.colIndex[col]
	if !iok || !jok {
		return ""
	}
	a, b := t.matrix.Values(i, j)
	if Action(a) == Undefined {
		if p, ok := t.epsilon[cell{i, j}]; ok {
			return "ε:" + string(p.Head)
		}
		return ""
	}
	if b != t.matrix.NullValue() {
		return fmt.Sprintf("%s/%s", Action(a), Action(b))
	}
	return Action(a).String()
}

// Dump is a debugging helper.
func (t *Table) Dump() {
	tracer().Debugf("--- shift/reduce table ---------------------------")
	t.matrix.Each(func(i, j int, a, b int32) {
		tracer().Debugf("(%s, %s) = %s", t.rows[i], t.cols[j], t.Entry(t.rows[i], t.cols[j]))
	})
	tracer().Debugf("-------------------------------------------------")
}

// TableAsHTML exports a shift/reduce table in HTML-format.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("table not yet created, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("shift/reduce table with %d entries<p>", t.matrix.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range t.cols {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", A))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for _, X := range t.rows {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", X))
		for _, A := range t.cols {
			if td = t.Entry(X, A); td == "" {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
