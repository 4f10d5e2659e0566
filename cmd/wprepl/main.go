package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/weakprec/grammar"
	"github.com/npillmayer/weakprec/precedence"
	"github.com/npillmayer/weakprec/tree"
)

// We provide the classic a^n c b^n grammar as a default.
const defaultGrammar = `
	S -> a S b | c
`

// main() starts an interactive CLI, where users may enter sentences of
// a weak precedence grammar. Every sentence is parsed and its syntax tree
// is printed.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file (YAML)")
	left := flag.Bool("left", false, "Build trees from leftmost derivations")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to WPREPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	spec, err := loadGrammar(*gfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	setTraceLevel(*tlevel) // now set the user supplied level
	spec.Grammar.Dump()    // only visible in debug mode
	intp, err := NewIntp(spec, *left)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("wprepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp.repl = repl
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadGrammar(filename string) (*grammar.Spec, error) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	defer tracer().SetTraceLevel(level)
	if filename == "" {
		g, err := grammar.Parse("anbn", defaultGrammar)
		if err != nil {
			return nil, fmt.Errorf("error creating grammar: %w", err)
		}
		return &grammar.Spec{Grammar: g, Start: "S", End: "$"}, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open grammar file: %w", err)
	}
	defer f.Close()
	return grammar.ReadYAML(f)
}

// Intp is our interpreter object
type Intp struct {
	spec        *grammar.Spec
	parser      *precedence.Parser
	cache       *precedence.TableCache
	orientation tree.Orientation
	repl        *readline.Instance
	lastTree    *tree.Node
}

var errQuit = errors.New("quit")

// NewIntp creates an interpreter for a grammar.
func NewIntp(spec *grammar.Spec, left bool) (*Intp, error) {
	intp := &Intp{
		spec:        spec,
		cache:       precedence.NewTableCache(),
		orientation: tree.Right,
	}
	if left {
		intp.orientation = tree.Left
	}
	p, err := intp.cache.Parser(spec.Grammar, spec.Start, spec.End, precedence.Trace(true))
	if err != nil {
		return nil, err
	}
	if p.Table().HasConflicts {
		pterm.Warning.Printf("grammar %s is not a weak precedence grammar: %d conflicts\n",
			spec.Grammar.Name, len(p.Table().Conflicts()))
	}
	intp.parser = p
	return intp, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = intp.Eval(line); errors.Is(err, errQuit) {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or parses a sentence, given on a line by itself.
func (intp *Intp) Eval(line string) error {
	if strings.HasPrefix(line, ":") {
		args := strings.Fields(line)
		err := intp.Execute(args[0], args[1:])
		if err != nil && !errors.Is(err, errQuit) {
			pterm.Error.Println(err.Error())
		}
		return err
	}
	node, err := intp.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.lastTree = node
	pterm.Info.Println(node.String())
	pterm.DefaultTree.WithRoot(treeNodeFrom(node)).Render()
	return nil
}

// Parse parses a sentence and returns its syntax tree. Sentences containing
// blanks are split at blanks, all others are split into runes.
func (intp *Intp) Parse(line string) (*tree.Node, error) {
	var input []grammar.Symbol
	if strings.ContainsAny(line, " \t") {
		input = grammar.Symbols(strings.Fields(line)...)
	} else {
		for _, r := range line {
			input = append(input, grammar.Symbol(r))
		}
	}
	d, err := intp.parser.Parse(input)
	if err != nil {
		return nil, err
	}
	tracer().Infof("derivation: %v", d)
	b := tree.NewBuilder(intp.spec.Grammar, intp.orientation)
	root := b.Build(d)
	if !b.Complete() {
		return root, fmt.Errorf("derivation does not fit %s orientation", intp.orientation)
	}
	return root, nil
}

// Execute executes a REPL command.
func (intp *Intp) Execute(cmd string, args []string) error {
	switch cmd {
	case ":quit", ":q":
		return errQuit
	case ":grammar":
		for _, p := range intp.spec.Grammar.Productions() {
			pterm.Println(p.String())
		}
	case ":sets":
		esq, dir := precedence.Esq(intp.spec.Grammar), precedence.Dir(intp.spec.Grammar)
		for _, N := range intp.spec.Grammar.NonTerminals() {
			pterm.Printf("ESQ(%s) = %v\n", N, esq[N])
			pterm.Printf("DIR(%s) = %v\n", N, dir[N])
		}
	case ":rel":
		R := precedence.DeriveRelations(intp.spec.Grammar, intp.spec.Start, intp.spec.End)
		for _, r := range R.Values() {
			pterm.Println(r.String())
		}
		for _, c := range R.Conflicts() {
			pterm.Warning.Printf("conflict at (%s, %s)\n", c.Left, c.Right)
		}
	case ":table":
		return renderTable(intp.parser.Table())
	case ":html":
		if len(args) != 1 {
			return fmt.Errorf("usage: :html <file>")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		precedence.TableAsHTML(intp.parser.Table(), f)
		pterm.Info.Printf("table written to %s\n", args[0])
	default:
		return fmt.Errorf("unknown command %s", cmd)
	}
	return nil
}

func renderTable(t *precedence.Table) error {
	header := []string{""}
	for _, A := range t.Columns() {
		header = append(header, string(A))
	}
	data := pterm.TableData{header}
	for _, X := range t.Rows() {
		row := []string{string(X)}
		for _, A := range t.Columns() {
			row = append(row, t.Entry(X, A))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// treeNodeFrom converts a syntax tree to a pterm tree for display.
func treeNodeFrom(root *tree.Node) pterm.TreeNode {
	ll := leveledNode(root, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(node *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  string(node.Symbol),
	})
	for _, ch := range node.Children() {
		ll = leveledNode(ch, ll, level+1)
	}
	return ll
}

// traceKeys are the tracers of all packages taking part in a REPL session.
var traceKeys = []string{
	"weakprec.repl",
	"weakprec.grammar",
	"weakprec.precedence",
	"weakprec.tree",
	"weakprec.scanner",
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
