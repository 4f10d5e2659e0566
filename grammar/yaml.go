package grammar

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Spec is a grammar together with the two symbols a precedence parser needs
// in addition: the start symbol and the end-of-input marker.
type Spec struct {
	Grammar *Grammar
	Start   Symbol
	End     Symbol
}

// specFile is the YAML layout of a grammar file:
//
//    name: anbn
//    start: S
//    end: $
//    empty: ε             # optional
//    productions:
//      - S -> a S b | c
type specFile struct {
	Name        string   `yaml:"name"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Empty       string   `yaml:"empty,omitempty"`
	Productions []string `yaml:"productions"`
}

// ReadYAML reads a grammar file. Productions are given in the line format of
// Parse, one list entry per line.
//
// ReadYAML does not check if start and end fit the grammar; this is left to
// the parser construction.
func ReadYAML(r io.Reader) (*Spec, error) {
	var f specFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("cannot read grammar file: %w", err)
	}
	if f.Name == "" {
		f.Name = "G"
	}
	if f.Start == "" || f.End == "" {
		return nil, fmt.Errorf("%w %s: grammar file must name start and end symbols",
			ErrInvalidGrammar, f.Name)
	}
	empty := DefaultEmpty
	if f.Empty != "" {
		empty = Symbol(f.Empty)
	}
	g, err := ReadLines(f.Name, f.Productions, empty)
	if err != nil {
		return nil, err
	}
	return &Spec{
		Grammar: g,
		Start:   Symbol(f.Start),
		End:     Symbol(f.End),
	}, nil
}
