// Package stackup parses board stackup description files.
//
// A stackup file names the routing layers of a board together with the
// geometry parameters needed to turn package delays into trace lengths:
//
//	-- 6-layer board
//	stackup MAIN is
//	  microstrip TOP : er 4.16 height 3.91 width 6.16;
//	  stripline  IN3 : er1 4.2 h1 5.0 er2 4.6 h2 7.0;
//	end MAIN;
//
// Heights and widths must all use one consistent linear unit; only ratios
// enter the calculations.
package stackup

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser represents a stackup file parser
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new stackup parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(StackupLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a stackup file from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a stackup file from a string
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a stackup file from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
