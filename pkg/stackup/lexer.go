package stackup

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// StackupLexer defines the lexical structure for stackup description files.
// The syntax borrows VHDL conventions ("--" comments, "is ... end" blocks),
// matching the vendor tooling these files sit next to.
var StackupLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - VHDL style (-- to end of line)
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwStackup", Pattern: `(?i)\bSTACKUP\b`},
	{Name: "KwIs", Pattern: `(?i)\bIS\b`},
	{Name: "KwEnd", Pattern: `(?i)\bEND\b`},

	// Layer kinds
	{Name: "KwMicrostrip", Pattern: `(?i)\bMICROSTRIP\b`},
	{Name: "KwStripline", Pattern: `(?i)\bSTRIPLINE\b`},

	// Punctuation
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},

	// Numbers
	{Name: "Real", Pattern: `[-+]?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
