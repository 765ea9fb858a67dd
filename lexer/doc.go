// Package lexer splits borasm source lines into tokens.
//
// A raw line is first trimmed (Clean), then stripped of `//` and `;`
// comments (StripComments), then split on whitespace (Tokenize). Operand
// tokens that denote literal numbers are recognised by IsNumber and
// converted by ToNumber.
package lexer
