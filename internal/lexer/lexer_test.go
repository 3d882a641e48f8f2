package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `int x = 5 + 3.14;
if (x >= 1) {
  return x;
} else {
  return 0;
}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{INT_KW, "int"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "5"},
		{PLUS, "+"},
		{FLOAT, "3.14"},
		{SEMICOLON, ";"},
		{IF, "if"},
		{LPAREN, "("},
		{IDENT, "x"},
		{GREATER_EQ, ">="},
		{INT, "1"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{IDENT, "x"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{ELSE, "else"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{INT, "0"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("token[%d] type = %s, want %s (literal %q)", i, tok.Type, tt.expectedType, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("token[%d] literal = %q, want %q", i, tok.Literal, tt.expectedLiteral)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `== != <= >= ++ -- += -= *= /= && || << >> ->`
	want := []TokenType{EQ, NOT_EQ, LESS_EQ, GREATER_EQ, INC, DEC, PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, AND_AND, OR_OR, SHL, SHR, ARROW, EOF}

	l := New(input)
	for i, want := range want {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token[%d] = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	input := `"hello\n" 'a' '\''`
	l := New(input)

	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != `"hello\n"` {
		t.Fatalf("string token = %+v", tok)
	}
	tok = l.NextToken()
	if tok.Type != CHAR || tok.Literal != `'a'` {
		t.Fatalf("char token = %+v", tok)
	}
	tok = l.NextToken()
	if tok.Type != CHAR || tok.Literal != `'\''` {
		t.Fatalf("escaped char token = %+v", tok)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `// a line comment
int x /* a block
comment */ = 1;`
	l := New(input)

	want := []TokenType{INT_KW, IDENT, ASSIGN, INT, SEMICOLON, EOF}
	for i, want := range want {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token[%d] = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	input := "int x\n  = 1;"
	l := New(input)

	_ = l.NextToken() // int
	xTok := l.NextToken()
	if xTok.Pos.Line != 1 || xTok.Pos.Column != 5 {
		t.Fatalf("x position = %+v, want line 1 col 5", xTok.Pos)
	}
	assignTok := l.NextToken()
	if assignTok.Pos.Line != 2 || assignTok.Pos.Column != 3 {
		t.Fatalf("= position = %+v, want line 2 col 3", assignTok.Pos)
	}
}

func TestIllegalCharacterIsReportedAsError(t *testing.T) {
	l := New(`int x = 1 @ 2;`)
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d: %v", len(l.Errors()), l.Errors())
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	l := New(`1 + 2`)
	first := l.Peek(0)
	if first.Type != INT {
		t.Fatalf("Peek(0) = %s, want INT", first.Type)
	}
	second := l.Peek(1)
	if second.Type != PLUS {
		t.Fatalf("Peek(1) = %s, want PLUS", second.Type)
	}
	got := l.NextToken()
	if got.Type != INT {
		t.Fatalf("NextToken after Peek = %s, want INT", got.Type)
	}
}

func TestMarkAndReset(t *testing.T) {
	l := New(`1 2 3`)
	_ = l.NextToken()
	m := l.Mark()
	second := l.NextToken()
	l.Reset(m)
	replay := l.NextToken()
	if second.Literal != replay.Literal {
		t.Fatalf("replay after Reset = %q, want %q", replay.Literal, second.Literal)
	}
}
