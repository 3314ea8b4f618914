package lexer

import (
	"testing"

	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/token"
)

func expectTokens(t *testing.T, scanner *Scanner, toks ...token.Token) {
	t.Helper()
	for _, want := range toks {
		got, err := scanner.Pump()
		if err != nil {
			t.Fatalf("expected token %v but got error: %v", want, err)
		}
		if got.Kind != want.Kind || got.Spelling != want.Spelling {
			t.Fatalf("expected token %v but instead received %v", want, got)
		}
	}
}

func expectFinished(t *testing.T, scanner *Scanner) {
	t.Helper()
	tok, err := scanner.Pump()
	if err == nil {
		t.Fatalf("expected end of input but instead received %v", tok)
	}
	if !jsonerr.IsInputFinished(err) {
		t.Fatalf("expected LEX_INPUT_FINISHED but got: %v", err)
	}
}

func newScanner(t *testing.T, src string) *Scanner {
	t.Helper()
	var scanner Scanner
	if err := scanner.Init(); err != nil {
		t.Fatal(err)
	}
	scanner.Begin(src)
	return &scanner
}

func TestScanner(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		toks []token.Token
	}{
		{
			name: "numeric object",
			src:  `{"foo":12.34e+10}`,
			toks: []token.Token{
				{Kind: token.PUNCTUATION, Spelling: "{"},
				{Kind: token.STRING_LITERAL, Spelling: `"foo"`},
				{Kind: token.PUNCTUATION, Spelling: ":"},
				{Kind: token.NUMERIC_LITERAL, Spelling: "12.34e+10"},
				{Kind: token.PUNCTUATION, Spelling: "}"},
			},
		},
		{
			name: "literals",
			src:  "[true, false, null, -12, 0.5]",
			toks: []token.Token{
				{Kind: token.PUNCTUATION, Spelling: "["},
				{Kind: token.BOOLEAN_LITERAL, Spelling: "true"},
				{Kind: token.PUNCTUATION, Spelling: ","},
				{Kind: token.WHITESPACE, Spelling: " "},
				{Kind: token.BOOLEAN_LITERAL, Spelling: "false"},
				{Kind: token.PUNCTUATION, Spelling: ","},
				{Kind: token.WHITESPACE, Spelling: " "},
				{Kind: token.NULL_LITERAL, Spelling: "null"},
				{Kind: token.PUNCTUATION, Spelling: ","},
				{Kind: token.WHITESPACE, Spelling: " "},
				{Kind: token.NUMERIC_LITERAL, Spelling: "-12"},
				{Kind: token.PUNCTUATION, Spelling: ","},
				{Kind: token.WHITESPACE, Spelling: " "},
				{Kind: token.NUMERIC_LITERAL, Spelling: "0.5"},
				{Kind: token.PUNCTUATION, Spelling: "]"},
			},
		},
		{
			name: "strings with escapes",
			src:  `"a\"b" "c\\"`,
			toks: []token.Token{
				{Kind: token.STRING_LITERAL, Spelling: `"a\"b"`},
				{Kind: token.WHITESPACE, Spelling: " "},
				{Kind: token.STRING_LITERAL, Spelling: `"c\\"`},
			},
		},
		{
			name: "comments",
			src:  "// slashes\n# hash\n1",
			toks: []token.Token{
				{Kind: token.COMMENT, Spelling: "// slashes\n"},
				{Kind: token.COMMENT, Spelling: "# hash\n"},
				{Kind: token.NUMERIC_LITERAL, Spelling: "1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scanner := newScanner(t, tc.src)
			expectTokens(t, scanner, tc.toks...)
			expectFinished(t, scanner)
		})
	}
}

func TestScannerInvalidToken(t *testing.T) {
	src := "{\n\"foo\" : 1,\n\"bar\": 12.3.4}"
	scanner := newScanner(t, src)

	var err error
	for err == nil {
		_, err = scanner.Pump()
	}
	if jsonerr.CodeOf(err) != jsonerr.LEX_INVALID_TOKEN {
		t.Fatalf("expected LEX_INVALID_TOKEN but got: %v", err)
	}

	loc := scanner.Location()
	if loc.Lineno != 2 || loc.Colno != 11 || loc.Offset != 24 {
		t.Errorf("expected error location 2:11 offset 24 but got %d:%d offset %d",
			loc.Lineno, loc.Colno, loc.Offset)
	}

	// The cursor must be left untouched so the caller can inspect the
	// offending text.
	if scanner.Rest() != ".4}" {
		t.Errorf("expected scanner to hold %q but got %q", ".4}", scanner.Rest())
	}
}

func TestScannerLocationAtEnd(t *testing.T) {
	src := "{\"a\": 1,\n \"b\": [true]\n}"
	scanner := newScanner(t, src)

	for {
		if _, err := scanner.Pump(); err != nil {
			break
		}
	}

	loc := scanner.Location()
	if int(loc.Offset) != len(src) {
		t.Errorf("expected final offset %d but got %d", len(src), loc.Offset)
	}
	if loc.Lineno != 2 {
		t.Errorf("expected final lineno 2 but got %d", loc.Lineno)
	}
	if loc.Colno != 1 {
		t.Errorf("expected final colno 1 but got %d", loc.Colno)
	}
}

func TestScannerPeek(t *testing.T) {
	scanner := newScanner(t, "true false")

	peeked, err := scanner.Peek()
	if err != nil {
		t.Fatal(err)
	}
	pumped, err := scanner.Pump()
	if err != nil {
		t.Fatal(err)
	}
	if peeked != pumped {
		t.Errorf("peek returned %v but pump returned %v", peeked, pumped)
	}
	if pumped.Spelling != "true" {
		t.Errorf("expected %q but got %q", "true", pumped.Spelling)
	}
}

func TestScannerStorageHints(t *testing.T) {
	scanner := newScanner(t, `{"ab": 12, "c": 3.5}`)
	for {
		if _, err := scanner.Pump(); err != nil {
			break
		}
	}

	// Two numeric tokens at 8 bytes each.
	if got := scanner.NumericStorage(); got != 16 {
		t.Errorf("expected numeric storage 16 but got %d", got)
	}
	// "ab" (4 bytes spelled) and "c" (3 bytes spelled), plus one
	// terminator each.
	if got := scanner.StringStorage(); got != 9 {
		t.Errorf("expected string storage 9 but got %d", got)
	}
}

func TestLexCountsSurplus(t *testing.T) {
	n, err := Lex(`[1, 2]`, nil)
	if err != nil {
		t.Fatal(err)
	}
	// [ 1 , ws 2 ]
	if n != 6 {
		t.Errorf("expected 6 tokens but got %d", n)
	}
}

func TestVerifyLex(t *testing.T) {
	if err := VerifyLex(`{"a": [true, null]}`); err != nil {
		t.Errorf("expected valid lex but got: %v", err)
	}
	if err := VerifyLex(`{"a": @}`); jsonerr.CodeOf(err) != jsonerr.LEX_INVALID_TOKEN {
		t.Errorf("expected LEX_INVALID_TOKEN but got: %v", err)
	}
}
