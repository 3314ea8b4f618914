package parser

import (
	"testing"

	"github.com/jbialk/jsonstream/jsonerr"
)

func TestKnownEventTrace(t *testing.T) {
	src := "{\"foo\":{\"bar\":1,\"baz\":[\"a\",1,12.3,true,false,null]}}"

	buf := make([]Event, 32)
	n, err := Parse(src, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Fatalf("expected 16 events but got %d", n)
	}

	want := []EventKind{
		OBJECT_BEGIN,
		OBJECT_KEY,
		OBJECT_BEGIN,
		OBJECT_KEY,
		VALUE_LITERAL,
		OBJECT_KEY,
		LIST_BEGIN,
		VALUE_LITERAL,
		VALUE_LITERAL,
		VALUE_LITERAL,
		VALUE_LITERAL,
		VALUE_LITERAL,
		VALUE_LITERAL,
		LIST_END,
		OBJECT_END,
		OBJECT_END,
	}
	for idx, kind := range want {
		if buf[idx].Kind != kind {
			t.Errorf("event %d: expected %s but got %s", idx, kind, buf[idx].Kind)
		}
	}

	if buf[1].Token.Spelling != `"foo"` {
		t.Errorf("expected first key spelling %q but got %q", `"foo"`, buf[1].Token.Spelling)
	}
	if buf[9].Token.Spelling != "12.3" {
		t.Errorf("expected literal spelling %q but got %q", "12.3", buf[9].Token.Spelling)
	}
}

func TestEmptyGroups(t *testing.T) {
	testCases := []struct {
		src  string
		want []EventKind
	}{
		{"{}", []EventKind{OBJECT_BEGIN, OBJECT_END}},
		{"[]", []EventKind{LIST_BEGIN, LIST_END}},
		{`{"a": {}}`, []EventKind{OBJECT_BEGIN, OBJECT_KEY, OBJECT_BEGIN, OBJECT_END, OBJECT_END}},
		{"[[], []]", []EventKind{LIST_BEGIN, LIST_BEGIN, LIST_END, LIST_BEGIN, LIST_END, LIST_END}},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			buf := make([]Event, 16)
			n, err := Parse(tc.src, buf)
			if err != nil {
				t.Fatal(err)
			}
			if n != len(tc.want) {
				t.Fatalf("expected %d events but got %d", len(tc.want), n)
			}
			for idx, kind := range tc.want {
				if buf[idx].Kind != kind {
					t.Errorf("event %d: expected %s but got %s", idx, kind, buf[idx].Kind)
				}
			}
		})
	}
}

func TestCommentsAreTransparent(t *testing.T) {
	src := "{\n// a comment\n\"a\": 1\n}"
	buf := make([]Event, 8)
	n, err := Parse(src, buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []EventKind{OBJECT_BEGIN, OBJECT_KEY, VALUE_LITERAL, OBJECT_END}
	if n != len(want) {
		t.Fatalf("expected %d events but got %d", len(want), n)
	}
	for idx, kind := range want {
		if buf[idx].Kind != kind {
			t.Errorf("event %d: expected %s but got %s", idx, kind, buf[idx].Kind)
		}
	}
}

func TestUnexpectedToken(t *testing.T) {
	testCases := []string{
		`{1: 2}`,    // key must be a string
		`{"a" 1}`,   // missing colon
		`["a" "b"]`, // missing comma
		`{"a": 1]`,  // mismatched closure
		`["a": 1]`,  // colon in a list
	}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src, nil)
			if jsonerr.CodeOf(err) != jsonerr.PARSE_UNEXPECTED_TOKEN {
				t.Errorf("expected PARSE_UNEXPECTED_TOKEN but got: %v", err)
			}
		})
	}
}

func TestBadStateAfterFailure(t *testing.T) {
	var lp LexerParser
	if err := lp.Init(); err != nil {
		t.Fatal(err)
	}
	lp.Begin(`{"a" 1}`)

	var err error
	for err == nil {
		_, err = lp.GetNextEvent()
	}
	if jsonerr.CodeOf(err) != jsonerr.PARSE_UNEXPECTED_TOKEN {
		t.Fatalf("expected PARSE_UNEXPECTED_TOKEN but got: %v", err)
	}

	_, err = lp.GetNextEvent()
	if jsonerr.CodeOf(err) != jsonerr.PARSE_BAD_STATE {
		t.Errorf("expected PARSE_BAD_STATE but got: %v", err)
	}
}

func TestPeekNextEvent(t *testing.T) {
	var lp LexerParser
	if err := lp.Init(); err != nil {
		t.Fatal(err)
	}
	lp.Begin(`  {"a": [1, 2]}`)

	want := []EventKind{
		OBJECT_BEGIN, OBJECT_KEY, LIST_BEGIN,
		VALUE_LITERAL, VALUE_LITERAL, LIST_END, OBJECT_END,
	}
	for _, kind := range want {
		peeked, err := lp.PeekNextEvent()
		if err != nil {
			t.Fatal(err)
		}
		// Peeking twice returns the same event.
		again, err := lp.PeekNextEvent()
		if err != nil {
			t.Fatal(err)
		}
		if peeked != again {
			t.Fatalf("second peek returned %v but first returned %v", again, peeked)
		}

		got, err := lp.GetNextEvent()
		if err != nil {
			t.Fatal(err)
		}
		if got != peeked {
			t.Fatalf("peeked %v but got %v", peeked, got)
		}
		if got.Kind != kind {
			t.Fatalf("expected %s but got %s", kind, got.Kind)
		}
	}

	if _, err := lp.GetNextEvent(); !jsonerr.IsInputFinished(err) {
		t.Errorf("expected LEX_INPUT_FINISHED but got: %v", err)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(`{"a": [1, 2.5, true, null, "x"]}`); err != nil {
		t.Errorf("expected valid parse but got: %v", err)
	}
	if err := Verify(`{"a": }`); err == nil {
		t.Error("expected an error for a malformed document")
	}
}
