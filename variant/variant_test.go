package variant

import (
	"strings"
	"testing"

	"github.com/jbialk/jsonstream/printer"
)

func TestKindAccessors(t *testing.T) {
	v := O(
		"null", nil,
		"integer", 5,
		"real", 5.0,
		"boolean", true,
		"string", "hello",
		"list", L(nil, 5, 5.0, true),
		"object", O(),
	)

	if v.Kind() != OBJECT {
		t.Fatalf("expected an object but got %s", v.Kind())
	}
	if got := v.Get("null").Kind(); got != NULL {
		t.Errorf("expected %s but got %s", NULL, got)
	}
	if got := v.Get("integer").Integer(); got != 5 {
		t.Errorf("expected 5 but got %d", got)
	}
	if got := v.Get("real").Real(); got != 5.0 {
		t.Errorf("expected 5.0 but got %f", got)
	}
	if got := v.Get("boolean").Boolean(); got != true {
		t.Errorf("expected true but got %v", got)
	}
	if got := v.Get("string").Str(); got != "hello" {
		t.Errorf("expected hello but got %q", got)
	}
	if got := v.Get("list").Len(); got != 4 {
		t.Errorf("expected list length 4 but got %d", got)
	}
	if got := v.Get("list").At(1).Integer(); got != 5 {
		t.Errorf("expected 5 but got %d", got)
	}
}

func TestReadMissReturnsInvalid(t *testing.T) {
	v := O("a", 1)
	if v.Get("missing").Valid() {
		t.Error("expected an invalid sentinel for a missing key")
	}
	if v.Get("missing").Get("deeper").Valid() {
		t.Error("expected sentinel chaining to stay invalid")
	}
	if v.Get("a").At(0).Valid() {
		t.Error("expected list access on an integer to be invalid")
	}
	if L(1, 2).At(5).Valid() {
		t.Error("expected an invalid sentinel for an out of range index")
	}
}

func TestWriteThrough(t *testing.T) {
	v := NewObject()
	v.Put("a").Assign(NewInteger(1))
	if got := v.Get("a").Integer(); got != 1 {
		t.Errorf("expected 1 but got %d", got)
	}

	// Write path inserts a default invalid entry.
	v.Put("b")
	if v.Get("b") == invalid {
		t.Error("expected Put to insert a real entry, not the sentinel")
	}
	if v.Get("b").Valid() {
		t.Error("expected the inserted entry to be invalid")
	}

	l := NewList()
	l.Slot(2).Assign(NewString("x"))
	if l.Len() != 3 {
		t.Errorf("expected the list to grow to 3 but got %d", l.Len())
	}
	if l.At(0).Valid() {
		t.Error("expected backfilled slots to be invalid")
	}
	if got := l.At(2).Str(); got != "x" {
		t.Errorf("expected x but got %q", got)
	}
}

func TestDeepCopy(t *testing.T) {
	orig := O("a", L(1, 2), "b", "hello")
	clone := orig.Copy()

	clone.Get("a").Slot(0).Assign(NewInteger(99))
	if got := orig.Get("a").At(0).Integer(); got != 1 {
		t.Errorf("mutating the copy changed the original: got %d", got)
	}
	if !orig.Equal(O("a", L(1, 2), "b", "hello")) {
		t.Error("original no longer equals its literal")
	}
}

func TestAssignClearsPriorPayload(t *testing.T) {
	v := O("a", 1)
	v.Assign(NewInteger(7))
	if v.Kind() != INTEGER || v.Integer() != 7 {
		t.Fatalf("expected integer 7 but got %s", v.Kind())
	}
	if v.Get("a").Valid() {
		t.Error("expected object payload to be destroyed by assignment")
	}
}

func TestSerializeKnownOutput(t *testing.T) {
	v := O(
		"hello", 123,
		"world", O(
			"foo", O(
				"far", 123,
				"fit", nil,
				"fox", true,
				"fur", 4270.0,
				"fut", false,
				"fuz", "hello",
			),
		),
	)

	opts := printer.SerializeOpts{Indent: 0, SepKV: ": ", SepItem: ","}
	out := v.Dump(opts)

	if len(out) != 116 {
		t.Errorf("expected 116 bytes but got %d: %s", len(out), out)
	}
	if !strings.HasPrefix(out, `{"hello": 123,"world": `) {
		t.Errorf("unexpected prefix: %s", out)
	}
	if !strings.HasSuffix(out, `"hello"}}}`) {
		t.Errorf("unexpected suffix: %s", out)
	}
}

func TestSerializeShapes(t *testing.T) {
	testCases := []struct {
		name string
		v    *Variant
		want string
	}{
		{"empty object", NewObject(), "{}"},
		{"empty list", NewList(), "[]"},
		{"integer", NewInteger(-3), "-3"},
		{"real", NewReal(3.5), "3.500000"},
		{"boolean", NewBoolean(false), "false"},
		{"null", NewNull(), "null"},
		{"string", NewString("a\nb"), `"a\nb"`},
		{"compact object", O("a", 1, "b", L(1, 2)), `{"a":1,"b":[1,2]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Dump(printer.CompactOpts); got != tc.want {
				t.Errorf("expected %q but got %q", tc.want, got)
			}
		})
	}
}

func TestSerializeIndented(t *testing.T) {
	v := O("a", 1, "b", L(1))
	want := "{\n" +
		"  \"a\": 1,\n" +
		"  \"b\": [\n" +
		"    1\n" +
		"  ]\n" +
		"}"
	if got := v.Dump(printer.DefaultOpts); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestSerializeSizingPass(t *testing.T) {
	v := O("a", L(1, true, nil))
	want := v.Dump(printer.CompactOpts)

	n := v.Serialize(nil, printer.CompactOpts)
	if n != len(want) {
		t.Errorf("sizing pass returned %d but output is %d bytes", n, len(want))
	}

	// A short buffer still reports the full size.
	short := make([]byte, 3)
	if n := v.Serialize(short, printer.CompactOpts); n != len(want) {
		t.Errorf("short buffer pass returned %d but output is %d bytes", n, len(want))
	}
	if string(short) != want[:3] {
		t.Errorf("short buffer holds %q but expected %q", short, want[:3])
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(`{"a": 1, "b": [1.5, "x", true, null], "c": {"d": -2}}`)
	if err != nil {
		t.Fatal(err)
	}

	want := O(
		"a", 1,
		"b", L(1.5, "x", true, nil),
		"c", O("d", -2),
	)
	if !v.Equal(want) {
		t.Errorf("parsed variant does not equal expected value: %s", v.Dump(printer.CompactOpts))
	}
}

func TestParseScalars(t *testing.T) {
	testCases := []struct {
		src  string
		want *Variant
	}{
		{"12", NewInteger(12)},
		{"-12", NewInteger(-12)},
		{"12.5", NewReal(12.5)},
		{"12e3", NewReal(12000)},
		{"true", NewBoolean(true)},
		{"null", NewNull()},
		{`"a\tb"`, NewString("a\tb")},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := Parse(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if !v.Equal(tc.want) {
				t.Errorf("expected %s %v but got %s", tc.want.Kind(), tc.want, v.Kind())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	orig := O(
		"ints", L(0, -1, 123456),
		"reals", L(0.5, -2.25),
		"strings", L("plain", "quo\"ted", "tab\tbed"),
		"misc", O("t", true, "f", false, "n", nil),
		"empty", O(),
		"elist", L(),
	)

	parsed, err := Parse(orig.Dump(printer.CompactOpts))
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(orig) {
		t.Errorf("round trip changed the value:\n%s\n%s",
			orig.Dump(printer.CompactOpts), parsed.Dump(printer.CompactOpts))
	}
}
