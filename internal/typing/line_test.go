package typing

import "testing"

func TestNewLineHeadSpace(t *testing.T) {
	line := NewLine(1, "    {")
	if line.HeadSpace() != "    " {
		t.Fatalf("expected four spaces of head space, got %q", line.HeadSpace())
	}
	if r, ok := line.CurrentText(); !ok || r != '{' {
		t.Fatalf("expected current '{', got %q (%v)", r, ok)
	}
	if _, ok := line.RestText(); ok {
		t.Fatalf("expected no rest")
	}
}

func TestLineNextKeepsHeadSpace(t *testing.T) {
	line := NewLine(1, "      input test")
	if r, _ := line.CurrentText(); r != 'i' {
		t.Fatalf("expected current 'i', got %q", r)
	}

	next := line.Next()
	if next.HeadSpace() != "      " {
		t.Fatalf("unexpected head space %q", next.HeadSpace())
	}
	if got := next.EnteredText(); got != "      i" {
		t.Fatalf("unexpected entered text %q", got)
	}
	if r, ok := next.CurrentText(); !ok || r != 'n' {
		t.Fatalf("expected current 'n', got %q", r)
	}
	if rest, ok := next.RestText(); !ok || rest != "put test" {
		t.Fatalf("unexpected rest %q", rest)
	}
	if line.EnteredText() != "      " {
		t.Fatalf("expected receiver to be untouched, got %q", line.EnteredText())
	}
}

func TestLineSingleRuneIsEntered(t *testing.T) {
	line := NewLine(1, "i")
	if r, _ := line.CurrentText(); r != 'i' {
		t.Fatalf("expected current 'i', got %q", r)
	}
	if !line.Next().IsEntered() {
		t.Fatalf("expected single rune line to be entered")
	}
}

func TestLineBlank(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		line := NewLine(3, raw)
		if _, ok := line.CurrentText(); ok {
			t.Fatalf("expected no current rune for %q", raw)
		}
		if !line.IsEntered() {
			t.Fatalf("expected %q to be entered", raw)
		}
		if line.EnteredText() != "" {
			t.Fatalf("expected blank line to drop head space, got %q", line.EnteredText())
		}
		if !line.Input('x') {
			t.Fatalf("expected blank line to accept any input")
		}
	}
}

func TestLineNextToEnd(t *testing.T) {
	line := NewLine(1, "ab")
	line = line.Next()
	if line.IsEntered() {
		t.Fatalf("expected line with current 'b' to not be entered")
	}
	line = line.Next()
	if !line.IsEntered() {
		t.Fatalf("expected line to be entered")
	}
	if _, ok := line.CurrentText(); ok {
		t.Fatalf("expected no current rune")
	}
	if line.EnteredText() != "ab" {
		t.Fatalf("unexpected entered text %q", line.EnteredText())
	}
	again := line.Next()
	if again != line {
		t.Fatalf("expected Next to be idempotent on an entered line")
	}
}

func TestLineInput(t *testing.T) {
	line := NewLine(1, "go")
	if !line.Input('g') {
		t.Fatalf("expected 'g' to match")
	}
	if line.Input('x') {
		t.Fatalf("expected 'x' to not match")
	}
}

func TestLineMultibyte(t *testing.T) {
	line := NewLine(1, "été")
	if r, _ := line.CurrentText(); r != 'é' {
		t.Fatalf("unexpected current %q", r)
	}
	if rest, _ := line.RestText(); rest != "té" {
		t.Fatalf("unexpected rest %q", rest)
	}
	if line.Typeable() != 3 {
		t.Fatalf("expected 3 typeable runes, got %d", line.Typeable())
	}
}
