package telegram

import (
	"strings"
	"testing"
)

func TestSplitMessageShortText(t *testing.T) {
	text := "Ranking de poles:\n1️⃣-alice: 1"
	parts := SplitMessage(text)
	if len(parts) != 1 {
		t.Fatalf("expected single part, got %d", len(parts))
	}
	if parts[0] != text {
		t.Fatalf("unexpected text: %q", parts[0])
	}
}

func TestSplitMessageEmpty(t *testing.T) {
	if parts := SplitMessage("   \n  "); len(parts) != 0 {
		t.Fatalf("expected no parts for blank input, got %d", len(parts))
	}
}

func TestSplitMessageBreaksOnLines(t *testing.T) {
	var b strings.Builder
	b.WriteString(strings.Repeat("a", 3000))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("b", 2000))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("c", 500))

	parts := SplitMessage(b.String())
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	for i, part := range parts {
		if n := len([]rune(part)); n > messageLimit {
			t.Fatalf("part %d exceeds limit: %d", i, n)
		}
	}
	if parts[0] != strings.Repeat("a", 3000) {
		t.Fatal("first part should be the first line alone")
	}
	if !strings.HasPrefix(parts[1], "b") || !strings.HasSuffix(parts[1], "c") {
		t.Fatalf("second part should carry the remaining lines, got %q...", parts[1][:10])
	}
}

func TestSplitMessageHardCutsOversizedLine(t *testing.T) {
	parts := SplitMessage(strings.Repeat("x", messageLimit+100))
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if len([]rune(parts[0])) != messageLimit {
		t.Fatalf("first part should be exactly the limit, got %d", len([]rune(parts[0])))
	}
	if len([]rune(parts[1])) != 100 {
		t.Fatalf("second part should hold the remainder, got %d", len([]rune(parts[1])))
	}
}
