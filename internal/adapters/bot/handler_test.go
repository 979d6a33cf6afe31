package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestRankingCommandMatching(t *testing.T) {
	matching := []string{
		"!ranking",
		"/ranking",
		"/ranking@PolesBot",
		"!ranking por favor",
	}
	for _, text := range matching {
		if !rankingCommand.MatchString(text) {
			t.Fatalf("expected %q to trigger the ranking command", text)
		}
	}

	notMatching := []string{
		"ranking",
		"!rankings",
		"hola",
		"el !ranking de ayer",
		"",
	}
	for _, text := range notMatching {
		if rankingCommand.MatchString(text) {
			t.Fatalf("expected %q not to trigger the ranking command", text)
		}
	}
}

func TestDisplayNamePrefersUsername(t *testing.T) {
	from := &tgbotapi.User{UserName: "alice", FirstName: "Alicia"}
	if got := displayName(from); got != "alice" {
		t.Fatalf("expected username, got %q", got)
	}
}

func TestDisplayNameFallsBackToFirstName(t *testing.T) {
	from := &tgbotapi.User{FirstName: "Alicia"}
	if got := displayName(from); got != "Alicia" {
		t.Fatalf("expected first name, got %q", got)
	}
}

func TestDisplayNameAnonymous(t *testing.T) {
	from := &tgbotapi.User{FirstName: "  "}
	if got := displayName(from); got != anonymousName {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
