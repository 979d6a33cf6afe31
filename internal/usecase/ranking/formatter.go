package ranking

import (
	"fmt"
	"html"
	"strings"

	"tg-pole-bot/internal/domain"
)

// NotFoundMessage is sent when a chat requests a ranking that does not exist.
const NotFoundMessage = "Ranking no existente para este chat."

const boardHeader = "Ranking de poles:"

var positionMarkers = [...]string{"1️⃣", "2️⃣", "3️⃣"}

const fallbackMarker = "🤡"

// FormatBoard renders the leaderboard as Telegram HTML: a fixed header and one
// line per user. The top three positions get distinct markers, everyone else
// the generic one.
func FormatBoard(users []domain.RankingUser) string {
	lines := make([]string, 0, len(users)+1)
	lines = append(lines, boardHeader)
	for i, u := range users {
		marker := fallbackMarker
		if i < len(positionMarkers) {
			marker = positionMarkers[i]
		}
		lines = append(lines, fmt.Sprintf("%s-%s: %d", marker, html.EscapeString(u.Name), u.Count))
	}
	return strings.Join(lines, "\n")
}

// FormatAward renders the pole announcement followed by the updated board.
func FormatAward(award domain.PoleAward) string {
	return fmt.Sprintf("Pole para <b>%s</b>.\n%s", html.EscapeString(award.User.Name), FormatBoard(award.Standings))
}
