package domain

// PoleRecord is the first message of a calendar day in a chat. At most one record
// exists per (DayKey, ChatID); once written it is never updated or deleted.
type PoleRecord struct {
	DayKey   int64  `bson:"dayKey"`
	ChatID   int64  `bson:"chatId"`
	UserID   int64  `bson:"userId"`
	UserName string `bson:"userName"`
}

// PoleUser identifies the sender of a candidate pole message.
type PoleUser struct {
	ID   int64
	Name string
}

// RankingUser is one leaderboard entry inside a chat ranking document.
type RankingUser struct {
	ID    int64  `bson:"id"`
	Name  string `bson:"name"`
	Count int    `bson:"count"`
}

// Ranking is the per-chat leaderboard document. Users are stored in the order
// they won their first pole; counts only grow.
type Ranking struct {
	ChatID int64         `bson:"chatId"`
	Users  []RankingUser `bson:"users"`
}

// PoleAward is the outcome of a claimed pole: the winner plus the updated
// standings. The zero value means the pole was already taken today.
type PoleAward struct {
	Claimed   bool
	User      PoleUser
	Standings []RankingUser
}
