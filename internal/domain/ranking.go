package domain

import "sort"

// Apply attributes one pole to the user: increments an existing entry,
// refreshing its display name if it changed, or appends a new entry with
// count 1.
func (r *Ranking) Apply(user PoleUser) {
	for i := range r.Users {
		if r.Users[i].ID == user.ID {
			r.Users[i].Count++
			if r.Users[i].Name != user.Name {
				r.Users[i].Name = user.Name
			}
			return
		}
	}
	r.Users = append(r.Users, RankingUser{ID: user.ID, Name: user.Name, Count: 1})
}

// Standings returns the users sorted by pole count, highest first. Equal counts
// keep their stored order, so whoever won their first pole earlier ranks higher.
func (r Ranking) Standings() []RankingUser {
	out := append([]RankingUser(nil), r.Users...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TotalPoles is the number of successful pole insertions reflected in the
// leaderboard.
func (r Ranking) TotalPoles() int {
	total := 0
	for _, u := range r.Users {
		total += u.Count
	}
	return total
}
