package domain

import "testing"

func TestApplyFirstPole(t *testing.T) {
	r := Ranking{ChatID: 42}
	r.Apply(PoleUser{ID: 7, Name: "alice"})
	if len(r.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(r.Users))
	}
	u := r.Users[0]
	if u.ID != 7 || u.Name != "alice" || u.Count != 1 {
		t.Fatalf("unexpected entry: %+v", u)
	}
}

func TestApplyIncrementsExistingUser(t *testing.T) {
	r := Ranking{Users: []RankingUser{{ID: 7, Name: "alice", Count: 3}}}
	r.Apply(PoleUser{ID: 7, Name: "alice"})
	if len(r.Users) != 1 {
		t.Fatalf("expected no new entry, got %d users", len(r.Users))
	}
	if r.Users[0].Count != 4 {
		t.Fatalf("expected count 4, got %d", r.Users[0].Count)
	}
	if r.Users[0].Name != "alice" {
		t.Fatalf("name should not change, got %q", r.Users[0].Name)
	}
}

func TestApplyUpdatesRenamedUser(t *testing.T) {
	r := Ranking{Users: []RankingUser{{ID: 7, Name: "alice", Count: 3}}}
	r.Apply(PoleUser{ID: 7, Name: "alicia"})
	if r.Users[0].Name != "alicia" {
		t.Fatalf("expected renamed entry, got %q", r.Users[0].Name)
	}
	if r.Users[0].Count != 4 {
		t.Fatalf("expected count 4, got %d", r.Users[0].Count)
	}
}

func TestApplyAppendsNewUser(t *testing.T) {
	r := Ranking{Users: []RankingUser{{ID: 7, Name: "alice", Count: 3}}}
	r.Apply(PoleUser{ID: 8, Name: "bob"})
	if len(r.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(r.Users))
	}
	if r.Users[1].ID != 8 || r.Users[1].Count != 1 {
		t.Fatalf("unexpected appended entry: %+v", r.Users[1])
	}
}

func TestApplyIncreasesTotalByOne(t *testing.T) {
	r := Ranking{Users: []RankingUser{{ID: 1, Name: "a", Count: 5}, {ID: 2, Name: "b", Count: 2}}}
	before := r.TotalPoles()
	r.Apply(PoleUser{ID: 2, Name: "b"})
	if r.TotalPoles() != before+1 {
		t.Fatalf("expected total %d, got %d", before+1, r.TotalPoles())
	}
	r.Apply(PoleUser{ID: 3, Name: "c"})
	if r.TotalPoles() != before+2 {
		t.Fatalf("expected total %d, got %d", before+2, r.TotalPoles())
	}
}

func TestStandingsSortsByCountDescending(t *testing.T) {
	r := Ranking{Users: []RankingUser{
		{ID: 1, Name: "A", Count: 5},
		{ID: 2, Name: "B", Count: 9},
		{ID: 3, Name: "C", Count: 9},
		{ID: 4, Name: "D", Count: 1},
	}}
	got := r.Standings()
	want := []string{"B", "C", "A", "D"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i+1, name, got[i].Name)
		}
	}
}

func TestStandingsTiesKeepStoredOrder(t *testing.T) {
	r := Ranking{Users: []RankingUser{
		{ID: 1, Name: "zoe", Count: 4},
		{ID: 2, Name: "ana", Count: 4},
	}}
	got := r.Standings()
	if got[0].Name != "zoe" || got[1].Name != "ana" {
		t.Fatalf("expected stored order for ties, got %s then %s", got[0].Name, got[1].Name)
	}
}

func TestStandingsDoesNotMutateDocument(t *testing.T) {
	r := Ranking{Users: []RankingUser{
		{ID: 1, Name: "a", Count: 1},
		{ID: 2, Name: "b", Count: 2},
	}}
	_ = r.Standings()
	if r.Users[0].Name != "a" || r.Users[1].Name != "b" {
		t.Fatal("stored order changed after Standings")
	}
}
