package services

import (
	"testing"

	"github.com/skillswap-app/skillswap_api/models"
)

func member(name string, teaching ...string) models.User {
	return models.User{Name: name, TeachingSkills: teaching}
}

func names(members []models.User) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func equalNames(a []models.User, want []string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range want {
		if a[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestPartitionMembers(t *testing.T) {
	roster := []models.User{
		member("alice", "React", "Python"),
		member("bob", "Digital Marketing"),
		member("carol", "Python"),
		member("dave"),
	}

	tests := []struct {
		name        string
		learning    []string
		wantMatched []string
		wantOther   []string
	}{
		{
			name:        "no learning skills puts everyone in other",
			learning:    nil,
			wantMatched: []string{},
			wantOther:   []string{"alice", "bob", "carol", "dave"},
		},
		{
			name:        "single skill match",
			learning:    []string{"React"},
			wantMatched: []string{"alice"},
			wantOther:   []string{"bob", "carol", "dave"},
		},
		{
			name:        "overlap with any learning skill matches",
			learning:    []string{"Python", "DevOps"},
			wantMatched: []string{"alice", "carol"},
			wantOther:   []string{"bob", "dave"},
		},
		{
			name:        "no overlap at all",
			learning:    []string{"DevOps"},
			wantMatched: []string{},
			wantOther:   []string{"alice", "bob", "carol", "dave"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, other := PartitionMembers(tt.learning, roster)
			if !equalNames(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", names(matched), tt.wantMatched)
			}
			if !equalNames(other, tt.wantOther) {
				t.Errorf("other = %v, want %v", names(other), tt.wantOther)
			}
			if len(matched)+len(other) != len(roster) {
				t.Errorf("partition dropped or duplicated members: %d + %d != %d",
					len(matched), len(other), len(roster))
			}
		})
	}
}

func TestPartitionMembersEmptyRoster(t *testing.T) {
	matched, other := PartitionMembers([]string{"React"}, nil)
	if len(matched) != 0 || len(other) != 0 {
		t.Errorf("expected empty partitions, got %v / %v", names(matched), names(other))
	}
}

func TestFilterByTeachingSkill(t *testing.T) {
	members := []models.User{
		member("alice", "React"),
		member("bob", "Python"),
		member("carol", "Content Writing", "React"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns everything", query: "", want: []string{"alice", "bob", "carol"}},
		{name: "case-insensitive match", query: "react", want: []string{"alice", "carol"}},
		{name: "substring match", query: "writ", want: []string{"carol"}},
		{name: "no match", query: "blacksmithing", want: []string{}},
		{name: "mixed case query", query: "PyThOn", want: []string{"bob"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTeachingSkill(tt.query, members)
			if !equalNames(got, tt.want) {
				t.Errorf("FilterByTeachingSkill(%q) = %v, want %v", tt.query, names(got), tt.want)
			}
		})
	}
}

func TestFilterByTeachingSkillNoTeachingSkills(t *testing.T) {
	got := FilterByTeachingSkill("react", []models.User{member("dave")})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", names(got))
	}
}
