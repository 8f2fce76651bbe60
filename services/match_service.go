package services

import (
	"strings"

	"github.com/skillswap-app/skillswap_api/models"
)

// PartitionMembers splits the roster into members who teach at least one
// skill the viewer wants to learn, and everyone else. Roster order is kept
// within both halves. With no learning skills there is nothing to match
// against, so the whole roster lands in other.
func PartitionMembers(learningSkills []string, roster []models.User) (matched, other []models.User) {
	matched = []models.User{}
	other = []models.User{}

	if len(learningSkills) == 0 {
		other = append(other, roster...)
		return matched, other
	}

	wanted := make(map[string]struct{}, len(learningSkills))
	for _, skill := range learningSkills {
		wanted[skill] = struct{}{}
	}

	for _, member := range roster {
		if teachesAny(member.TeachingSkills, wanted) {
			matched = append(matched, member)
		} else {
			other = append(other, member)
		}
	}
	return matched, other
}

func teachesAny(teaching []string, wanted map[string]struct{}) bool {
	for _, skill := range teaching {
		if _, ok := wanted[skill]; ok {
			return true
		}
	}
	return false
}

// FilterByTeachingSkill keeps members where any teaching skill contains the
// query, case-insensitively. An empty query returns the input unfiltered.
// Order is preserved; there is no relevance scoring.
func FilterByTeachingSkill(query string, members []models.User) []models.User {
	if query == "" {
		return members
	}
	query = strings.ToLower(query)

	filtered := []models.User{}
	for _, member := range members {
		for _, skill := range member.TeachingSkills {
			if strings.Contains(strings.ToLower(skill), query) {
				filtered = append(filtered, member)
				break
			}
		}
	}
	return filtered
}
