package jobs

import (
	"log"
	"time"

	"github.com/skillswap-app/skillswap_api/database"
	"github.com/skillswap-app/skillswap_api/models"
	"github.com/skillswap-app/skillswap_api/services"
)

// PruneExpiredAvailability removes availability date keys whose day has fully
// passed. Today's entries stay, as do future dates with an empty slot list --
// an empty list is a stored value, not a key to garbage-collect.
func PruneExpiredAvailability() {
	log.Println("Running job: PruneExpiredAvailability...")

	var users []models.User
	if err := database.DB.Where("availability <> '{}'").Find(&users).Error; err != nil {
		log.Printf("Error loading members for availability pruning: %v", err)
		return
	}

	now := time.Now()
	pruned := 0
	for _, user := range users {
		// "Past" is judged in the member's own zone: a date that is over in
		// server time can still hold bookable evening slots further west.
		updated := services.PruneExpiredDates(user.Availability, now.In(user.Location()))
		if len(updated) == len(user.Availability) {
			continue
		}
		if err := database.DB.Model(&user).Update("availability", updated).Error; err != nil {
			log.Printf("Error pruning availability for member %s: %v", user.ID, err)
			continue
		}
		pruned++
	}

	if pruned > 0 {
		log.Printf("Pruned expired availability for %d member(s).", pruned)
	}
}
