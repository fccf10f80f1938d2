package catalog

import (
	"errors"
	"strings"
)

var ErrServiceNotFound = errors.New("service not found")

var ErrClubNotFound = errors.New("club not found")

// Service is a bookable offering of a club, e.g. a specific court.
type Service struct {
	ID                  string   `json:"id"`
	ClubID              string   `json:"clubId"`
	Name                string   `json:"name"`
	HourlyPrice         float64  `json:"hourlyPrice"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	IsActive            bool     `json:"isActive"`
	AvailableDays       []string `json:"availableDays"` // Mon, Tue, ...
	OpeningTime         string   `json:"openingTime"`   // HH:MM
	ClosingTime         string   `json:"closingTime"`   // HH:MM
}

func (s Service) OpensOn(weekday string) bool {
	for _, day := range s.AvailableDays {
		if strings.EqualFold(strings.TrimSpace(day), weekday) {
			return true
		}
	}
	return false
}

type Club struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
}
