package domain

import "github.com/yaday/YND-BookingService/pkg/types"

// BookableSlots is the fixed set of time labels eligible for booking on any date.
// The grid matches the salon's working day: 90-minute steps from 09:00 to 22:30.
var BookableSlots = []types.TimeString{
	"09:00",
	"10:30",
	"12:00",
	"13:30",
	"15:00",
	"16:30",
	"18:00",
	"19:30",
	"21:00",
	"22:30",
}

// IsBookableSlot returns true if the label belongs to the fixed slot set
func IsBookableSlot(hora types.TimeString) bool {
	for _, slot := range BookableSlots {
		if slot == hora {
			return true
		}
	}
	return false
}
