package courier

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// isValidStatus accepts only the device-settable statuses. The offered and
// busy states belong to the assignment engine.
func isValidStatus(status entities.CourierStatusType) bool {
	switch status {
	case entities.CourierAvailable, entities.CourierPaused:
		return true
	default:
		return false
	}
}
