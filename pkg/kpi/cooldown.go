package kpi

import (
	"fmt"
	"time"

	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

// ErrBadLastNotified marks a preference whose last_notified stamp cannot
// be parsed. The dispatcher skips such a preference for the cycle instead
// of treating it as never-notified.
var ErrBadLastNotified = fmt.Errorf("unparseable last_notified timestamp")

// MayNotify decides whether a preference is outside its cooldown window at
// time now. An empty lastNotified means the preference has never fired and
// is always eligible.
func MayNotify(lastNotified string, cooldownHours int, now time.Time) (bool, error) {
	if lastNotified == "" {
		return true, nil
	}

	stamp, err := time.Parse(time.RFC3339, lastNotified)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrBadLastNotified, lastNotified, err)
	}

	if cooldownHours <= 0 {
		cooldownHours = models.DefaultCooldownHours
	}

	cooldownEnd := stamp.Add(time.Duration(cooldownHours) * time.Hour)
	return !now.Before(cooldownEnd), nil
}
