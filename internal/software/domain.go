package software

import "time"

// Software is a catalog entry employees can request access to. AccessLevels
// lists the only access types requestable for this title.
type Software struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	AccessLevels []string  `json:"accessLevels"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Offers reports whether the title grants the given access level.
func (s Software) Offers(level string) bool {
	for _, l := range s.AccessLevels {
		if l == level {
			return true
		}
	}
	return false
}
