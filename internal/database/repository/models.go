package repository

import "time"

// Preference is one stored UI preference.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// TabEvent records one switch between dashboard tabs.
type TabEvent struct {
	ID        string
	From      string
	To        string
	CreatedAt time.Time
}
