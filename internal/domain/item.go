package domain

import "time"

type Source string

const (
	SourceOrganicEvent       Source = "organic-event"
	SourceVibePost           Source = "vibe-post"
	SourceVibePostSeed       Source = "vibe-post-seed"
	SourceProfileEntriesSeed Source = "profile-entries-seed"
	SourceMemoryPost         Source = "memory-post"
	SourceProfileEntry       Source = "profile-entry"
	SourceSponsored          Source = "sponsored"
	SourcePromotional        Source = "promotional"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusDraft     Status = "draft"
	StatusCancelled Status = "cancelled"
	StatusPublished Status = "published"
)

// Hidden reports statuses that are never shown to anyone.
func (s Status) Hidden() bool {
	return s == StatusCancelled || s == StatusDraft
}

type Privacy string

const (
	PrivacyPublic     Privacy = "public"
	PrivacySemiPublic Privacy = "semi-public"
)

// FeedItem is an event, moment or profile entry owned by the entity store.
type FeedItem struct {
	ID             string     `json:"id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Source         Source     `json:"source"`
	Status         Status     `json:"status"`
	Date           *time.Time `json:"date,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	OrganizerEmail string     `json:"organizer_email"`
	OrganizerName  string     `json:"organizer_name"`
	Category       string     `json:"category,omitempty"`
	SceneTags      []string   `json:"scene_tags,omitempty"`
	PrivacyLevel   Privacy    `json:"privacy_level,omitempty"`
	IsPromotional  bool       `json:"is_promotional"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Location       string     `json:"location,omitempty"`
	VenueName      string     `json:"venue_name,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (i FeedItem) HasCoordinates() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// RecencyKey is timestamp, falling back to date, falling back to the zero time.
func (i FeedItem) RecencyKey() time.Time {
	if i.Timestamp != nil {
		return *i.Timestamp
	}
	if i.Date != nil {
		return *i.Date
	}
	return time.Time{}
}
