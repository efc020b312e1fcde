// Package types provides type definitions for structured data used throughout the talent-console system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Resource represents a staffing resource record as stored by the backend.
type Resource struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Skills       []string       `json:"skills"`
	Experience   Experience     `json:"experience"`
	Location     Location       `json:"location"`
	Availability Availability   `json:"availability"`
	Rate         Rate           `json:"rate"`
	Description  string         `json:"description,omitempty"`
	Attachment   *AttachmentRef `json:"attachment,omitempty"`
	CreatedAt    time.Time      `json:"created_at,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at,omitempty"`
}

// EntityID returns the backend identifier. It satisfies the list cache's
// entity contract.
func (r Resource) EntityID() string { return r.ID }

// Experience holds the experience block of a resource.
type Experience struct {
	Years int             `json:"years" validate:"gte=0,lte=50"`
	Level ExperienceLevel `json:"level" validate:"required,oneof=junior intermediate senior expert"`
}

// ExperienceLevel enumerates the seniority levels accepted by the backend.
type ExperienceLevel string

const (
	LevelJunior       ExperienceLevel = "junior"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelSenior       ExperienceLevel = "senior"
	LevelExpert       ExperienceLevel = "expert"
)

// Location holds the location block of a resource.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Remote  bool   `json:"remote"`
}

// Availability holds the availability block of a resource.
type Availability struct {
	Status       AvailabilityStatus `json:"status" validate:"required,oneof=available partially_available unavailable"`
	HoursPerWeek int                `json:"hours_per_week" validate:"gte=0,lte=168"`
	StartDate    *time.Time         `json:"start_date,omitempty"`
}

// AvailabilityStatus enumerates the availability states accepted by the backend.
type AvailabilityStatus string

const (
	StatusAvailable          AvailabilityStatus = "available"
	StatusPartiallyAvailable AvailabilityStatus = "partially_available"
	StatusUnavailable        AvailabilityStatus = "unavailable"
)

// Rate holds the billing rate block of a resource.
type Rate struct {
	Hourly   float64 `json:"hourly" validate:"gte=1,lte=500"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

// AttachmentRef is the pointer stored on a resource record referencing a
// separately stored file record. The file record has its own id; the
// reference is owned by the resource.
type AttachmentRef struct {
	FileID       string `json:"file_id"`
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

// Skill is a selectable skill from the reference list. The backend exposes
// Mongo-style identifiers on reference entities.
type Skill struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// EntityID satisfies the list cache's entity contract.
func (s Skill) EntityID() string { return s.ID }

// Category is a selectable category from the reference list.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EntityID satisfies the list cache's entity contract.
func (c Category) EntityID() string { return c.ID }

// VendorSkill is a vendor-submitted skill awaiting moderation.
type VendorSkill struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name,omitempty"`
	SkillName  string    `json:"skill_name"`
	Category   string    `json:"category,omitempty"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
}

// EntityID satisfies the list cache's entity contract.
func (v VendorSkill) EntityID() string { return v.ID }

// Pagination is the pagination envelope returned alongside every list
// response: {page, limit, total, totalPages}.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNextPage reports whether a page follows the current one.
func (p Pagination) HasNextPage() bool { return p.Page < p.TotalPages }

// HasPreviousPage reports whether a page precedes the current one.
func (p Pagination) HasPreviousPage() bool { return p.Page > 1 }
