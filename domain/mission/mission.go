package mission

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "bfd-backend/pkg/errors"
	"bfd-backend/pkg/utils"
)

// TravelerType categorizes who the mission is for
type TravelerType string

const (
	TravelerSolo   TravelerType = "solo"
	TravelerCouple TravelerType = "couple"
	TravelerFamily TravelerType = "family"
	TravelerOther  TravelerType = "other"
)

// CabinClass is the requested cabin
type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// Source tags where a mission came from; used for analytics segmentation only
type Source string

const (
	SourceDealsGrid    Source = "deals_grid"
	SourceMissionInput Source = "mission_input"
	SourceDeepLink     Source = "deep_link"
	SourceSaved        Source = "saved"
)

// DateFlex is an advisory flexibility hint, not a hard constraint
type DateFlex string

const (
	FlexAny     DateFlex = "any"
	FlexWeekend DateFlex = "weekend"
	FlexWeekday DateFlex = "weekday"
	FlexExact   DateFlex = "exact"
)

// Mission is the canonical record of a user's trip intent: route, budget,
// dates, flexibility hints, provenance. It is transient until persisted as the
// current mission or appended to the saved list.
type Mission struct {
	ID              string `json:"id" validate:"required"`
	OriginCode      string `json:"originCode" validate:"required"`
	DestinationCode string `json:"destinationCode" validate:"required,nefield=OriginCode"`
	OriginLabel     string `json:"originLabel"`
	DestinationLabel string `json:"destinationLabel"`

	// Date constraints, ISO calendar dates ("2025-03-15")
	DepartDate string `json:"departDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`

	// Traveler details
	Adults int        `json:"adults,omitempty" validate:"omitempty,min=1"`
	Cabin  CabinClass `json:"cabin,omitempty" validate:"omitempty,oneof=economy business first"`

	// Budget is a positive target amount in Currency
	Currency string `json:"currency,omitempty"`
	Budget   int    `json:"budget,omitempty" validate:"omitempty,gt=0"`

	// Flexibility hints
	TripLengthDays int      `json:"tripLengthDays,omitempty"`
	Month          string   `json:"month,omitempty"`
	DateFlex       DateFlex `json:"dateFlex,omitempty" validate:"omitempty,oneof=any weekend weekday exact"`

	// Categorization
	Tags         []string     `json:"tags,omitempty"`
	TravelerType TravelerType `json:"travelerType,omitempty" validate:"omitempty,oneof=solo couple family other"`

	// Metadata
	Notes     string `json:"notes,omitempty"`
	Source    Source `json:"source,omitempty" validate:"omitempty,oneof=deals_grid mission_input deep_link saved"`
	CreatedAt string `json:"createdAt,omitempty"`

	// Widget/affiliate passthrough
	Locale string `json:"locale,omitempty"`
	Marker string `json:"marker,omitempty"`
}

// RefinementKind labels how a mission was derived from another
type RefinementKind string

const (
	RefineEdit    RefinementKind = "edit"
	RefineResume  RefinementKind = "resume"
	RefineRebook  RefinementKind = "rebook"
)

// Validate checks the mission's structural invariants. Missions coming off a
// catalog bridge always pass; free-form input from the API does not.
func (m *Mission) Validate() error {
	if err := utils.ValidateStruct(m); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	if m.DepartDate != "" && m.ReturnDate != "" {
		depart, err := utils.ParseISODate(m.DepartDate)
		if err != nil {
			return pkgerrors.NewValidationError(fmt.Sprintf("departDate %q is not an ISO date", m.DepartDate))
		}
		ret, err := utils.ParseISODate(m.ReturnDate)
		if err != nil {
			return pkgerrors.NewValidationError(fmt.Sprintf("returnDate %q is not an ISO date", m.ReturnDate))
		}
		if ret.Before(depart) {
			return pkgerrors.NewValidationError("returnDate must not precede departDate")
		}
	}

	return nil
}

// AdultCount returns the effective adult count, defaulting to 1
func (m *Mission) AdultCount() int {
	if m.Adults < 1 {
		return 1
	}
	return m.Adults
}

// HasTag reports whether the mission carries a vibe tag
func (m *Mission) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Refine derives a new mission from m. Saved missions are immutable in place:
// editing and refining always produce a new mission whose id is the original id
// plus the refinement kind and a timestamp, so the original survives as its own
// entry. CreatedAt is cleared and re-stamped at the next normalization.
func (m Mission) Refine(kind RefinementKind, at time.Time) Mission {
	refined := m
	refined.ID = fmt.Sprintf("%s-%s-%d", m.ID, kind, at.Unix())
	refined.CreatedAt = ""
	if len(m.Tags) > 0 {
		refined.Tags = append([]string(nil), m.Tags...)
	}
	return refined
}

// RouteID builds the conventional slug-style id for a route ("yyz-lis")
func RouteID(originCode, destinationCode string) string {
	return strings.ToLower(originCode) + "-" + strings.ToLower(destinationCode)
}
