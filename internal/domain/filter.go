package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxListResults caps every list and search response.
const MaxListResults = 50

// ScheduleEntryFilter narrows the schedule entry listing. Nil fields impose no constraint.
type ScheduleEntryFilter struct {
	BundleType *BundleType
	RegisterID *uuid.UUID
	Limit      int
}

// RegisterSearchFilter narrows the register search. All present filters are ANDed.
// BundleType and Completed apply to the register's schedule entries.
type RegisterSearchFilter struct {
	Query      *string
	BundleType *BundleType
	Completed  *bool
	Limit      int
}

// BundleCounts holds the number of schedule entries per bundle type.
type BundleCounts map[BundleType]int

// RegisterSearchResult is a register annotated with unfiltered bundle counts.
type RegisterSearchResult struct {
	Register
	BundleCounts BundleCounts
}

// RegisterSummary is the bounded view of a register used by the PDF report.
type RegisterSummary struct {
	Register       Register
	RecentEntries  []ScheduleEntry
	RecentVersions []DocumentVersion
	GeneratedAt    time.Time
}
