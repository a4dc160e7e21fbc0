package domain

import (
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and display format of calendar dates.
const DateLayout = time.DateOnly

// Timestamps is the created/updated pair shared by every stored entity.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch stamps UpdatedAt, and CreatedAt too when the row is new.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Register is a physical or digital ledger that requires tracking.
type Register struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	Timestamps
}

// ScheduleEntry is one scheduled occurrence of a bundle for a register.
type ScheduleEntry struct {
	ID           uuid.UUID
	RegisterID   uuid.UUID
	RegisterName string // read-only, filled by joins
	BundleType   BundleType
	ScheduledFor time.Time
	Notes        string
	Completed    bool
	CompletedAt  *time.Time
	Timestamps
}

// MarkComplete flags the entry as done. CompletedAt is set on the first call
// only; later calls keep the original timestamp. Reports whether this call
// performed the transition.
func (e *ScheduleEntry) MarkComplete(now time.Time) bool {
	first := e.CompletedAt == nil
	e.Completed = true
	if first {
		e.CompletedAt = &now
	}
	e.Touch(now)
	return first
}

// Reminder notifies about an upcoming schedule entry.
type Reminder struct {
	ID              uuid.UUID
	RegisterID      uuid.UUID
	RegisterName    string // read-only, filled by joins
	ScheduleEntryID *uuid.UUID
	RemindAt        time.Time
	Message         string
	IsSent          bool
	Timestamps
}

// Document is a titled container for versioned uploads. Title is unique per register.
type Document struct {
	ID          uuid.UUID
	RegisterID  uuid.UUID
	Title       string
	Description string
	Timestamps
}

// DocumentVersion is a single uploaded file of a Document.
// UploadedBy is nil for anonymous uploads or once the uploader is removed.
type DocumentVersion struct {
	ID            uuid.UUID
	DocumentID    uuid.UUID
	DocumentTitle string    // read-only, filled by joins
	RegisterID    uuid.UUID // read-only, filled by joins
	RegisterName  string    // read-only, filled by joins
	Version       int
	FilePath      string
	ContentType   string
	SizeBytes     int64
	UploadedBy    *uuid.UUID
	Notes         string
	Timestamps
}

// Filename is the last path element of the stored file.
func (v DocumentVersion) Filename() string {
	return path.Base(v.FilePath)
}

// ActivityLog is an append-only audit row. ScheduleEntryID and UserID are
// cleared (set to nil) when the referenced row or user is removed.
type ActivityLog struct {
	ID              uuid.UUID
	RegisterID      uuid.UUID
	ScheduleEntryID *uuid.UUID
	Action          ActivityAction
	UserID          *uuid.UUID
	Details         string
	Timestamps
}

// Describe renders the log line shown in activity feeds.
func (l ActivityLog) Describe(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	details := l.Details
	if details == "" {
		details = "No details"
	}
	return fmt.Sprintf("[%s] %s - %s", l.CreatedAt.In(loc).Format("2006-01-02 15:04"), l.Action.Display(), details)
}
