package schedule

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// CreateEntryInput is the raw create-bundle payload.
type CreateEntryInput struct {
	Register     string `schema:"register"`
	BundleType   string `schema:"bundle_type"`
	ScheduledFor string `schema:"scheduled_for"`
	Notes        string `schema:"notes"`
}

// Validate checks all fields, collects all errors and returns the entry to store.
func (i CreateEntryInput) Validate() (domain.ScheduleEntry, error) {
	var errs domain.FieldErrors

	registerID := errs.RequiredID("register", i.Register)
	bundle := errs.Bundle("bundle_type", i.BundleType, true)
	date := errs.RequiredDate("scheduled_for", i.ScheduledFor)
	notes := errs.Text("notes", i.Notes, false, 0)

	if err := errs.Err(); err != nil {
		return domain.ScheduleEntry{}, err
	}
	return domain.ScheduleEntry{
		RegisterID:   registerID,
		BundleType:   *bundle,
		ScheduledFor: date,
		Notes:        notes,
	}, nil
}

// ListEntriesInput holds the optional listing filters.
type ListEntriesInput struct {
	BundleType string `schema:"bundle_type"`
	Register   string `schema:"register"`
}

// Validate parses the filters. Blank values impose no constraint.
func (i ListEntriesInput) Validate() (domain.ScheduleEntryFilter, error) {
	var errs domain.FieldErrors

	f := domain.ScheduleEntryFilter{
		BundleType: errs.Bundle("bundle_type", i.BundleType, false),
		RegisterID: errs.OptionalID("register", i.Register),
		Limit:      domain.MaxListResults,
	}
	if err := errs.Err(); err != nil {
		return domain.ScheduleEntryFilter{}, err
	}
	return f, nil
}

// MarkCompleteInput identifies the entry to complete.
type MarkCompleteInput struct {
	EntryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MarkCompleteInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("id", domain.MsgRequired)
	}
	return nil
}
