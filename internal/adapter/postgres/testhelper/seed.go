package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRegister inserts an active register. An empty name gets a unique default.
func SeedRegister(t *testing.T, pool *pgxpool.Pool, name string) domain.Register {
	t.Helper()

	if name == "" {
		name = "Register " + uniqueSuffix()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	reg := domain.Register{
		ID:         uuid.New(),
		Name:       name,
		IsActive:   true,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO registers (id, name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reg.ID, reg.Name, reg.Description, reg.IsActive, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegister: %v", err)
	}
	return reg
}

// SeedScheduleEntry inserts a schedule entry for registerID. A completed entry
// gets completed_at = now.
func SeedScheduleEntry(t *testing.T, pool *pgxpool.Pool, registerID uuid.UUID, bundle domain.BundleType, date time.Time, completed bool) domain.ScheduleEntry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.ScheduleEntry{
		ID:           uuid.New(),
		RegisterID:   registerID,
		BundleType:   bundle,
		ScheduledFor: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Completed:    completed,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if completed {
		entry.CompletedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO schedule_entries (id, register_id, bundle_type, scheduled_for, completed, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.RegisterID, string(entry.BundleType), entry.ScheduledFor,
		entry.Completed, entry.CompletedAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScheduleEntry: %v", err)
	}
	return entry
}

// SeedDocument inserts a document container. An empty title gets a unique default.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, registerID uuid.UUID, title string) domain.Document {
	t.Helper()

	if title == "" {
		title = "Document " + uniqueSuffix()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	doc := domain.Document{
		ID:         uuid.New(),
		RegisterID: registerID,
		Title:      title,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, register_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.ID, doc.RegisterID, doc.Title, doc.Description, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}
	return doc
}
