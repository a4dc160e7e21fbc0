package document

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const (
	maxTitleLength = 255

	msgDuplicateTitle = "Document with this Register and Title already exists."
	msgNoFile         = "No file was submitted. Check the encoding type on the form."
	msgEmptyFile      = "The submitted file is empty."
	msgBadMetadata    = "Metadata must be valid JSON"
)

// CreateDocumentInput is the raw create-document payload.
type CreateDocumentInput struct {
	Register    string `schema:"register"`
	Title       string `schema:"title"`
	Description string `schema:"description"`
}

// Validate checks all fields, collects all errors and returns the document to store.
func (i CreateDocumentInput) Validate() (domain.Document, error) {
	var errs domain.FieldErrors

	d := domain.Document{
		RegisterID:  errs.RequiredID("register", i.Register),
		Title:       errs.Text("title", i.Title, true, maxTitleLength),
		Description: errs.Text("description", i.Description, false, 0),
	}
	if err := errs.Err(); err != nil {
		return domain.Document{}, err
	}
	return d, nil
}

// UploadVersionInput is a multipart upload. File is nil when no file part was sent.
type UploadVersionInput struct {
	Document string `schema:"document"`
	Notes    string `schema:"notes"`
	Metadata string `schema:"metadata"`

	File     io.Reader `schema:"-"`
	Filename string    `schema:"-"`
	Size     int64     `schema:"-"`
}

type upload struct {
	documentID uuid.UUID
	notes      string
}

// parse checks all fields and collects all errors. Metadata is only checked
// for well-formed JSON; it is not stored.
func (i UploadVersionInput) parse() (upload, error) {
	var errs domain.FieldErrors

	u := upload{
		documentID: errs.RequiredID("document", i.Document),
		notes:      errs.Text("notes", i.Notes, false, 0),
	}
	switch {
	case i.File == nil:
		errs.Add("file", msgNoFile)
	case i.Size == 0:
		errs.Add("file", msgEmptyFile)
	}
	if raw := strings.TrimSpace(i.Metadata); raw != "" && !json.Valid([]byte(raw)) {
		errs.Add("metadata", msgBadMetadata)
	}

	if err := errs.Err(); err != nil {
		return upload{}, err
	}
	return u, nil
}
