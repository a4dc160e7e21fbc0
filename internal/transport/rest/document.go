package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/document"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

type documentService interface {
	CreateDocument(ctx context.Context, input document.CreateDocumentInput) (domain.Document, error)
	UploadVersion(ctx context.Context, input document.UploadVersionInput) (domain.DocumentVersion, error)
}

// DocumentHandler serves document containers and version uploads.
type DocumentHandler struct {
	svc       documentService
	maxUpload int64
	log       *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. maxUpload bounds the whole
// multipart request body in bytes.
func NewDocumentHandler(svc documentService, maxUpload int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "document")}
}

type uploadResponse struct {
	ID       string `json:"id"`
	Version  int    `json:"version"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// Create handles POST /documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input document.CreateDocumentInput
	if err := decodePayload(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.CreateDocument(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{ID: doc.ID.String(), Message: "Document created"})
}

// Upload handles POST /documents/upload (multipart: document, file, notes, metadata).
// A request that is not multipart reaches validation without a file.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	err := r.ParseMultipartForm(multipartMemory)
	switch {
	case err == nil:
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	case isTooLarge(err):
		writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds the maximum size")
		return
	case !errors.Is(err, http.ErrNotMultipart):
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	var input document.UploadVersionInput
	if err := decodeValues(formValues(r), &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, header, err := formFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	if file != nil {
		defer file.Close()
		input.File = file
		input.Filename = header.Filename
		input.Size = header.Size
	}

	version, err := h.svc.UploadVersion(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:       version.ID.String(),
		Version:  version.Version,
		Filename: version.Filename(),
		Message:  "Document uploaded",
	})
}

func formValues(r *http.Request) url.Values {
	if r.MultipartForm != nil {
		return r.MultipartForm.Value
	}
	return r.PostForm
}

// formFile returns the "file" part, or nil when none was sent.
func formFile(r *http.Request) (io.ReadCloser, *multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
