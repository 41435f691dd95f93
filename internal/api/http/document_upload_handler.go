package http

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/storage"
)

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// DocumentUploadHandler handles HTTP uploads for mock storage
type DocumentUploadHandler struct {
	mockStorage *storage.MockStorageService
}

// NewDocumentUploadHandler creates a new upload handler
func NewDocumentUploadHandler(mockStorage *storage.MockStorageService) *DocumentUploadHandler {
	return &DocumentUploadHandler{mockStorage: mockStorage}
}

var allowedDocumentKinds = map[string]bool{
	"lease":    true,
	"identity": true,
	"proof":    true,
}

type uploadURLRequest struct {
	Kind        string `json:"kind"` // lease, identity or proof
	ID          string `json:"id"`   // tenant or payment id the document belongs to
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// RequestUploadURL hands out a presigned upload URL for a tenant document or
// payment proof. The caller PUTs the file to the returned URL and stores the
// key on the tenant or payment record.
func (h *DocumentUploadHandler) RequestUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !allowedDocumentKinds[req.Kind] || req.ID == "" || req.Filename == "" {
		respondError(w, http.StatusBadRequest, "kind, id and filename are required")
		return
	}
	if !allowedDocumentTypes[req.ContentType] {
		respondError(w, http.StatusBadRequest, "unsupported content type")
		return
	}

	key := storage.NewDocumentKey(req.Kind, req.ID, req.Filename)
	url, err := h.mockStorage.GeneratePresignedUploadURL(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, uploadURLResponse{Key: key, UploadURL: url})
}

// RequestDownloadURL hands out a presigned download URL for a stored document.
func (h *DocumentUploadHandler) RequestDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key parameter is required")
		return
	}

	exists, _, err := h.mockStorage.FileExists(r.Context(), key)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	url, err := h.mockStorage.GeneratePresignedDownloadURL(r.Context(), key, time.Hour)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"download_url": url})
}

// HandleMockUpload handles HTTP PUT requests to mock presigned URLs.
// Lease documents, identity documents and payment proofs all land here.
func (h *DocumentUploadHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !allowedDocumentTypes[contentType] {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic an S3 response
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleMockDownload handles HTTP GET requests to download documents
func (h *DocumentUploadHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".pdf":
		contentType = "application/pdf"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}
