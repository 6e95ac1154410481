// internal/handler/upload.go
package handler

import (
	"net/http"

	"github.com/foodyhq/backend/internal/storage"
)

const maxUploadBytes = 10 * 1024 * 1024

type UploadHandler struct {
	store *storage.Client
}

func NewUploadHandler(store *storage.Client) *UploadHandler {
	return &UploadHandler{store: store}
}

type UploadResponse struct {
	BaseResponse
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadHandler accepts a multipart image and stores it in the bucket. The
// returned URL is what offer creation later receives as image_url.
func (h *UploadHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondWithError(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if !storage.ValidateImageType(header.Filename) {
		respondWithError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	key := storage.ObjectKey(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(header.Filename)
	}

	url, err := h.store.Upload(r.Context(), key, contentType, file)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UploadResponse{
		BaseResponse: BaseResponse{Ok: true},
		URL:          url,
		Key:          key,
	})
}
