package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

// sniffLen is how many bytes http.DetectContentType needs.
const sniffLen = 512

type IncidentImageHandler struct {
	imageSvc    service.IncidentImageService
	maxFileSize int64
}

func NewIncidentImageHandler(imageSvc service.IncidentImageService, maxFileSize int64) *IncidentImageHandler {
	return &IncidentImageHandler{imageSvc: imageSvc, maxFileSize: maxFileSize}
}

// Upload accepts a multipart form with one or more files under the "images"
// field and attaches them to the incident.
func (h *IncidentImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	incidentID, err := pathID(r, "incident_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, domain.NewValidationError("invalid multipart form: "+err.Error()))
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		writeError(w, domain.NewValidationError("at least one file is required under the images field"))
		return
	}

	var uploads []service.IncidentImageUpload
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for _, fh := range fileHeaders {
		if fh.Size > h.maxFileSize {
			writeError(w, domain.NewValidationError("file "+fh.Filename+" exceeds the size limit"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(w, domain.NewSystemError(err))
			return
		}
		closers = append(closers, f)

		header := make([]byte, sniffLen)
		n, err := io.ReadFull(f, header)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			writeError(w, domain.NewSystemError(err))
			return
		}
		uploads = append(uploads, service.IncidentImageUpload{
			Name:   fh.Filename,
			Header: header[:n],
			Reader: f,
		})
	}

	paths, err := h.imageSvc.AttachImages(r.Context(), incidentID, uploads)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string][]string{"paths": paths})
}

// Download streams a stored incident image. The path query parameter is the
// storage path returned by Upload.
func (h *IncidentImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" || strings.Contains(path, "..") {
		writeError(w, domain.NewValidationError("a valid path parameter is required"))
		return
	}

	file, err := h.imageSvc.OpenImage(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
