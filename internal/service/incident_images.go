package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/storage"
)

const incidentImageFolder = "incidents"

type incidentImageService struct {
	incidentRepo repository.IncidentRepository
	store        storage.ImageStore
}

func NewIncidentImageService(incidentRepo repository.IncidentRepository, store storage.ImageStore) IncidentImageService {
	return &incidentImageService{incidentRepo: incidentRepo, store: store}
}

func (s *incidentImageService) AttachImages(ctx context.Context, incidentID int32, files []IncidentImageUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, domain.NewValidationError("at least one image is required")
	}

	incident, err := s.incidentRepo.GetByID(ctx, incidentID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	if incident.Resolved {
		return nil, domain.NewValidationError(fmt.Sprintf("incident %d is already resolved", incidentID))
	}

	var violations []string
	named := make([]storage.NamedFile, 0, len(files))
	for _, f := range files {
		if !s.store.IsValidImage(f.Header) {
			violations = append(violations, fmt.Sprintf("file %s is not an allowed image type", f.Name))
			continue
		}
		// The handler already consumed the header bytes for sniffing, so the
		// stored file is header + the rest of the stream.
		named = append(named, storage.NamedFile{
			Name:   f.Name,
			Reader: io.MultiReader(bytes.NewReader(f.Header), f.Reader),
		})
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	folder := fmt.Sprintf("%s/%d", incidentImageFolder, incidentID)
	paths, err := s.store.SaveImages(ctx, named, folder)
	if err != nil {
		return nil, wrapSystem(err)
	}

	for _, p := range paths {
		if err := s.incidentRepo.AddImage(ctx, incidentID, p); err != nil {
			// Keep the store consistent with the database.
			for _, saved := range paths {
				if _, delErr := s.store.DeleteFile(ctx, saved); delErr != nil {
					logger.Error("Failed to delete image after record failure", "path", saved, "error", delErr)
				}
			}
			return nil, wrapSystem(err)
		}
	}
	return paths, nil
}

func (s *incidentImageService) OpenImage(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return nil, wrapSystem(err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("image", 0)
	}
	rc, err := s.store.Open(path)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return rc, nil
}
