package worker

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/qr"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/storage"
)

type WorkerServiceImpl struct {
	workerRepo domain.Repository
	storage    storage.FileStorage
}

func NewWorkerService(workerRepo domain.Repository, fileStorage storage.FileStorage) domain.Service {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		storage:    fileStorage,
	}
}

func (s *WorkerServiceImpl) List(ctx context.Context) ([]domain.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		resp, err := s.mapWorkerToResponse(w)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (domain.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WorkerResponse{}, err
	}
	return s.mapWorkerToResponse(w)
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req domain.CreateWorkerRequest) (domain.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkerResponse{}, err
	}

	w := domain.Worker{
		DNI:        req.DNI,
		Names:      strings.TrimSpace(req.Names),
		Surnames:   strings.TrimSpace(req.Surnames),
		Email:      req.Email,
		AreaID:     req.AreaID,
		ScheduleID: req.ScheduleID,
		BadgeCode:  newBadgeCode(req.DNI),
		Estado:     domain.EstadoActive,
	}

	if req.Photo != nil && req.PhotoInfo != nil {
		photoURL, err := s.uploadPhoto(ctx, req.Photo, req.PhotoInfo)
		if err != nil {
			return domain.WorkerResponse{}, err
		}
		w.PhotoURL = &photoURL
	}

	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return domain.WorkerResponse{}, err
	}

	slog.Info("worker registered", "worker_id", created.ID, "dni", created.DNI)
	return s.mapWorkerToResponse(created)
}

func (s *WorkerServiceImpl) Update(ctx context.Context, id string, req domain.UpdateWorkerRequest) (domain.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WorkerResponse{}, err
	}
	oldPhotoURL := w.PhotoURL

	if req.Names != nil {
		w.Names = strings.TrimSpace(*req.Names)
	}
	if req.Surnames != nil {
		w.Surnames = strings.TrimSpace(*req.Surnames)
	}
	if req.Email != nil {
		w.Email = req.Email
	}
	if req.AreaID != nil {
		w.AreaID = *req.AreaID
	}
	if req.ScheduleID != nil {
		if *req.ScheduleID == "" {
			w.ScheduleID = nil
		} else {
			w.ScheduleID = req.ScheduleID
		}
	}

	// A new photo replaces the stored one; when none is sent the old
	// photo is kept.
	if req.Photo != nil && req.PhotoInfo != nil {
		photoURL, err := s.uploadPhoto(ctx, req.Photo, req.PhotoInfo)
		if err != nil {
			return domain.WorkerResponse{}, err
		}
		w.PhotoURL = &photoURL
	}

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return domain.WorkerResponse{}, err
	}

	if req.Photo != nil && oldPhotoURL != nil && (w.PhotoURL == nil || *oldPhotoURL != *w.PhotoURL) {
		if err := s.storage.Delete(ctx, *oldPhotoURL); err != nil {
			slog.Warn("failed to remove replaced worker photo", "worker_id", id, "photo", *oldPhotoURL, "error", err)
		}
	}

	updated, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WorkerResponse{}, err
	}
	return s.mapWorkerToResponse(updated)
}

func (s *WorkerServiceImpl) SetEstado(ctx context.Context, id string, estado string) error {
	if estado != domain.EstadoActive && estado != domain.EstadoInactive {
		return fmt.Errorf("invalid estado %q", estado)
	}
	return s.workerRepo.SetEstado(ctx, id, estado)
}

func (s *WorkerServiceImpl) uploadPhoto(ctx context.Context, photo multipart.File, info *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(info.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	path := fmt.Sprintf("fotos/%s%s", uuid.NewString(), ext)

	url, err := s.storage.Upload(ctx, photo, path)
	if err != nil {
		return "", fmt.Errorf("failed to store worker photo: %w", err)
	}
	return url, nil
}

func (s *WorkerServiceImpl) mapWorkerToResponse(w domain.Worker) (domain.WorkerResponse, error) {
	qrImage, err := qr.EncodeDataURI(w.BadgeCode)
	if err != nil {
		return domain.WorkerResponse{}, fmt.Errorf("failed to render badge QR: %w", err)
	}

	return domain.WorkerResponse{
		ID:           w.ID,
		DNI:          w.DNI,
		Names:        w.Names,
		Surnames:     w.Surnames,
		Email:        w.Email,
		AreaID:       w.AreaID,
		AreaName:     w.AreaName,
		ScheduleID:   w.ScheduleID,
		ScheduleName: w.ScheduleName,
		PhotoURL:     w.PhotoURL,
		BadgeCode:    w.BadgeCode,
		QRImage:      qrImage,
		Estado:       w.Estado,
	}, nil
}

// newBadgeCode builds the value encoded in a worker's printed QR badge.
// The DNI prefix keeps codes human-traceable; the random suffix makes
// them unguessable so a badge cannot be forged from a known DNI.
func newBadgeCode(dni string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("QR-%s-%s", dni, suffix)
}
