package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkerRepo struct {
	workers map[string]domain.Worker
	nextID  int
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[string]domain.Worker{}, nextID: 1}
}

func (f *fakeWorkerRepo) FindActiveByBadge(ctx context.Context, badgeCode string) (*domain.Worker, error) {
	for _, w := range f.workers {
		if w.BadgeCode == badgeCode && w.Estado == domain.EstadoActive {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (domain.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return domain.Worker{}, domain.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]domain.Worker, error) {
	var out []domain.Worker
	for _, w := range f.workers {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	w.ID = fmt.Sprintf("w%d", f.nextID)
	f.nextID++
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w domain.Worker) error {
	if _, ok := f.workers[w.ID]; !ok {
		return domain.ErrWorkerNotFound
	}
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) SetEstado(ctx context.Context, id string, estado string) error {
	w, ok := f.workers[id]
	if !ok {
		return domain.ErrWorkerNotFound
	}
	w.Estado = estado
	f.workers[id] = w
	return nil
}

func (f *fakeWorkerRepo) CountBySchedule(ctx context.Context, scheduleID string) (int, error) {
	n := 0
	for _, w := range f.workers {
		if w.ScheduleID != nil && *w.ScheduleID == scheduleID {
			n++
		}
	}
	return n, nil
}

type fakeFileStorage struct {
	uploads []string
	deletes []string
}

func (f *fakeFileStorage) Upload(ctx context.Context, file io.Reader, path string) (string, error) {
	f.uploads = append(f.uploads, path)
	return "/uploads/" + path, nil
}

func (f *fakeFileStorage) Delete(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	return nil
}

func (f *fakeFileStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, nil
}

type stubPhoto struct {
	*bytes.Reader
}

func (stubPhoto) Close() error { return nil }

func photoUpload(name string, size int) (multipart.File, *multipart.FileHeader) {
	data := bytes.Repeat([]byte{0x89}, size)
	return stubPhoto{bytes.NewReader(data)}, &multipart.FileHeader{
		Filename: name,
		Size:     int64(size),
	}
}

func strPtr(s string) *string { return &s }

func TestWorkerService_Create_BadgeCode(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	resp, err := svc.Create(context.Background(), domain.CreateWorkerRequest{
		DNI:      "12345678",
		Names:    " Ana ",
		Surnames: "Quispe",
		AreaID:   "a1",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.BadgeCode, "QR-12345678-"), "badge code %q must embed the DNI", resp.BadgeCode)
	assert.Equal(t, "Ana", resp.Names)
	assert.Equal(t, domain.EstadoActive, resp.Estado)
	assert.NotEmpty(t, resp.QRImage)
	assert.Empty(t, store.uploads)
}

func TestWorkerService_Create_WithPhoto(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	photo, info := photoUpload("ana.png", 512)
	resp, err := svc.Create(context.Background(), domain.CreateWorkerRequest{
		DNI:       "12345678",
		Names:     "Ana",
		Surnames:  "Quispe",
		AreaID:    "a1",
		Photo:     photo,
		PhotoInfo: info,
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.True(t, strings.HasPrefix(store.uploads[0], "fotos/"))
	assert.True(t, strings.HasSuffix(store.uploads[0], ".png"))
	require.NotNil(t, resp.PhotoURL)
	assert.Equal(t, "/uploads/"+store.uploads[0], *resp.PhotoURL)
}

func TestWorkerService_Update_ReplacesPhoto(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	created, err := repo.Create(context.Background(), domain.Worker{
		DNI:       "12345678",
		Names:     "Ana",
		Surnames:  "Quispe",
		AreaID:    "a1",
		BadgeCode: "QR-12345678-abc",
		Estado:    domain.EstadoActive,
		PhotoURL:  strPtr("/uploads/fotos/old.png"),
	})
	require.NoError(t, err)

	photo, info := photoUpload("nueva.jpg", 1024)
	resp, err := svc.Update(context.Background(), created.ID, domain.UpdateWorkerRequest{
		Photo:     photo,
		PhotoInfo: info,
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	require.NotNil(t, resp.PhotoURL)
	assert.Equal(t, "/uploads/"+store.uploads[0], *resp.PhotoURL)
	assert.Equal(t, []string{"/uploads/fotos/old.png"}, store.deletes, "replaced photo must be removed from storage")
}

func TestWorkerService_Update_KeepsPhotoWhenNoneSent(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	created, err := repo.Create(context.Background(), domain.Worker{
		DNI:       "12345678",
		Names:     "Ana",
		Surnames:  "Quispe",
		AreaID:    "a1",
		BadgeCode: "QR-12345678-abc",
		Estado:    domain.EstadoActive,
		PhotoURL:  strPtr("/uploads/fotos/old.png"),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, domain.UpdateWorkerRequest{
		Names: strPtr("Ana Maria"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", resp.Names)
	require.NotNil(t, resp.PhotoURL)
	assert.Equal(t, "/uploads/fotos/old.png", *resp.PhotoURL)
	assert.Empty(t, store.uploads)
	assert.Empty(t, store.deletes)
}

func TestWorkerService_Update_OversizedPhotoRejected(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	created, err := repo.Create(context.Background(), domain.Worker{
		DNI:       "12345678",
		Names:     "Ana",
		Surnames:  "Quispe",
		AreaID:    "a1",
		BadgeCode: "QR-12345678-abc",
		Estado:    domain.EstadoActive,
	})
	require.NoError(t, err)

	photo := stubPhoto{bytes.NewReader([]byte{0x89})}
	info := &multipart.FileHeader{Filename: "enorme.png", Size: 6 << 20}

	_, err = svc.Update(context.Background(), created.ID, domain.UpdateWorkerRequest{
		Photo:     photo,
		PhotoInfo: info,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "foto")
	assert.Empty(t, store.uploads)
}

func TestWorkerService_Update_DNIStaysFixed(t *testing.T) {
	repo := newFakeWorkerRepo()
	store := &fakeFileStorage{}
	svc := NewWorkerService(repo, store)

	created, err := repo.Create(context.Background(), domain.Worker{
		DNI:       "12345678",
		Names:     "Ana",
		Surnames:  "Quispe",
		AreaID:    "a1",
		BadgeCode: "QR-12345678-abc",
		Estado:    domain.EstadoActive,
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, domain.UpdateWorkerRequest{
		Names: strPtr("Lucia"),
	})
	require.NoError(t, err)

	// The printed badge encodes the DNI, so it never changes after
	// registration.
	assert.Equal(t, "12345678", resp.DNI)
	assert.Equal(t, "QR-12345678-abc", resp.BadgeCode)
}
