// Package master manages the small catalog tables (areas) that workers
// and schedules hang off.
package master

import (
	"context"
	"fmt"
	"strings"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/area"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type MasterServiceImpl struct {
	areaRepo area.Repository
}

func NewMasterService(areaRepo area.Repository) area.Service {
	return &MasterServiceImpl{areaRepo: areaRepo}
}

func (s *MasterServiceImpl) List(ctx context.Context) ([]area.AreaResponse, error) {
	areas, err := s.areaRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]area.AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, area.AreaResponse{
			ID:     a.ID,
			Name:   a.Name,
			Estado: a.Estado,
		})
	}
	return responses, nil
}

func (s *MasterServiceImpl) Create(ctx context.Context, req area.CreateAreaRequest) (area.AreaResponse, error) {
	name := strings.TrimSpace(req.Name)
	if validator.IsEmpty(name) {
		return area.AreaResponse{}, validator.ValidationErrors{{
			Field:   "nombre_area",
			Message: "nombre_area is required",
		}}
	}

	a, err := s.areaRepo.Create(ctx, name)
	if err != nil {
		return area.AreaResponse{}, err
	}
	return area.AreaResponse{ID: a.ID, Name: a.Name, Estado: a.Estado}, nil
}

func (s *MasterServiceImpl) SetEstado(ctx context.Context, id string, estado string) error {
	if estado != "activo" && estado != "inactivo" {
		return fmt.Errorf("invalid estado %q", estado)
	}
	return s.areaRepo.SetEstado(ctx, id, estado)
}
