package area

import (
	"context"
	"errors"
	"time"
)

var ErrAreaNotFound = errors.New("area not found")

type Area struct {
	ID        string
	Name      string
	Estado    string
	CreatedAt time.Time
}

type Repository interface {
	List(ctx context.Context) ([]Area, error)
	Create(ctx context.Context, name string) (Area, error)
	SetEstado(ctx context.Context, id string, estado string) error
}

type Service interface {
	List(ctx context.Context) ([]AreaResponse, error)
	Create(ctx context.Context, req CreateAreaRequest) (AreaResponse, error)
	SetEstado(ctx context.Context, id string, estado string) error
}

type CreateAreaRequest struct {
	Name string `json:"nombre_area"`
}

type AreaResponse struct {
	ID     string `json:"id"`
	Name   string `json:"nombre_area"`
	Estado string `json:"estado"`
}
