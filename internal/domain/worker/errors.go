package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrDNIExists      = errors.New("DNI already registered")
)
