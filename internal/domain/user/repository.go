package user

import "context"

type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
}
