package seeder

import (
	"context"

	"resume-screen/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
