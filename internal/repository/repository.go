package repository

import (
	"context"
	"database/sql"
	"time"

	"battery_dashboard/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// EventRepo is the append-only wizard history.
type EventRepo interface {
	Append(ctx context.Context, e models.WizardEvent) error
	List(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.WizardEvent, error)
}

type Repository struct {
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
