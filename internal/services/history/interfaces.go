package history

import (
	"context"
	"errors"
	"time"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
)

var (
	ErrNotFound        = errors.New("history record not found")
	ErrForbidden       = errors.New("history record belongs to another user")
	ErrUnauthenticated = errors.New("login required")
	ErrInvalidAction   = errors.New("invalid history action")
	ErrInvalidDetails  = errors.New("history details must be a JSON object")
	ErrActionMismatch  = errors.New("history record has a different action")
)

// Filter narrows a listing. Empty Owner lists every owner.
type Filter struct {
	Owner     string
	InputOnly *bool
}

// Repository defines the interface for history data access
type Repository interface {
	Create(ctx context.Context, record *models.History) error
	GetByID(ctx context.Context, id string) (*models.History, error)
	List(ctx context.Context, filter Filter) ([]models.History, error)
	Replace(ctx context.Context, record *models.History) error
	Delete(ctx context.Context, id string) error
	// DeleteInputOnlyBefore removes input-only records created before
	// cutoff and reports how many went.
	DeleteInputOnlyBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ListOptions controls what a session sees when listing.
type ListOptions struct {
	// All lists every owner's records; only honored for admins.
	All       bool
	InputOnly *bool
}

// Service defines the interface for history business logic. Every method
// takes the caller's session explicitly.
type Service interface {
	// RecordInput stores an input-only record for a task that just ran.
	// Anonymous sessions are skipped and yield a nil record.
	RecordInput(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error)
	Save(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error)
	Resave(ctx context.Context, session auth.Session, id string, action models.Action, details any) (*models.History, error)
	Get(ctx context.Context, session auth.Session, id string) (*models.History, error)
	List(ctx context.Context, session auth.Session, opts ListOptions) ([]models.History, error)
	Delete(ctx context.Context, session auth.Session, id string) error
}

// Observer is notified of every record written.
type Observer interface {
	ObserveHistory(action string, inputOnly bool)
}
