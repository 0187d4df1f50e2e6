package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	observer   Observer
	logger     *slog.Logger
}

// Option configures a ServiceImpl.
type Option func(*ServiceImpl)

// WithObserver reports written records to o.
func WithObserver(o Observer) Option {
	return func(s *ServiceImpl) { s.observer = o }
}

// WithLogger sets the logger used for skipped records.
func WithLogger(l *slog.Logger) Option {
	return func(s *ServiceImpl) { s.logger = l }
}

// NewService creates a new history service
func NewService(repository Repository, opts ...Option) Service {
	s := &ServiceImpl{
		repository: repository,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordInput stores the input of a task run by a logged-in user
func (s *ServiceImpl) RecordInput(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error) {
	if !session.Authenticated() {
		return nil, nil
	}
	return s.create(ctx, session, action, details, true)
}

// Save stores a full record
func (s *ServiceImpl) Save(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	return s.create(ctx, session, action, details, false)
}

func (s *ServiceImpl) create(ctx context.Context, session auth.Session, action models.Action, details any, inputOnly bool) (*models.History, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	raw, err := encodeDetails(details)
	if err != nil {
		return nil, err
	}

	record := &models.History{
		Action:    action,
		Details:   raw,
		Owner:     session.UserID,
		InputOnly: inputOnly,
	}
	if err := s.repository.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.observer != nil {
		s.observer.ObserveHistory(string(action), inputOnly)
	}
	return record, nil
}

// Resave replaces the details of a record. Only the owner may do this,
// administrators included.
func (s *ServiceImpl) Resave(ctx context.Context, session auth.Session, id string, action models.Action, details any) (*models.History, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Owns(record.Owner) {
		return nil, ErrForbidden
	}
	if action != "" && action != record.Action {
		return nil, fmt.Errorf("%w: record is %s", ErrActionMismatch, record.Action)
	}

	raw, err := encodeDetails(details)
	if err != nil {
		return nil, err
	}
	record.Details = raw
	record.InputOnly = false
	record.Malformed = false

	if err := s.repository.Replace(ctx, record); err != nil {
		return nil, err
	}
	if s.observer != nil {
		s.observer.ObserveHistory(string(record.Action), false)
	}
	return record, nil
}

// Get returns a record readable by session
func (s *ServiceImpl) Get(ctx context.Context, session auth.Session, id string) (*models.History, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Owns(record.Owner) && !session.Admin {
		return nil, ErrForbidden
	}
	if record.Malformed {
		return nil, fmt.Errorf("%w: stored details are not valid JSON", ErrInvalidDetails)
	}
	return record, nil
}

// List returns the session's records, newest first. Records whose details
// cannot be decoded are logged and left out.
func (s *ServiceImpl) List(ctx context.Context, session auth.Session, opts ListOptions) ([]models.History, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}

	filter := Filter{Owner: session.UserID, InputOnly: opts.InputOnly}
	if opts.All && session.Admin {
		filter.Owner = ""
	}

	records, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.History, 0, len(records))
	for _, r := range records {
		if r.Malformed {
			s.logger.Warn("skipping history record with malformed details", "id", r.ID, "owner", r.Owner)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Delete removes a record owned by session. Administrators may delete any
// record.
func (s *ServiceImpl) Delete(ctx context.Context, session auth.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !session.Owns(record.Owner) && !session.Admin {
		return ErrForbidden
	}
	return s.repository.Delete(ctx, id)
}

// encodeDetails accepts a struct, a map or raw JSON and requires the result
// to be a JSON object.
func encodeDetails(details any) (json.RawMessage, error) {
	var raw []byte
	switch d := details.(type) {
	case json.RawMessage:
		raw = d
	case []byte:
		raw = d
	default:
		b, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDetails, err)
		}
		raw = b
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidDetails
	}
	return json.RawMessage(trimmed), nil
}
