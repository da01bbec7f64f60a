package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kerem/studentroster/internal/app/models"
	"github.com/kerem/studentroster/internal/app/models/dto"
	"github.com/kerem/studentroster/internal/pkg/apperrors"
	"github.com/kerem/studentroster/internal/pkg/validation"
)

// StudentStore is the persistence boundary the service talks to. It is
// satisfied by repositories.StudentRepository and substitutable in tests.
type StudentStore interface {
	Search(ctx context.Context, query, location string) ([]models.Student, error)
	Insert(ctx context.Context, input models.StudentInput) (int64, error)
	Update(ctx context.Context, id int64, input models.StudentInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StudentService composes the validator and the store into the four record
// operations. It holds no state between requests; all state lives in the
// store.
type StudentService struct {
	store     StudentStore
	validator *validation.StudentValidator
	timeout   time.Duration
}

// NewStudentService creates a new student service instance. A zero timeout
// disables the per-operation deadline.
func NewStudentService(store StudentStore, validator *validation.StudentValidator, timeout time.Duration) *StudentService {
	return &StudentService{
		store:     store,
		validator: validator,
		timeout:   timeout,
	}
}

func (s *StudentService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Search returns matching students ordered by most recently updated first.
// Absent parameters arrive as empty strings and are never a validation
// error; both are trimmed before they reach the store.
func (s *StudentService) Search(ctx context.Context, query, location string) ([]models.Student, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	students, err := s.store.Search(ctx, strings.TrimSpace(query), strings.TrimSpace(location))
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return students, nil
}

// Create validates the request and inserts a new record, returning the
// generated id. Validation failures are reported before any persistence
// call is made.
func (s *StudentService) Create(ctx context.Context, req dto.StudentRequest) (int64, error) {
	input, verrs := s.validator.Validate(req)
	if verrs != nil {
		return 0, verrs
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	id, err := s.store.Insert(ctx, input)
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// Update validates the request and overwrites every editable field of the
// record with the given id. A nonexistent id reports ErrStudentNotFound.
func (s *StudentService) Update(ctx context.Context, id int64, req dto.StudentRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", apperrors.ErrInvalidID)
	}

	input, verrs := s.validator.Validate(req)
	if verrs != nil {
		return verrs
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	affected, err := s.store.Update(ctx, id, input)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes the record with the given id. A nonexistent id reports
// ErrStudentNotFound rather than silently succeeding.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", apperrors.ErrInvalidID)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
