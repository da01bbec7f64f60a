package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/studentroster/internal/app/models"
	"github.com/kerem/studentroster/internal/app/models/dto"
	"github.com/kerem/studentroster/internal/pkg/apperrors"
	"github.com/kerem/studentroster/internal/pkg/validation"
)

// stubStore records calls and returns canned results
type stubStore struct {
	searchFn func(ctx context.Context, query, location string) ([]models.Student, error)
	insertFn func(ctx context.Context, input models.StudentInput) (int64, error)
	updateFn func(ctx context.Context, id int64, input models.StudentInput) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)

	insertCalled bool
	updateCalled bool
}

func (s *stubStore) Search(ctx context.Context, query, location string) ([]models.Student, error) {
	return s.searchFn(ctx, query, location)
}

func (s *stubStore) Insert(ctx context.Context, input models.StudentInput) (int64, error) {
	s.insertCalled = true
	return s.insertFn(ctx, input)
}

func (s *stubStore) Update(ctx context.Context, id int64, input models.StudentInput) (int64, error) {
	s.updateCalled = true
	return s.updateFn(ctx, id, input)
}

func (s *stubStore) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

func newService(store *stubStore) *StudentService {
	v := validation.NewStudentValidator(func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
	return NewStudentService(store, v, 5*time.Second)
}

func validRequest() dto.StudentRequest {
	return dto.StudentRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Age:         float64(36),
		DateOfBirth: "1988-12-10",
		Email:       "ada@example.com",
	}
}

func TestSearch_TrimsParameters(t *testing.T) {
	var gotQuery, gotLocation string
	store := &stubStore{
		searchFn: func(ctx context.Context, query, location string) ([]models.Student, error) {
			gotQuery, gotLocation = query, location
			return []models.Student{{ID: 1}}, nil
		},
	}

	students, err := newService(store).Search(context.Background(), "  grace ", " london  ")
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "grace", gotQuery)
	assert.Equal(t, "london", gotLocation)
}

func TestSearch_StoreFailureIsPersistenceError(t *testing.T) {
	store := &stubStore{
		searchFn: func(ctx context.Context, query, location string) ([]models.Student, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := newService(store).Search(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistenceError)
}

func TestCreate_ReturnsGeneratedID(t *testing.T) {
	var gotInput models.StudentInput
	store := &stubStore{
		insertFn: func(ctx context.Context, input models.StudentInput) (int64, error) {
			gotInput = input
			return 42, nil
		},
	}

	id, err := newService(store).Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Ada", gotInput.FirstName)
	assert.Nil(t, gotInput.MiddleName)
}

func TestCreate_ValidationFailureNeverTouchesStore(t *testing.T) {
	store := &stubStore{
		insertFn: func(ctx context.Context, input models.StudentInput) (int64, error) {
			return 42, nil
		},
	}

	req := validRequest()
	req.Email = "not-an-email"

	_, err := newService(store).Create(context.Background(), req)
	require.Error(t, err)

	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Invalid email address", verrs.First().Message)
	assert.False(t, store.insertCalled, "fail fast, no partial writes")
}

func TestCreate_StoreFailureIsPersistenceError(t *testing.T) {
	store := &stubStore{
		insertFn: func(ctx context.Context, input models.StudentInput) (int64, error) {
			return 0, errors.New("db down")
		},
	}

	_, err := newService(store).Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, apperrors.ErrPersistenceError)
}

func TestUpdate_Success(t *testing.T) {
	var gotID int64
	store := &stubStore{
		updateFn: func(ctx context.Context, id int64, input models.StudentInput) (int64, error) {
			gotID = id
			return 1, nil
		},
	}

	err := newService(store).Update(context.Background(), 7, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)
}

func TestUpdate_NonPositiveID(t *testing.T) {
	store := &stubStore{}

	for _, id := range []int64{0, -1} {
		err := newService(store).Update(context.Background(), id, validRequest())
		assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	}
	assert.False(t, store.updateCalled)
}

func TestUpdate_ValidationRunsBeforeStore(t *testing.T) {
	store := &stubStore{
		updateFn: func(ctx context.Context, id int64, input models.StudentInput) (int64, error) {
			return 1, nil
		},
	}

	req := validRequest()
	req.FirstName = ""

	err := newService(store).Update(context.Background(), 7, req)
	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.False(t, store.updateCalled)
}

func TestUpdate_ZeroRowsIsNotFound(t *testing.T) {
	store := &stubStore{
		updateFn: func(ctx context.Context, id int64, input models.StudentInput) (int64, error) {
			return 0, nil
		},
	}

	err := newService(store).Update(context.Background(), 9999, validRequest())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDelete_Success(t *testing.T) {
	store := &stubStore{
		deleteFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil },
	}

	require.NoError(t, newService(store).Delete(context.Background(), 7))
}

func TestDelete_ZeroRowsIsNotFoundNotPersistenceError(t *testing.T) {
	store := &stubStore{
		deleteFn: func(ctx context.Context, id int64) (int64, error) { return 0, nil },
	}

	err := newService(store).Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPersistenceError)
}

func TestDelete_NonPositiveID(t *testing.T) {
	err := newService(&stubStore{}).Delete(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestOperationsCarryDeadline(t *testing.T) {
	store := &stubStore{
		searchFn: func(ctx context.Context, query, location string) ([]models.Student, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "store calls run under a deadline")
			return nil, nil
		},
	}

	_, err := newService(store).Search(context.Background(), "", "")
	require.NoError(t, err)
}
