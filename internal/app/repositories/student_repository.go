package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kerem/studentroster/internal/app/models"
)

// SearchLimit caps every search result set regardless of how many rows match
const SearchLimit = 500

// Querier is the slice of pgxpool.Pool the repository needs. Both
// *pgxpool.Pool and the pgxmock pool satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// StudentRepository handles database operations for student records. All
// statements use parameter binding; no value is ever concatenated into SQL.
// Inputs are assumed to be validated already, the repository re-checks
// nothing.
type StudentRepository struct {
	db Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// studentColumns is the stable row shape every read returns. date_of_birth
// is rendered server-side as a plain calendar date so the value does not
// shift with the session time zone.
const studentColumns = `id, first_name, middle_name, last_name, age,
		       to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
		       current_location, phone, email, created_at, updated_at`

// Search returns students ordered by most recently updated first, capped at
// SearchLimit rows. A non-empty query matches a case-insensitive substring
// of first_name, middle_name, last_name, email or phone; a non-empty
// location matches current_location the same way. Both conditions combine
// with AND; both empty returns the newest rows unfiltered.
func (r *StudentRepository) Search(ctx context.Context, query, location string) ([]models.Student, error) {
	sql := `
		SELECT ` + studentColumns + `
		FROM students`

	var (
		conditions []string
		args       []any
	)

	if query != "" {
		like := "%" + query + "%"
		args = append(args, like)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR middle_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)",
			n, n, n, n, n))
	}
	if location != "" {
		args = append(args, "%"+location+"%")
		conditions = append(conditions, fmt.Sprintf("current_location ILIKE $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			sql += "\n\t\tWHERE " + cond
		} else {
			sql += "\n\t\tAND " + cond
		}
	}
	sql += fmt.Sprintf("\n\t\tORDER BY updated_at DESC\n\t\tLIMIT %d", SearchLimit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID,
			&s.FirstName,
			&s.MiddleName,
			&s.LastName,
			&s.Age,
			&s.DateOfBirth,
			&s.CurrentLocation,
			&s.Phone,
			&s.Email,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading student rows: %w", err)
	}

	return students, nil
}

// Insert creates a new student row and returns the generated id.
// created_at and updated_at are assigned by the database at execution time.
func (r *StudentRepository) Insert(ctx context.Context, input models.StudentInput) (int64, error) {
	query := `
		INSERT INTO students
			(first_name, middle_name, last_name, age, date_of_birth, current_location, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		input.FirstName,
		input.MiddleName,
		input.LastName,
		input.Age,
		input.DateOfBirth,
		input.CurrentLocation,
		input.Phone,
		input.Email,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting student: %w", err)
	}

	return id, nil
}

// Update overwrites every editable field of the given row and refreshes
// updated_at; id and created_at are never touched. It returns the number of
// rows affected: zero means the id does not exist, which is not an error at
// this layer.
func (r *StudentRepository) Update(ctx context.Context, id int64, input models.StudentInput) (int64, error) {
	query := `
		UPDATE students SET
			first_name = $1, middle_name = $2, last_name = $3, age = $4, date_of_birth = $5,
			current_location = $6, phone = $7, email = $8, updated_at = now()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		input.FirstName,
		input.MiddleName,
		input.LastName,
		input.Age,
		input.DateOfBirth,
		input.CurrentLocation,
		input.Phone,
		input.Email,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Delete removes the row with the given id and reports rows affected, with
// the same zero-rows semantics as Update.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
