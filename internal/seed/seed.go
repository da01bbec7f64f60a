package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kerem/studentroster/internal/app/models"
	appRepos "github.com/kerem/studentroster/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// sampleStudents is a small development roster
var sampleStudents = []models.StudentInput{
	{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Age:         36,
		DateOfBirth: "1988-12-10",
		Email:       "ada@example.com",
	},
	{
		FirstName:       "Grace",
		MiddleName:      strPtr("Brewster"),
		LastName:        "Hopper",
		Age:             37,
		DateOfBirth:     "1987-12-09",
		CurrentLocation: strPtr("Arlington"),
		Phone:           strPtr("+1 (555) 010-2000"),
		Email:           "grace@example.com",
	},
	{
		FirstName:       "Alan",
		LastName:        "Turing",
		Age:             41,
		DateOfBirth:     "1984-06-23",
		CurrentLocation: strPtr("Manchester"),
		Email:           "alan@example.com",
	},
}

// CreateSampleStudents inserts a handful of students into an empty table so
// a fresh development database has something to search. It never touches a
// table that already holds data.
func CreateSampleStudents(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Students table not empty, skipping sample data")
		return nil
	}

	repo := appRepos.NewStudentRepository(dbPool)
	for _, input := range sampleStudents {
		if _, err := repo.Insert(ctx, input); err != nil {
			lgr.Error().Err(err).Str("email", input.Email).Msg("Error seeding sample student")
			return err
		}
	}

	lgr.Info().Int("count", len(sampleStudents)).Msg("Sample students created")
	return nil
}
