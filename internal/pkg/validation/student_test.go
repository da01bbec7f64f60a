package validation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/studentroster/internal/app/models/dto"
)

// fixedNow pins the clock so the future-date rule is deterministic
var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newValidator() *StudentValidator {
	return NewStudentValidator(func() time.Time { return fixedNow })
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

func TestValidate_MinimalValidInput(t *testing.T) {
	input, errs := newValidator().Validate(validRequest())
	require.Nil(t, errs)

	assert.Equal(t, "Ada", input.FirstName)
	assert.Equal(t, "Lovelace", input.LastName)
	assert.Equal(t, 36, input.Age)
	assert.Equal(t, "1988-12-10", input.DateOfBirth)
	assert.Equal(t, "ada@example.com", input.Email)
	assert.Nil(t, input.MiddleName)
	assert.Nil(t, input.CurrentLocation)
	assert.Nil(t, input.Phone)
}

func TestValidate_TrimsAndNormalizesOptionalFields(t *testing.T) {
	req := validRequest()
	req.FirstName = "  Ada "
	req.MiddleName = "   "
	req.CurrentLocation = " London "
	req.Phone = " +44 20 7946 0000 "

	input, errs := newValidator().Validate(req)
	require.Nil(t, errs)

	assert.Equal(t, "Ada", input.FirstName)
	assert.Nil(t, input.MiddleName, "whitespace-only middle name normalizes to nil")
	require.NotNil(t, input.CurrentLocation)
	assert.Equal(t, "London", *input.CurrentLocation)
	require.NotNil(t, input.Phone)
	assert.Equal(t, "+44 20 7946 0000", *input.Phone)
}

func TestValidate_RequiredNames(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.StudentRequest)
		field   string
		code    Code
		message string
	}{
		{
			name:    "empty first name",
			mutate:  func(r *dto.StudentRequest) { r.FirstName = "" },
			field:   "first_name",
			code:    CodeRequired,
			message: "First name is required",
		},
		{
			name:    "whitespace last name",
			mutate:  func(r *dto.StudentRequest) { r.LastName = "   " },
			field:   "last_name",
			code:    CodeRequired,
			message: "Last name is required",
		},
		{
			name:   "first name over 100 chars",
			mutate: func(r *dto.StudentRequest) { r.FirstName = strings.Repeat("a", 101) },
			field:  "first_name",
			code:   CodeTooLong,
		},
		{
			name:   "middle name over 100 chars",
			mutate: func(r *dto.StudentRequest) { r.MiddleName = strings.Repeat("b", 101) },
			field:  "middle_name",
			code:   CodeTooLong,
		},
		{
			name:   "location over 255 chars",
			mutate: func(r *dto.StudentRequest) { r.CurrentLocation = strings.Repeat("c", 256) },
			field:  "current_location",
			code:   CodeTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, errs := newValidator().Validate(req)
			require.NotNil(t, errs)

			fieldErr, ok := errs.ByField(tt.field)
			require.True(t, ok, "expected an error on %s", tt.field)
			assert.Equal(t, tt.code, fieldErr.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, fieldErr.Message)
			}
		})
	}
}

func TestValidate_AgeCoercion(t *testing.T) {
	tests := []struct {
		name string
		age  interface{}
		want int
		code Code
	}{
		{name: "json number", age: json.Number("21"), want: 21},
		{name: "float from decoder", age: float64(36), want: 36},
		{name: "numeric string", age: "17", want: 17},
		{name: "zero is valid", age: float64(0), want: 0},
		{name: "upper bound", age: "150", want: 150},
		{name: "negative", age: float64(-1), code: CodeOutOfRange},
		{name: "over 150", age: "151", code: CodeOutOfRange},
		{name: "fractional", age: 21.5, code: CodeInvalidType},
		{name: "non-numeric string", age: "twenty", code: CodeInvalidType},
		{name: "missing", age: nil, code: CodeInvalidType},
		{name: "boolean", age: true, code: CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Age = tt.age

			input, errs := newValidator().Validate(req)
			if tt.code == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.want, input.Age)
				return
			}

			require.NotNil(t, errs)
			fieldErr, ok := errs.ByField("age")
			require.True(t, ok)
			assert.Equal(t, tt.code, fieldErr.Code)
		})
	}
}

func TestValidate_AgeErrorNotMaskedByOtherFields(t *testing.T) {
	req := validRequest()
	req.Age = "nope"

	_, errs := newValidator().Validate(req)
	require.NotNil(t, errs)
	require.Len(t, errs.Fields, 1, "age is the only violation, nothing should mask it")
	assert.Equal(t, "age", errs.First().Field)
}

func TestValidate_DateOfBirth(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want string
		code Code
	}{
		{name: "plain date", dob: "1988-12-10", want: "1988-12-10"},
		{name: "today is not future", dob: "2025-06-15", want: "2025-06-15"},
		{name: "rfc3339 normalized to date", dob: "1988-12-10T08:30:00Z", want: "1988-12-10"},
		{name: "tomorrow", dob: "2025-06-16", code: CodeFutureDate},
		{name: "far future", dob: "2100-01-01", code: CodeFutureDate},
		{name: "garbage", dob: "not-a-date", code: CodeInvalidDate},
		{name: "impossible day", dob: "2024-02-30", code: CodeInvalidDate},
		{name: "empty", dob: "", code: CodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.DateOfBirth = tt.dob

			input, errs := newValidator().Validate(req)
			if tt.code == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.want, input.DateOfBirth)
				return
			}

			require.NotNil(t, errs)
			fieldErr, ok := errs.ByField("date_of_birth")
			require.True(t, ok)
			assert.Equal(t, tt.code, fieldErr.Code)
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		code  Code
	}{
		{name: "digits and symbols", phone: "+1 (555) 010-2000"},
		{name: "dots", phone: "555.010.2000"},
		{name: "empty is nil not error", phone: ""},
		{name: "letter rejected", phone: "555-CALL-ME", code: CodeInvalidFormat},
		{name: "over 50 chars", phone: strings.Repeat("1", 51), code: CodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Phone = tt.phone

			input, errs := newValidator().Validate(req)
			if tt.code == "" {
				require.Nil(t, errs)
				if tt.phone == "" {
					assert.Nil(t, input.Phone)
				} else {
					require.NotNil(t, input.Phone)
					assert.Equal(t, tt.phone, *input.Phone)
				}
				return
			}

			require.NotNil(t, errs)
			fieldErr, ok := errs.ByField("phone")
			require.True(t, ok)
			assert.Equal(t, tt.code, fieldErr.Code)
		})
	}
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		code    Code
		message string
	}{
		{name: "plain address", email: "grace@example.com"},
		{name: "plus tag", email: "grace+roster@example.co.uk"},
		{name: "empty", email: "", code: CodeRequired, message: "Email is required"},
		{name: "not an email", email: "not-an-email", code: CodeInvalidFormat, message: "Invalid email address"},
		{name: "missing tld", email: "grace@example", code: CodeInvalidFormat, message: "Invalid email address"},
		{name: "over 255 chars", email: strings.Repeat("a", 250) + "@example.com", code: CodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Email = tt.email

			input, errs := newValidator().Validate(req)
			if tt.code == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.email, input.Email)
				return
			}

			require.NotNil(t, errs)
			fieldErr, ok := errs.ByField("email")
			require.True(t, ok)
			assert.Equal(t, tt.code, fieldErr.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, fieldErr.Message)
			}
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	req := dto.StudentRequest{
		FirstName:   "",
		LastName:    "",
		Age:         "nan",
		DateOfBirth: "bad",
		Email:       "bad-email",
		Phone:       "letters!",
	}

	_, errs := newValidator().Validate(req)
	require.NotNil(t, errs)
	assert.Len(t, errs.Fields, 6)

	// First error follows field declaration order, so the surfaced message
	// is stable across runs.
	assert.Equal(t, "first_name", errs.First().Field)
	assert.Equal(t, "First name is required", errs.First().Message)
}

func TestValidate_ErrorString(t *testing.T) {
	req := validRequest()
	req.Email = "nope"

	_, errs := newValidator().Validate(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs.Error(), "Invalid email address")
}
