package dto

import "github.com/kerem/studentroster/internal/app/models"

// StudentRequest is the JSON body accepted by create and update. Every
// editable field is re-supplied on update; nothing is partially updatable.
// Age is deliberately untyped so that both `"21"` and `21` are accepted
// and coerced by the validator.
type StudentRequest struct {
	FirstName       string      `json:"first_name" example:"Ada"`
	MiddleName      string      `json:"middle_name" example:""`
	LastName        string      `json:"last_name" example:"Lovelace"`
	Age             interface{} `json:"age" swaggertype:"integer" example:"36"`
	DateOfBirth     string      `json:"date_of_birth" example:"1988-12-10"`
	CurrentLocation string      `json:"current_location" example:"London"`
	Phone           string      `json:"phone" example:"+44 20 7946 0000"`
	Email           string      `json:"email" example:"ada@example.com"`
}

// StudentListResponse wraps search results
type StudentListResponse struct {
	Data []models.Student `json:"data"`
}

// StudentCreatedResponse carries the generated id of a new record
type StudentCreatedResponse struct {
	ID int64 `json:"id" example:"42"`
}

// OKResponse acknowledges a successful update or delete
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// NewStudentListResponse builds a list response, normalizing a nil slice to
// an empty one so the wire shape is always a JSON array.
func NewStudentListResponse(students []models.Student) StudentListResponse {
	if students == nil {
		students = []models.Student{}
	}
	return StudentListResponse{Data: students}
}
