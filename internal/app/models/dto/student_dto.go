package dto

import "github.com/yigit/coursedesk/internal/app/models"

// StudentRequest is the payload for creating or replacing a student
type StudentRequest struct {
	FirstName string `json:"first_name" binding:"required,notblank,max=25" example:"Harry"`
	LastName  string `json:"last_name" binding:"required,notblank,max=25" example:"Potter"`
	Email     string `json:"email" binding:"required,email,max=254" example:"harry@hogwarts.edu"`
}

// ToModel converts the request to a Student
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// PatchStudentRequest is the payload for a partial student update
type PatchStudentRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,notblank,max=25"`
	LastName  *string `json:"last_name" binding:"omitempty,notblank,max=25"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
}

// ApplyTo merges the supplied fields onto student
func (r *PatchStudentRequest) ApplyTo(student *models.Student) {
	if r.FirstName != nil {
		student.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		student.LastName = *r.LastName
	}
	if r.Email != nil {
		student.Email = *r.Email
	}
}

// StudentResponse represents a student on the wire
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Harry"`
	LastName  string `json:"last_name" example:"Potter"`
	Email     string `json:"email" example:"harry@hogwarts.edu"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

// FromStudents converts a slice of students
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}
