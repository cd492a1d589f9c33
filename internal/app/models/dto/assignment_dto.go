package dto

import "github.com/yigit/coursedesk/internal/app/models"

// StudentAssignmentRequest is the body of the assign and unassign actions
type StudentAssignmentRequest struct {
	Course   int64   `json:"course" binding:"required,gt=0" example:"1"`
	Students []int64 `json:"students" binding:"required,dive,gt=0" example:"1,2,3"`
}

// UpdateParticipantRequest toggles the completion flag of an enrollment
type UpdateParticipantRequest struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}

// ParticipantResponse represents an enrolled student
type ParticipantResponse struct {
	StudentID int64  `json:"student_id" example:"1"`
	FullName  string `json:"full_name" example:"Harry Potter"`
	Email     string `json:"email" example:"harry@hogwarts.edu"`
	Completed bool   `json:"completed" example:"false"`
}

// FromParticipants converts participant rows to their wire form
func FromParticipants(participants []*models.ParticipantDetail) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, ParticipantResponse{
			StudentID: p.StudentID,
			FullName:  p.FullName(),
			Email:     p.Email,
			Completed: p.Completed,
		})
	}
	return out
}
