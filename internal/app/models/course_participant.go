package models

// CourseParticipant links a student to a course. The (course, student) pair is unique.
type CourseParticipant struct {
	ID        int64 `json:"id" db:"id"`
	CourseID  int64 `json:"courseId" db:"course_id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	Completed bool  `json:"completed" db:"completed"`
}

// ParticipantDetail is a participant row joined with its student.
type ParticipantDetail struct {
	CourseParticipant
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// FullName joins first and last name the same way the report does.
func (p *ParticipantDetail) FullName() string {
	return p.FirstName + " " + p.LastName
}
