package tutor

// StudentIDConstraints is the message returned for an invalid student ID.
const StudentIDConstraints = "Student IDs should start with A, followed by 7 numbers, " +
	"and end with any capital letter"

const studentIDTag = "required,studentid"

// StudentID is a tutor's matriculation number, e.g. A1234567X. It is the
// business key used by Tutor.IsSameTutor.
type StudentID struct {
	value string
}

// NewStudentID validates raw and wraps it.
func NewStudentID(raw string) (StudentID, error) {
	if !IsValidStudentID(raw) {
		return StudentID{}, constraint("tutor.NewStudentID", StudentIDConstraints)
	}
	return StudentID{value: raw}, nil
}

// IsValidStudentID reports whether raw is a letter A, seven digits and one
// capital letter.
func IsValidStudentID(raw string) bool {
	return matches(raw, studentIDTag)
}

func (s StudentID) String() string {
	return s.value
}
