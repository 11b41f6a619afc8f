package domain

// Class is a teacher-owned class that students join with ClassCode.
type Class struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	ClassCode string `json:"class_code"`
	Subject   string `json:"subject,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ClassStudent is one roster entry of a class.
type ClassStudent struct {
	ID        string   `json:"id"`
	ClassID   string   `json:"class_id"`
	StudentID string   `json:"student_id"`
	JoinedAt  string   `json:"joined_at"`
	User      *UserRef `json:"user,omitempty"`
}

// StudentActivity aggregates what a student did inside a class.
type StudentActivity struct {
	StudentID       string  `json:"student_id"`
	StudentName     string  `json:"student_name,omitempty"`
	StudentEmail    string  `json:"student_email,omitempty"`
	LastActive      *string `json:"last_active"`
	QuestionsAsked  int     `json:"questions_asked"`
	ImagesSubmitted int     `json:"images_submitted"`
	NotesCreated    int     `json:"notes_created"`
}

// ClassSummary is the class projection embedded in a StudentClass.
type ClassSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassCode string `json:"class_code"`
	Subject   string `json:"subject,omitempty"`
	TeacherID string `json:"teacher_id"`
}

// StudentClass is a class membership seen from the student side.
type StudentClass struct {
	ID        string        `json:"id"`
	ClassID   string        `json:"class_id"`
	StudentID string        `json:"student_id"`
	JoinedAt  string        `json:"joined_at"`
	Class     *ClassSummary `json:"class,omitempty"`
}
