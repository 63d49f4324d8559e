package domain

import "time"

// QuestionKeys are the fixed Likert questions, in display order.
var QuestionKeys = [4]string{"p1", "p2", "p3", "p4"}

const (
	// CommentKey is the optional free-text answer.
	CommentKey = "comment"
	MinScore   = 1
	MaxScore   = 5
)

// Question describes one Likert item of the survey.
type Question struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Questions is the closed question catalog.
var Questions = []Question{
	{Key: "p1", Label: "Claridad", Min: MinScore, Max: MaxScore},
	{Key: "p2", Label: "Participación", Min: MinScore, Max: MaxScore},
	{Key: "p3", Label: "Puntualidad", Min: MinScore, Max: MaxScore},
	{Key: "p4", Label: "Dominio", Min: MinScore, Max: MaxScore},
}

// Answers holds validated scores plus an optional trimmed comment.
type Answers struct {
	P1      int    `json:"p1"`
	P2      int    `json:"p2"`
	P3      int    `json:"p3"`
	P4      int    `json:"p4"`
	Comment string `json:"comment,omitempty"`
}

// Score returns the value for a question key; unknown keys yield 0.
func (a Answers) Score(key string) int {
	switch key {
	case "p1":
		return a.P1
	case "p2":
		return a.P2
	case "p3":
		return a.P3
	case "p4":
		return a.P4
	}
	return 0
}

// SetScore assigns the value for a question key.
func (a *Answers) SetScore(key string, v int) {
	switch key {
	case "p1":
		a.P1 = v
	case "p2":
		a.P2 = v
	case "p3":
		a.P3 = v
	case "p4":
		a.P4 = v
	}
}

// SurveyResponse is one student's answers for one course.
type SurveyResponse struct {
	ID          string    `json:"id"`
	Student     string    `json:"student"`
	CourseID    string    `json:"courseId"`
	Answers     Answers   `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Ack confirms an accepted submission.
type Ack struct {
	ResponseID  string    `json:"responseId"`
	SubmittedAt time.Time `json:"submittedAt"`
}
