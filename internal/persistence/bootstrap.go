package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// Snapshot mirrors the layout of the bootstrap data file.
type Snapshot struct {
	Students         []StudentRecord          `json:"students"`
	Professors       []ProfessorRecord        `json:"professors"`
	Admins           []AdminRecord            `json:"admins"`
	EvaluationPeriod *domain.EvaluationPeriod `json:"evaluationPeriod,omitempty"`
	Surveys          []SurveyRecord           `json:"surveys"`
}

// EnrollmentRecord is a course entry as stored on disk. A missing flag means active.
type EnrollmentRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Teacher        string `json:"teacher,omitempty"`
	Code           string `json:"code"`
	IsSurveyActive *bool  `json:"isSurveyActive,omitempty"`
}

type StudentRecord struct {
	Code     string             `json:"code"`
	Password string             `json:"password"`
	Name     string             `json:"name"`
	Courses  []EnrollmentRecord `json:"courses"`
}

type ProfessorRecord struct {
	DNI      string             `json:"dni"`
	Password string             `json:"password"`
	Name     string             `json:"name"`
	Courses  []EnrollmentRecord `json:"courses"`
}

type AdminRecord struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SurveyRecord struct {
	ID          string         `json:"id,omitempty"`
	Student     string         `json:"student"`
	CourseID    string         `json:"courseId"`
	Answers     domain.Answers `json:"answers"`
	SubmittedAt *time.Time     `json:"submittedAt,omitempty"`
}

// LoadSnapshot reads the bootstrap file. A missing file yields an empty snapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &snap, nil
}

// WriteSnapshot writes the snapshot through a temp file and rename.
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// DomainStudents converts the student records to domain values.
func (s *Snapshot) DomainStudents() []domain.Student {
	out := make([]domain.Student, 0, len(s.Students))
	for _, r := range s.Students {
		st := domain.Student{Code: r.Code, Password: r.Password, Name: r.Name}
		for _, c := range r.Courses {
			st.Courses = append(st.Courses, domain.CourseEnrollment{
				ID:             c.ID,
				Name:           c.Name,
				Teacher:        c.Teacher,
				Code:           c.Code,
				IsSurveyActive: activeFlag(c.IsSurveyActive),
			})
		}
		out = append(out, st)
	}
	return out
}

// DomainProfessors converts the professor records to domain values.
func (s *Snapshot) DomainProfessors() []domain.Professor {
	out := make([]domain.Professor, 0, len(s.Professors))
	for _, r := range s.Professors {
		p := domain.Professor{DNI: r.DNI, Password: r.Password, Name: r.Name}
		for _, c := range r.Courses {
			p.Courses = append(p.Courses, domain.CourseAssignment{
				ID:             c.ID,
				Name:           c.Name,
				Code:           c.Code,
				IsSurveyActive: activeFlag(c.IsSurveyActive),
			})
		}
		out = append(out, p)
	}
	return out
}

func (s *Snapshot) DomainAdmins() []domain.Admin {
	out := make([]domain.Admin, 0, len(s.Admins))
	for _, r := range s.Admins {
		out = append(out, domain.Admin{DNI: r.DNI, Password: r.Password, Name: r.Name})
	}
	return out
}

// DomainResponses converts stored surveys; entries without a timestamp get the zero time.
func (s *Snapshot) DomainResponses() []domain.SurveyResponse {
	out := make([]domain.SurveyResponse, 0, len(s.Surveys))
	for _, r := range s.Surveys {
		resp := domain.SurveyResponse{
			ID:       r.ID,
			Student:  r.Student,
			CourseID: r.CourseID,
			Answers:  r.Answers,
		}
		if r.SubmittedAt != nil {
			resp.SubmittedAt = *r.SubmittedAt
		}
		out = append(out, resp)
	}
	return out
}

func activeFlag(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
