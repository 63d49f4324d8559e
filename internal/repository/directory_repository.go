package repository

import (
	"sync"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// DirectoryRepository is the in-memory registry of accounts and course relations.
type DirectoryRepository interface {
	Replace(students []domain.Student, professors []domain.Professor, admins []domain.Admin)
	StudentByCode(code string) (*domain.Student, bool)
	ProfessorByDNI(dni string) (*domain.Professor, bool)
	AdminByDNI(dni string) (*domain.Admin, bool)
	Students() []domain.Student
	Professors() []domain.Professor
	Admins() []domain.Admin
	CourseIndex() *domain.CourseIndex
	ToggleCourseSurvey(courseID string, active bool) bool
}

type directoryRepository struct {
	mu         sync.RWMutex
	students   []domain.Student
	professors []domain.Professor
	admins     []domain.Admin
	// index is rebuilt lazily and dropped by every write.
	index *domain.CourseIndex
}

// NewDirectoryRepository returns an empty directory.
func NewDirectoryRepository() DirectoryRepository {
	return &directoryRepository{}
}

func (r *directoryRepository) Replace(students []domain.Student, professors []domain.Professor, admins []domain.Admin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = make([]domain.Student, len(students))
	for i := range students {
		r.students[i] = cloneStudent(students[i])
	}
	r.professors = make([]domain.Professor, len(professors))
	for i := range professors {
		r.professors[i] = cloneProfessor(professors[i])
	}
	r.admins = append([]domain.Admin(nil), admins...)
	r.index = nil
}

func (r *directoryRepository) StudentByCode(code string) (*domain.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.students {
		if r.students[i].Code == code {
			s := cloneStudent(r.students[i])
			return &s, true
		}
	}
	return nil, false
}

func (r *directoryRepository) ProfessorByDNI(dni string) (*domain.Professor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.professors {
		if r.professors[i].DNI == dni {
			p := cloneProfessor(r.professors[i])
			return &p, true
		}
	}
	return nil, false
}

func (r *directoryRepository) AdminByDNI(dni string) (*domain.Admin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.admins {
		if r.admins[i].DNI == dni {
			a := r.admins[i]
			return &a, true
		}
	}
	return nil, false
}

func (r *directoryRepository) Students() []domain.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Student, len(r.students))
	for i := range r.students {
		out[i] = cloneStudent(r.students[i])
	}
	return out
}

func (r *directoryRepository) Professors() []domain.Professor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Professor, len(r.professors))
	for i := range r.professors {
		out[i] = cloneProfessor(r.professors[i])
	}
	return out
}

func (r *directoryRepository) Admins() []domain.Admin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Admin(nil), r.admins...)
}

// CourseIndex returns the memoized index. Callers must treat it as read-only.
func (r *directoryRepository) CourseIndex() *domain.CourseIndex {
	r.mu.RLock()
	idx := r.index
	r.mu.RUnlock()
	if idx != nil {
		return idx
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == nil {
		r.index = buildCourseIndex(r.students, r.professors)
	}
	return r.index
}

// ToggleCourseSurvey flips the flag on every record referencing courseID in one critical section.
func (r *directoryRepository) ToggleCourseSurvey(courseID string, active bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.students {
		for j := range r.students[i].Courses {
			if r.students[i].Courses[j].ID == courseID {
				r.students[i].Courses[j].IsSurveyActive = active
				found = true
			}
		}
	}
	for i := range r.professors {
		for j := range r.professors[i].Courses {
			if r.professors[i].Courses[j].ID == courseID {
				r.professors[i].Courses[j].IsSurveyActive = active
				found = true
			}
		}
	}
	if found {
		r.index = nil
	}
	return found
}

// buildCourseIndex merges student enrollments first, then professor assignments.
// The professor side wins for teacher name and the active flag.
func buildCourseIndex(students []domain.Student, professors []domain.Professor) *domain.CourseIndex {
	idx := domain.NewCourseIndex()
	for _, s := range students {
		for _, e := range s.Courses {
			c, created := idx.Upsert(e.ID)
			if created {
				c.Name = e.Name
				c.Teacher = e.Teacher
				c.Code = e.Code
				c.IsSurveyActive = e.IsSurveyActive
			}
			c.EnrolledCount++
		}
	}
	for _, p := range professors {
		for _, a := range p.Courses {
			c, created := idx.Upsert(a.ID)
			if created {
				c.Name = a.Name
				c.Code = a.Code
			}
			c.Teacher = p.Name
			c.IsSurveyActive = a.IsSurveyActive
		}
	}
	return idx
}

func cloneStudent(s domain.Student) domain.Student {
	s.Courses = append([]domain.CourseEnrollment(nil), s.Courses...)
	return s
}

func cloneProfessor(p domain.Professor) domain.Professor {
	p.Courses = append([]domain.CourseAssignment(nil), p.Courses...)
	return p
}
