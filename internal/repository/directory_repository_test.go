package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

func seededDirectory() DirectoryRepository {
	repo := NewDirectoryRepository()
	repo.Replace(
		[]domain.Student{
			{Code: "S1", Courses: []domain.CourseEnrollment{
				{ID: "C2", Name: "Physics", Teacher: "Old Name", Code: "FIS", IsSurveyActive: true},
				{ID: "C1", Name: "Algebra", Teacher: "Old Name", Code: "MAT", IsSurveyActive: true},
			}},
			{Code: "S2", Courses: []domain.CourseEnrollment{
				{ID: "C1", Name: "Algebra", Code: "MAT", IsSurveyActive: true},
			}},
		},
		[]domain.Professor{
			{DNI: "P1", Name: "Luis", Courses: []domain.CourseAssignment{
				{ID: "C1", Name: "Algebra", Code: "MAT", IsSurveyActive: true},
				{ID: "C1", Name: "Algebra", Code: "MAT", IsSurveyActive: false},
			}},
			{DNI: "P2", Name: "Rosa", Courses: []domain.CourseAssignment{
				{ID: "C9", Name: "Seminar", Code: "SEM", IsSurveyActive: true},
			}},
		},
		[]domain.Admin{{DNI: "A1", Name: "Root"}},
	)
	return repo
}

func TestCourseIndexMergesStudentsThenProfessors(t *testing.T) {
	idx := seededDirectory().CourseIndex()

	courses := idx.List()
	require.Len(t, courses, 3)
	assert.Equal(t, []string{"C2", "C1", "C9"}, []string{courses[0].ID, courses[1].ID, courses[2].ID})

	c1, ok := idx.Lookup("C1")
	require.True(t, ok)
	assert.Equal(t, 2, c1.EnrolledCount)
	assert.Equal(t, "Luis", c1.Teacher, "professor name wins")
	assert.False(t, c1.IsSurveyActive, "last professor record wins")

	c2, _ := idx.Lookup("C2")
	assert.Equal(t, "Old Name", c2.Teacher)
	assert.Equal(t, 1, c2.EnrolledCount)

	c9, _ := idx.Lookup("C9")
	assert.Equal(t, 0, c9.EnrolledCount)
	assert.Equal(t, "Rosa", c9.Teacher)
}

func TestToggleCourseSurveyInvalidatesIndex(t *testing.T) {
	repo := seededDirectory()
	before := repo.CourseIndex()
	c2, _ := before.Lookup("C2")
	require.True(t, c2.IsSurveyActive)

	require.True(t, repo.ToggleCourseSurvey("C2", false))

	after, _ := repo.CourseIndex().Lookup("C2")
	assert.False(t, after.IsSurveyActive)
	stale, _ := before.Lookup("C2")
	assert.True(t, stale.IsSurveyActive, "previously returned index is not mutated")

	st, ok := repo.StudentByCode("S1")
	require.True(t, ok)
	assert.False(t, st.Courses[0].IsSurveyActive)
}

func TestToggleCourseSurveyUnknownCourse(t *testing.T) {
	repo := seededDirectory()
	assert.False(t, repo.ToggleCourseSurvey("nope", true))
}

func TestLookupsReturnCopies(t *testing.T) {
	repo := seededDirectory()

	st, ok := repo.StudentByCode("S1")
	require.True(t, ok)
	st.Courses[0].IsSurveyActive = false

	again, _ := repo.StudentByCode("S1")
	assert.True(t, again.Courses[0].IsSurveyActive)

	_, ok = repo.ProfessorByDNI("missing")
	assert.False(t, ok)
	_, ok = repo.AdminByDNI("A1")
	assert.True(t, ok)
	assert.Len(t, repo.Students(), 2)
	assert.Len(t, repo.Professors(), 2)
	assert.Len(t, repo.Admins(), 1)
}
