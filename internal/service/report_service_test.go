package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

func seedResponse(t *testing.T, f *fixture, student, course string, p1, p2, p3, p4 int, comment string) {
	t.Helper()
	require.NoError(t, f.surveys.Append(domain.SurveyResponse{
		ID:       student + "-" + course,
		Student:  student,
		CourseID: course,
		Answers:  domain.Answers{P1: p1, P2: p2, P3: p3, P4: p4, Comment: comment},
	}))
}

func TestGlobalReportZeroFill(t *testing.T) {
	f := newFixture(march5)

	reports, err := f.reports.GlobalReport(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	ids := []string{reports[0].CourseID, reports[1].CourseID, reports[2].CourseID}
	assert.Equal(t, []string{"C1", "C2", "C3"}, ids)
	for _, r := range reports {
		assert.Zero(t, r.Count)
		assert.Zero(t, r.AvgP1)
		assert.Zero(t, r.AvgP4)
		assert.Zero(t, r.AvgGeneral)
		assert.Zero(t, r.ParticipationRate)
	}
	assert.Equal(t, 0, reports[2].Enrolled)
	assert.Equal(t, "Rosa Diaz", reports[2].Teacher)
}

func TestGlobalReportAveragesAndComments(t *testing.T) {
	f := newFixture(march5)
	seedResponse(t, f, "A01", "C1", 5, 4, 3, 5, "claro")
	seedResponse(t, f, "A02", "C1", 4, 4, 4, 2, "")
	seedResponse(t, f, "A01", "C2", 1, 2, 2, 2, "puntual")

	reports, err := f.reports.GlobalReport(context.Background())
	require.NoError(t, err)

	c1 := reports[0]
	assert.Equal(t, "C1", c1.CourseID)
	assert.Equal(t, "Algebra", c1.CourseName)
	assert.Equal(t, "Luis Perez", c1.Teacher)
	assert.Equal(t, 2, c1.Count)
	assert.Equal(t, 4.5, c1.AvgP1)
	assert.Equal(t, 4.0, c1.AvgP2)
	assert.Equal(t, 3.5, c1.AvgP3)
	assert.Equal(t, 3.5, c1.AvgP4)
	assert.Equal(t, 3.88, c1.AvgGeneral)
	assert.Equal(t, 100.0, c1.ParticipationRate)
	assert.Equal(t, []string{"claro"}, c1.Comments)

	c2 := reports[1]
	assert.Equal(t, 1.75, c2.AvgGeneral)
	assert.Equal(t, []string{"puntual"}, c2.Comments)
}

func TestTeacherReportScopesAndHidesComments(t *testing.T) {
	f := newFixture(march5)
	seedResponse(t, f, "A01", "C1", 5, 5, 5, 5, "excelente")
	seedResponse(t, f, "A01", "C2", 3, 3, 3, 3, "regular")

	reports, err := f.reports.TeacherReport(context.Background(), "87654321")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "C3", reports[0].CourseID, "assignment order is kept")
	assert.Zero(t, reports[0].Count)
	assert.Equal(t, "C2", reports[1].CourseID)
	assert.Equal(t, 1, reports[1].Count)
	assert.Equal(t, 3.0, reports[1].AvgGeneral)
	for _, r := range reports {
		assert.NotEqual(t, "C1", r.CourseID)
	}

	raw, err := json.Marshal(reports)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "comments")
	assert.NotContains(t, string(raw), "regular")
}

func TestGlobalReportAlwaysCarriesComments(t *testing.T) {
	f := newFixture(march5)

	reports, err := f.reports.GlobalReport(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(reports[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"comments":[]`)
}

func TestTeacherReportUnknownProfessor(t *testing.T) {
	f := newFixture(march5)

	_, err := f.reports.TeacherReport(context.Background(), "00000000")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestRatio2RoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		num, den int
		want     float64
	}{
		{100, 3, 33.33},
		{200, 3, 66.67},
		{1, 8, 0.13},
		{-1, 8, -0.13},
		{1, -8, -0.13},
		{17, 4, 4.25},
		{201, 200, 1.01},
		{107, 40, 2.68},
		{523, 200, 2.62},
		{-201, 200, -1.01},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ratio2(tc.num, tc.den), "%d/%d", tc.num, tc.den)
	}
}

func TestGlobalReportRoundsLargeCohorts(t *testing.T) {
	f := newFixture(march5)
	// 200 responses on C3 averaging 1.005 on p1: one 2 and 199 ones.
	for i := 0; i < 200; i++ {
		p1 := 1
		if i == 0 {
			p1 = 2
		}
		seedResponse(t, f, fmt.Sprintf("S%03d", i), "C3", p1, 1, 1, 1, "")
	}

	reports, err := f.reports.GlobalReport(context.Background())
	require.NoError(t, err)
	var c3 domain.GlobalReportRow
	for _, r := range reports {
		if r.CourseID == "C3" {
			c3 = r
		}
	}
	require.Equal(t, 200, c3.Count)
	assert.Equal(t, 1.01, c3.AvgP1)
	assert.Equal(t, 1.0, c3.AvgGeneral)
}
