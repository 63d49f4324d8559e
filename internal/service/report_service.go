package service

import (
	"context"
	"strings"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// ReportService folds the ledger into per-course statistics.
type ReportService struct {
	directory repository.DirectoryRepository
	surveys   repository.SurveyRepository
}

// ReportDependencies bundles repositories for the report service.
type ReportDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	SurveyRepo    repository.SurveyRepository
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{directory: deps.DirectoryRepo, surveys: deps.SurveyRepo}
}

type tally struct {
	count    int
	sums     [len(domain.QuestionKeys)]int
	comments []string
}

// GlobalReport returns one row per indexed course, comments included.
func (s *ReportService) GlobalReport(_ context.Context) ([]domain.GlobalReportRow, error) {
	courses := s.directory.CourseIndex().List()
	tallies := fold(s.surveys.All(), true)

	reports := make([]domain.GlobalReportRow, 0, len(courses))
	for _, c := range courses {
		t := tallies[c.ID]
		if t == nil {
			t = &tally{}
		}
		reports = append(reports, domain.GlobalReportRow{
			AggregateReport: buildReport(c, t),
			Comments:        append([]string{}, t.comments...),
		})
	}
	return reports, nil
}

// TeacherReport returns one row per course assigned to the professor, in assignment
// order. Comments are left out so free text never reaches the instructor.
func (s *ReportService) TeacherReport(_ context.Context, dni string) ([]domain.AggregateReport, error) {
	professor, ok := s.directory.ProfessorByDNI(dni)
	if !ok {
		return nil, apperrors.NewForbidden("unknown professor")
	}

	index := s.directory.CourseIndex()
	scope := make(map[string]struct{}, len(professor.Courses))
	order := make([]string, 0, len(professor.Courses))
	for _, a := range professor.Courses {
		if _, dup := scope[a.ID]; dup {
			continue
		}
		scope[a.ID] = struct{}{}
		order = append(order, a.ID)
	}

	tallies := fold(s.surveys.ForCourses(scope), false)
	reports := make([]domain.AggregateReport, 0, len(order))
	for _, id := range order {
		c, ok := index.Lookup(id)
		if !ok {
			continue
		}
		t := tallies[id]
		if t == nil {
			t = &tally{}
		}
		reports = append(reports, buildReport(c, t))
	}
	return reports, nil
}

func fold(responses []domain.SurveyResponse, withComments bool) map[string]*tally {
	tallies := make(map[string]*tally)
	for _, resp := range responses {
		t := tallies[resp.CourseID]
		if t == nil {
			t = &tally{}
			tallies[resp.CourseID] = t
		}
		t.count++
		for i, key := range domain.QuestionKeys {
			t.sums[i] += resp.Answers.Score(key)
		}
		if withComments {
			if c := strings.TrimSpace(resp.Answers.Comment); c != "" {
				t.comments = append(t.comments, c)
			}
		}
	}
	return tallies
}

func buildReport(c domain.Course, t *tally) domain.AggregateReport {
	r := domain.AggregateReport{
		CourseID:       c.ID,
		CourseName:     c.Name,
		Teacher:        c.Teacher,
		Code:           c.Code,
		Count:          t.count,
		Enrolled:       c.EnrolledCount,
		IsSurveyActive: c.IsSurveyActive,
	}
	if c.EnrolledCount > 0 {
		r.ParticipationRate = ratio2(t.count*100, c.EnrolledCount)
	}
	if t.count == 0 {
		return r
	}

	total := 0
	avgs := make([]float64, len(t.sums))
	for i, sum := range t.sums {
		avgs[i] = ratio2(sum, t.count)
		total += sum
	}
	r.AvgP1, r.AvgP2, r.AvgP3, r.AvgP4 = avgs[0], avgs[1], avgs[2], avgs[3]
	r.AvgGeneral = ratio2(total, t.count*len(t.sums))
	return r
}

// ratio2 returns num/den rounded half away from zero to two decimals. The rounding
// is done on integers so quotients like 201/200 are not skewed by binary fractions.
func ratio2(num, den int) float64 {
	if den == 0 {
		return 0
	}
	neg := (num < 0) != (den < 0)
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	hundredths := (200*num + den) / (2 * den)
	if neg {
		hundredths = -hundredths
	}
	return float64(hundredths) / 100
}
