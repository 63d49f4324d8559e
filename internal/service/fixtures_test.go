package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
)

var march5 = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

var marchWindow = domain.EvaluationPeriod{StartDate: "2024-03-01", EndDate: "2024-03-10", IsActive: true}

type fixture struct {
	directory   repository.DirectoryRepository
	surveys     repository.SurveyRepository
	periodRepo  repository.PeriodRepository
	dispatcher  *recordingDispatcher
	periods     *PeriodService
	courses     *CourseService
	submissions *SubmissionService
	reports     *ReportService
}

// newFixture seeds two students, two professors and one admin.
//
//	C1 Algebra: A01, A02 enrolled; taught by 12345678
//	C2 Physics: A01 enrolled; taught by 87654321
//	C3 Chemistry: nobody enrolled; taught by 87654321
func newFixture(now time.Time) *fixture {
	directory := repository.NewDirectoryRepository()
	directory.Replace(
		[]domain.Student{
			{Code: "A01", Password: "secret", Name: "Ana", Courses: []domain.CourseEnrollment{
				{ID: "C1", Name: "Algebra", Teacher: "Luis", Code: "MAT101", IsSurveyActive: true},
				{ID: "C2", Name: "Physics", Teacher: "Rosa", Code: "FIS101", IsSurveyActive: true},
			}},
			{Code: "A02", Password: "secret", Name: "Beto", Courses: []domain.CourseEnrollment{
				{ID: "C1", Name: "Algebra", Teacher: "Luis", Code: "MAT101", IsSurveyActive: true},
			}},
		},
		[]domain.Professor{
			{DNI: "12345678", Password: "profpass", Name: "Luis Perez", Courses: []domain.CourseAssignment{
				{ID: "C1", Name: "Algebra", Code: "MAT101", IsSurveyActive: true},
			}},
			{DNI: "87654321", Password: "profpass", Name: "Rosa Diaz", Courses: []domain.CourseAssignment{
				{ID: "C3", Name: "Chemistry", Code: "QUI101", IsSurveyActive: true},
				{ID: "C2", Name: "Physics", Code: "FIS101", IsSurveyActive: true},
			}},
		},
		[]domain.Admin{{DNI: "999", Password: "root", Name: "Admin"}},
	)

	f := &fixture{
		directory:  directory,
		surveys:    repository.NewSurveyRepository(),
		periodRepo: repository.NewPeriodRepository(),
		dispatcher: newRecordingDispatcher(),
	}
	clock := func() time.Time { return now }
	f.periods = NewPeriodService(PeriodDependencies{PeriodRepo: f.periodRepo, Dispatcher: f.dispatcher, Clock: clock})
	f.courses = NewCourseService(CourseDependencies{DirectoryRepo: directory, Dispatcher: f.dispatcher})
	f.submissions = NewSubmissionService(SubmissionDependencies{
		DirectoryRepo: directory,
		SurveyRepo:    f.surveys,
		Periods:       f.periods,
		Dispatcher:    f.dispatcher,
		Clock:         clock,
	})
	f.reports = NewReportService(ReportDependencies{DirectoryRepo: directory, SurveyRepo: f.surveys})
	return f
}

func validAnswers() map[string]any {
	return map[string]any{"p1": 5, "p2": 4, "p3": 3, "p4": 5}
}

// recordingDispatcher delivers to subscribers like the in-memory one and remembers
// every published event.
type recordingDispatcher struct {
	events.Dispatcher
	mu        sync.Mutex
	published []events.Event
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{Dispatcher: events.NewInMemoryDispatcher()}
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	d.published = append(d.published, event)
	d.mu.Unlock()
	return d.Dispatcher.Publish(ctx, event)
}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.published))
	for _, e := range d.published {
		out = append(out, e.Type)
	}
	return out
}
