package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

type postgresMirror struct {
	pool *pgxpool.Pool
}

// NewPostgresMirror returns a Postgres-backed Mirror.
func NewPostgresMirror(pool *pgxpool.Pool) Mirror {
	return &postgresMirror{pool: pool}
}

func (m *postgresMirror) SaveResponse(ctx context.Context, resp domain.SurveyResponse) error {
	const query = `
        INSERT INTO survey_responses (id, student_code, course_id, p1, p2, p3, p4, comment, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
        ON CONFLICT (student_code, course_id) DO NOTHING`

	_, err := m.pool.Exec(ctx, query,
		resp.ID,
		resp.Student,
		resp.CourseID,
		resp.Answers.P1,
		resp.Answers.P2,
		resp.Answers.P3,
		resp.Answers.P4,
		resp.Answers.Comment,
		resp.SubmittedAt,
	)
	return err
}

func (m *postgresMirror) SavePeriod(ctx context.Context, period domain.EvaluationPeriod) error {
	const query = `
        INSERT INTO evaluation_period (id, start_date, end_date, is_active, updated_at)
        VALUES (1, $1, $2, $3, NOW())
        ON CONFLICT (id) DO UPDATE SET start_date=EXCLUDED.start_date, end_date=EXCLUDED.end_date,
            is_active=EXCLUDED.is_active, updated_at=NOW()`

	_, err := m.pool.Exec(ctx, query, period.StartDate, period.EndDate, period.IsActive)
	return err
}

func (m *postgresMirror) SaveCourseStatus(ctx context.Context, courseID string, active bool) error {
	const query = `
        INSERT INTO course_survey_status (course_id, is_active, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (course_id) DO UPDATE SET is_active=EXCLUDED.is_active, updated_at=NOW()`

	_, err := m.pool.Exec(ctx, query, courseID, active)
	return err
}

func (m *postgresMirror) Load(ctx context.Context) (*MirrorState, error) {
	state := &MirrorState{CourseStatus: map[string]bool{}}

	responses, err := m.loadResponses(ctx)
	if err != nil {
		return nil, err
	}
	state.Responses = responses

	const periodQuery = `SELECT start_date, end_date, is_active FROM evaluation_period WHERE id=1`
	var period domain.EvaluationPeriod
	err = m.pool.QueryRow(ctx, periodQuery).Scan(&period.StartDate, &period.EndDate, &period.IsActive)
	switch {
	case err == nil:
		state.Period = &period
	case err != pgx.ErrNoRows:
		return nil, err
	}

	const statusQuery = `SELECT course_id, is_active FROM course_survey_status`
	rows, err := m.pool.Query(ctx, statusQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			courseID string
			active   bool
		)
		if err := rows.Scan(&courseID, &active); err != nil {
			return nil, err
		}
		state.CourseStatus[courseID] = active
	}
	return state, rows.Err()
}

func (m *postgresMirror) loadResponses(ctx context.Context) ([]domain.SurveyResponse, error) {
	const query = `
        SELECT id, student_code, course_id, p1, p2, p3, p4, COALESCE(comment, ''), submitted_at
        FROM survey_responses ORDER BY submitted_at ASC, id ASC`

	rows, err := m.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SurveyResponse
	for rows.Next() {
		var resp domain.SurveyResponse
		if err := rows.Scan(
			&resp.ID,
			&resp.Student,
			&resp.CourseID,
			&resp.Answers.P1,
			&resp.Answers.P2,
			&resp.Answers.P3,
			&resp.Answers.P4,
			&resp.Answers.Comment,
			&resp.SubmittedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
