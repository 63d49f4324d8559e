package domain

// AggregateReport holds per-course statistics recomputed on every query.
type AggregateReport struct {
	CourseID          string  `json:"courseId"`
	CourseName        string  `json:"courseName"`
	Teacher           string  `json:"teacher"`
	Code              string  `json:"code"`
	Count             int     `json:"count"`
	Enrolled          int     `json:"enrolled"`
	ParticipationRate float64 `json:"participationRate"`
	AvgP1             float64 `json:"avg_p1"`
	AvgP2             float64 `json:"avg_p2"`
	AvgP3             float64 `json:"avg_p3"`
	AvgP4             float64 `json:"avg_p4"`
	AvgGeneral        float64 `json:"avg_general"`
	IsSurveyActive    bool    `json:"isSurveyActive"`
}

// GlobalReportRow adds the collected comments. Only administrators see it; the
// per-professor report is a plain AggregateReport and carries no free text.
type GlobalReportRow struct {
	AggregateReport
	Comments []string `json:"comments"`
}
