package domain

// Course is derived from enrollments and assignments; it is never stored directly.
type Course struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Teacher        string `json:"teacher"`
	Code           string `json:"code"`
	IsSurveyActive bool   `json:"isSurveyActive"`
	EnrolledCount  int    `json:"enrolledCount"`
}

// CourseIndex is an ordered id -> Course projection.
type CourseIndex struct {
	order   []string
	courses map[string]*Course
}

// NewCourseIndex returns an empty index.
func NewCourseIndex() *CourseIndex {
	return &CourseIndex{courses: make(map[string]*Course)}
}

// Lookup returns a copy of the course with id.
func (ci *CourseIndex) Lookup(id string) (Course, bool) {
	c, ok := ci.courses[id]
	if !ok {
		return Course{}, false
	}
	return *c, true
}

// Upsert returns the course for id, creating it at the end of the order when missing.
func (ci *CourseIndex) Upsert(id string) (*Course, bool) {
	if c, ok := ci.courses[id]; ok {
		return c, false
	}
	c := &Course{ID: id, IsSurveyActive: true}
	ci.courses[id] = c
	ci.order = append(ci.order, id)
	return c, true
}

// List returns copies of every course in insertion order.
func (ci *CourseIndex) List() []Course {
	out := make([]Course, 0, len(ci.order))
	for _, id := range ci.order {
		out = append(out, *ci.courses[id])
	}
	return out
}

// Len is the number of courses.
func (ci *CourseIndex) Len() int {
	return len(ci.order)
}
