package domain

// Role identifies the kind of account a caller authenticates as.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

// Account is implemented by Student, Professor and Admin.
type Account interface {
	Role() Role
	// Identifier is the student code or the staff DNI.
	Identifier() string
	Credential() string
	DisplayName() string
}

// CourseEnrollment is a student's view of a course.
type CourseEnrollment struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Teacher        string `json:"teacher"`
	Code           string `json:"code"`
	IsSurveyActive bool   `json:"isSurveyActive"`
}

// CourseAssignment is a professor's view of a course they teach.
type CourseAssignment struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	IsSurveyActive bool   `json:"isSurveyActive"`
}

// Student can answer surveys for the courses they are enrolled in.
type Student struct {
	Code     string
	Password string
	Name     string
	Courses  []CourseEnrollment
}

func (s *Student) Role() Role          { return RoleStudent }
func (s *Student) Identifier() string  { return s.Code }
func (s *Student) Credential() string  { return s.Password }
func (s *Student) DisplayName() string { return s.Name }

// EnrolledIn reports whether the student lists courseID.
func (s *Student) EnrolledIn(courseID string) bool {
	for _, c := range s.Courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

// Professor reads aggregated results for the courses assigned to them.
type Professor struct {
	DNI      string
	Password string
	Name     string
	Courses  []CourseAssignment
}

func (p *Professor) Role() Role          { return RoleProfessor }
func (p *Professor) Identifier() string  { return p.DNI }
func (p *Professor) Credential() string  { return p.Password }
func (p *Professor) DisplayName() string { return p.Name }

// Admin controls the evaluation period and per-course flags.
type Admin struct {
	DNI      string
	Password string
	Name     string
}

func (a *Admin) Role() Role          { return RoleAdmin }
func (a *Admin) Identifier() string  { return a.DNI }
func (a *Admin) Credential() string  { return a.Password }
func (a *Admin) DisplayName() string { return a.Name }

// StudentCourse decorates an enrollment with the caller's answer state.
type StudentCourse struct {
	CourseEnrollment
	Responded bool `json:"responded"`
}

// PublicProfile is returned on successful authentication. It never carries credentials.
type PublicProfile struct {
	Role Role   `json:"role"`
	Code string `json:"code,omitempty"`
	DNI  string `json:"dni,omitempty"`
	Name string `json:"name"`
	// Exactly one of these is set for students and professors; admins have neither.
	StudentCourses   []StudentCourse    `json:"-"`
	ProfessorCourses []CourseAssignment `json:"-"`
}

// Courses returns the role-specific course list for serialization.
func (p PublicProfile) Courses() any {
	switch p.Role {
	case RoleStudent:
		return p.StudentCourses
	case RoleProfessor:
		return p.ProfessorCourses
	}
	return nil
}
