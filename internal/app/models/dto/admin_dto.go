package dto

// CreateStudentRequest represents the payload for creating a student record
type CreateStudentRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Course     string `json:"course"`
	Year       string `json:"year"`
	RollNumber string `json:"rollNumber"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// CreateCourseRequest represents the payload for creating a course record
type CreateCourseRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Duration    string  `json:"duration"`
	Fees        float64 `json:"fees"`
	Description string  `json:"description"`
	Department  string  `json:"department"`
}

// CreateFacultyRequest represents the payload for creating a faculty record
type CreateFacultyRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	Experience    int    `json:"experience"`
}

// CreateDepartmentRequest represents the payload for creating a department record
type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Head        string `json:"head"`
	Established int    `json:"established"`
	IsActive    *bool  `json:"isActive"`
}

// StatsResponse represents the aggregate record counts per entity
type StatsResponse struct {
	Students    int64 `json:"students"`
	Courses     int64 `json:"courses"`
	Faculty     int64 `json:"faculty"`
	Departments int64 `json:"departments"`
}

// DatabaseCheckResponse represents the diagnostic endpoint response
type DatabaseCheckResponse struct {
	Message      string `json:"message"`
	StudentCount int64  `json:"studentCount"`
}
