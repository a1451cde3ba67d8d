package services

// Services defined in this package:
// - AuthService: registration, login and token issuance
// - StudentService: admin CRUD over student records
// - CourseService: admin CRUD over course records
// - FacultyService: admin CRUD over faculty records
// - DepartmentService: admin CRUD over department records
// - StatsService: aggregate record counts and the database diagnostic
