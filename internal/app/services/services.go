package services

// Services defined in this package:
// - DeadlineService: a student's view of their assigned deadlines
// - DepartmentService: department listing and creation
// - RestoService: resto and menu listings, cached
// - CourseService: courses and the associations hanging off them
