package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mverbeke/campushub/internal/app/models"
	appRepos "github.com/mverbeke/campushub/internal/app/repositories"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// CreateDefaultData seeds a small demo dataset on first startup: two
// departments, a demo student with a course and three deadlines, and one
// campus with a resto serving a full Monday-to-Friday menu. Every step
// tolerates data that already exists, so restarting against a populated
// database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool, lgr)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	seedDepartments(ctx, repos.DepartmentRepository, lgr, &finalErr)

	// The course and deadlines hang off the demo student, so they are only
	// seeded the first time the student is created.
	student, created := seedStudent(ctx, repos.StudentRepository, lgr, &finalErr)
	if created {
		seedCourseAndDeadlines(ctx, repos, student, lgr, &finalErr)
	}

	seedFacilities(ctx, repos.RestoRepository, lgr, &finalErr)

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func seedDepartments(ctx context.Context, repo *appRepos.DepartmentRepository, lgr zerolog.Logger, finalErr *error) {
	departments := []struct {
		name        string
		description string
		kind        appModels.DepartmentType
	}{
		{"Student Services", "First point of contact for enrollment and student life", appModels.DepartmentTypeManagement},
		{"Applied Informatics", "Software engineering and infrastructure programmes", appModels.DepartmentTypeDepartment},
	}

	for _, d := range departments {
		department, err := appModels.NewDepartment(d.name, d.description, d.kind)
		if err != nil {
			*finalErr = errors.Join(*finalErr, err)
			continue
		}
		err = repo.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", d.name).Msg("Error creating default department")
			*finalErr = errors.Join(*finalErr, err)
		}
	}
}

func seedStudent(ctx context.Context, repo *appRepos.StudentRepository, lgr zerolog.Logger, finalErr *error) (*appModels.Student, bool) {
	const demoAccountID = "demo-student"

	existing, err := repo.GetStudentByAccountID(ctx, demoAccountID)
	if err == nil {
		lgr.Info().Msg("Demo student already exists, skipping creation")
		return existing, false
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		lgr.Error().Err(err).Msg("Error checking for demo student")
		*finalErr = errors.Join(*finalErr, err)
		return nil, false
	}

	user := &appModels.User{
		AccountID: demoAccountID,
		FirstName: "Demo",
		LastName:  "Student",
		Email:     "demo.student@campushub.app",
		Role:      appModels.RoleStudent,
	}
	student, err := appModels.NewStudent(user, "S0000001")
	if err != nil {
		*finalErr = errors.Join(*finalErr, err)
		return nil, false
	}

	if err := repo.CreateStudent(ctx, student); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		*finalErr = errors.Join(*finalErr, err)
		return nil, false
	}

	lgr.Info().Int64("studentID", student.ID).Msg("Demo student created")
	return student, true
}

func seedCourseAndDeadlines(ctx context.Context, repos *appRepos.Repositories, student *appModels.Student, lgr zerolog.Logger, finalErr *error) {
	course, err := appModels.NewCourse("Distributed Systems", "Consensus, replication and the messes in between", appModels.StudyFieldInformatics)
	if err != nil {
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	if err := repos.CourseRepository.Create(ctx, course); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo course")
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	err = repos.CourseRepository.EnrollStudent(ctx, course.ID, student.ID)
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		lgr.Error().Err(err).Msg("Error enrolling demo student")
		*finalErr = errors.Join(*finalErr, err)
	}

	now := time.Now()
	deadlines := []struct {
		title       string
		description string
		due         time.Time
	}{
		{"Paxos paper summary", "Two pages, own words", now.AddDate(0, 0, 7)},
		{"Lab 1: replicated log", "Pair work allowed", now.AddDate(0, 0, 14)},
		{"Project proposal", "Topic and scope, one page", now.AddDate(0, 0, 21)},
	}

	for _, d := range deadlines {
		deadline, err := appModels.NewDeadline(d.title, d.description, now, d.due)
		if err != nil {
			*finalErr = errors.Join(*finalErr, err)
			continue
		}
		deadline.CourseID = &course.ID

		if err := repos.DeadlineRepository.CreateDeadline(ctx, deadline); err != nil {
			lgr.Error().Err(err).Str("title", d.title).Msg("Error creating demo deadline")
			*finalErr = errors.Join(*finalErr, err)
			continue
		}

		_, err = repos.DeadlineRepository.AssignStudent(ctx, deadline.ID, student.ID)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyAssigned) {
			lgr.Error().Err(err).Str("title", d.title).Msg("Error assigning demo deadline")
			*finalErr = errors.Join(*finalErr, err)
		}
	}
}

func seedFacilities(ctx context.Context, repo *appRepos.RestoRepository, lgr zerolog.Logger, finalErr *error) {
	hasCampuses, err := repo.HasCampuses(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing campuses")
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	if hasCampuses {
		lgr.Info().Msg("Campuses already exist, skipping facility seed")
		return
	}

	resto, err := appModels.NewResto("Resto Central", "50.8503,4.3517")
	if err != nil {
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	resto.Menu = &appModels.Menu{
		StartDate: time.Now(),
		Items:     demoMenuItems(),
	}

	campus := &appModels.Campus{
		Name:   "City Campus",
		Map:    "https://maps.campushub.app/city",
		IsOpen: true,
		Buildings: []*appModels.Building{
			{
				Name: "Main Building",
				Classrooms: []*appModels.Classroom{
					{Coordinates: "B1.021"},
					{Coordinates: "B2.014"},
				},
				Restos: []*appModels.Resto{resto},
			},
		},
	}

	if err := repo.CreateCampus(ctx, campus); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo campus")
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	lgr.Info().Int64("campusID", campus.ID).Msg("Demo campus created")
}

// demoMenuItems builds one soup/main/veggie/dessert line-up per weekday.
func demoMenuItems() map[appModels.Weekday][]*appModels.MenuItem {
	type dish struct {
		name     string
		category appModels.FoodCategory
		vegan    bool
	}
	week := map[appModels.Weekday][]dish{
		appModels.Monday: {
			{"Tomato soup", appModels.FoodCategorySoup, true},
			{"Spaghetti bolognese", appModels.FoodCategoryMain, false},
			{"Grilled vegetable lasagne", appModels.FoodCategoryVeggie, true},
			{"Chocolate mousse", appModels.FoodCategoryDessert, false},
		},
		appModels.Tuesday: {
			{"Pumpkin soup", appModels.FoodCategorySoup, true},
			{"Chicken curry", appModels.FoodCategoryMain, false},
			{"Chickpea tagine", appModels.FoodCategoryVeggie, true},
			{"Fruit salad", appModels.FoodCategoryDessert, true},
		},
		appModels.Wednesday: {
			{"Leek soup", appModels.FoodCategorySoup, true},
			{"Fish and chips", appModels.FoodCategoryMain, false},
			{"Mushroom risotto", appModels.FoodCategoryVeggie, false},
			{"Rice pudding", appModels.FoodCategoryDessert, false},
		},
		appModels.Thursday: {
			{"Minestrone", appModels.FoodCategorySoup, true},
			{"Beef stew", appModels.FoodCategoryMain, false},
			{"Falafel wrap", appModels.FoodCategoryVeggie, true},
			{"Apple pie", appModels.FoodCategoryDessert, false},
		},
		appModels.Friday: {
			{"Carrot soup", appModels.FoodCategorySoup, true},
			{"Vol-au-vent", appModels.FoodCategoryMain, false},
			{"Stuffed bell peppers", appModels.FoodCategoryVeggie, true},
			{"Brownie", appModels.FoodCategoryDessert, false},
		},
	}

	items := make(map[appModels.Weekday][]*appModels.MenuItem, len(week))
	for day, dishes := range week {
		for _, d := range dishes {
			items[day] = append(items[day], &appModels.MenuItem{
				Weekday:         day,
				Name:            d.name,
				Category:        d.category,
				IsVeganAndHalal: d.vegan,
			})
		}
	}
	return items
}
