package FiberConfig

import (
	"Planner/Controllers"
	"Planner/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

// Config carries the runtime settings route setup needs.
type Config struct {
	TemplatesDir string
	UploadDir    string
}

// New builds the Fiber app with templates, middleware and all routes.
func New(db *gorm.DB, cfg Config) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(middleware.RequestLogger())
	app.Use(compress.New())
	app.Static("/static", "static/")

	SetupRoutes(app, db, cfg)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg Config) {
	// Initialize handlers
	auth := Controllers.NewAuthController(db)
	profile := Controllers.NewProfileController(db, cfg.UploadDir)
	tasks := Controllers.NewTaskController(db, cfg.UploadDir)
	schedule := Controllers.NewScheduleController(db)
	calendar := Controllers.NewCalendarController(db)
	users := Controllers.NewUserController(db)

	sessioned := middleware.Verify(db)
	admin := middleware.VerifyAdmin(db)

	app.Get("/login", auth.LoginPage)
	app.Post("/login", auth.Login)
	app.Get("/signup", auth.SignupPage)
	app.Post("/signup", auth.Signup)
	app.Get("/logout", auth.Logout)

	app.Get("/", sessioned, profile.Dashboard)
	app.Get("/edit_profile", sessioned, profile.EditProfilePage)
	app.Post("/edit_profile", sessioned, profile.EditProfile)

	// Task routes. Deletes and the toggle stay reachable via GET, matching
	// the original page links.
	app.Post("/add_task", sessioned, tasks.AddTask)
	app.Get("/edit/:id", sessioned, tasks.EditTaskPage)
	app.Post("/edit/:id", sessioned, tasks.UpdateTask)
	app.Post("/update/:id", sessioned, tasks.UpdateTask)
	app.Get("/delete/:id", sessioned, tasks.DeleteTask)
	app.Get("/toggle_status/:id", sessioned, tasks.ToggleStatus)

	app.Get("/schedule", sessioned, schedule.SchedulePage)
	app.Post("/schedule", sessioned, schedule.AddEntry)
	app.Get("/edit_schedule/:id", sessioned, schedule.EditEntryPage)
	app.Post("/edit_schedule/:id", sessioned, schedule.EditEntry)
	app.Get("/delete_schedule/:id", sessioned, schedule.DeleteEntry)

	app.Get("/calendar", sessioned, calendar.CalendarPage)
	app.Post("/calendar", sessioned, calendar.AddEvent)
	app.Get("/edit_event/:id", sessioned, calendar.EditEventPage)
	app.Post("/edit_event/:id", sessioned, calendar.EditEvent)
	app.Get("/delete_event/:id", sessioned, calendar.DeleteEvent)

	app.Get("/users", admin, users.ListUsers)
	app.Get("/users/export", admin, users.ExportUsers)
	app.Get("/delete_user/:id", admin, users.DeleteUser)
}
