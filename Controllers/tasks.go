package Controllers

import (
	"errors"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaskController handles task CRUD and the status toggle
type TaskController struct {
	DB        *gorm.DB
	UploadDir string
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB, uploadDir string) *TaskController {
	return &TaskController{DB: db, UploadDir: uploadDir}
}

// ownedTask loads the task named by the :id param and requires it to belong
// to the session user. Missing or foreign rows come back as 404.
func (tc *TaskController) ownedTask(c *fiber.Ctx) (*Models.Task, error) {
	user := c.Locals("user").(Models.User)
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.ErrNotFound
	}

	var task Models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", id, user.Id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// AddTask stores a new pending task. An attachment with a disallowed
// extension is dropped without an error.
func (tc *TaskController) AddTask(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	file, _ := c.FormFile("attachment")
	filename, err := saveAttachment(c, file, tc.UploadDir)
	if err != nil {
		return err
	}

	task := Models.Task{
		UserId:   user.Id,
		Task:     c.FormValue("task"),
		Deadline: c.FormValue("deadline"),
		Filename: filename,
		Status:   Models.StatusPending,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		return err
	}
	return c.Redirect("/")
}

// EditTaskPage renders the edit form for one task.
func (tc *TaskController) EditTaskPage(c *fiber.Ctx) error {
	task, err := tc.ownedTask(c)
	if err != nil {
		return err
	}
	return c.Render("edit_task", fiber.Map{"Task": task})
}

// UpdateTask replaces text and deadline unconditionally. The stored filename
// changes only when a new valid attachment arrived; otherwise the previous
// one stays.
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	task, err := tc.ownedTask(c)
	if err != nil {
		return err
	}

	file, _ := c.FormFile("new_attachment")
	filename, err := saveAttachment(c, file, tc.UploadDir)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"task":     c.FormValue("new_task"),
		"deadline": c.FormValue("new_deadline"),
	}
	if filename != "" {
		updates["filename"] = filename
	}
	if err := tc.DB.Model(task).Updates(updates).Error; err != nil {
		return err
	}
	return c.Redirect("/")
}

// DeleteTask removes the task.
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	task, err := tc.ownedTask(c)
	if err != nil {
		return err
	}
	if err := tc.DB.Delete(task).Error; err != nil {
		return err
	}
	return c.Redirect("/")
}

// ToggleStatus flips pending<->done with a read then a write. Concurrent
// toggles of the same task can lose one update; that window is accepted.
func (tc *TaskController) ToggleStatus(c *fiber.Ctx) error {
	task, err := tc.ownedTask(c)
	if err != nil {
		return err
	}
	if err := tc.DB.Model(task).Update("status", Models.NextStatus(task.Status)).Error; err != nil {
		return err
	}
	return c.Redirect("/")
}
