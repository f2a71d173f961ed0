package Controllers

import (
	"errors"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleController handles the weekly class schedule
type ScheduleController struct {
	DB *gorm.DB
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

func (sc *ScheduleController) ownedEntry(c *fiber.Ctx) (*Models.ScheduleEntry, error) {
	user := c.Locals("user").(Models.User)
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.ErrNotFound
	}

	var entry Models.ScheduleEntry
	if err := sc.DB.Where("id = ? AND user_id = ?", id, user.Id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// SchedulePage renders the schedule grouped by day in first-seen order.
func (sc *ScheduleController) SchedulePage(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	var entries []Models.ScheduleEntry
	if err := sc.DB.Where("user_id = ?", user.Id).Find(&entries).Error; err != nil {
		return err
	}
	return c.Render("schedule", fiber.Map{"Schedule": Models.GroupByDay(entries)})
}

// AddEntry stores a new slot and re-renders the schedule.
func (sc *ScheduleController) AddEntry(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	entry := Models.ScheduleEntry{
		UserId:  user.Id,
		Day:     c.FormValue("day"),
		Subject: c.FormValue("subject"),
		Time:    c.FormValue("time"),
	}
	if err := sc.DB.Create(&entry).Error; err != nil {
		return err
	}
	return sc.SchedulePage(c)
}

// EditEntryPage renders the edit form. Legacy rows that still carry the
// composed "{subject} at {time}" string in the subject column are split on
// the first separator for display.
func (sc *ScheduleController) EditEntryPage(c *fiber.Ctx) error {
	entry, err := sc.ownedEntry(c)
	if err != nil {
		return err
	}

	subject, timeOfDay := entry.Subject, entry.Time
	if timeOfDay == "" {
		subject, timeOfDay = Models.SplitComposedSubject(entry.Subject)
	}
	return c.Render("edit_schedule", fiber.Map{
		"Entry":   entry,
		"Subject": subject,
		"Time":    timeOfDay,
	})
}

// EditEntry overwrites subject and time.
func (sc *ScheduleController) EditEntry(c *fiber.Ctx) error {
	entry, err := sc.ownedEntry(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"subject": c.FormValue("subject"),
		"time":    c.FormValue("time"),
	}
	if err := sc.DB.Model(entry).Updates(updates).Error; err != nil {
		return err
	}
	return c.Redirect("/schedule")
}

// DeleteEntry removes the slot.
func (sc *ScheduleController) DeleteEntry(c *fiber.Ctx) error {
	entry, err := sc.ownedEntry(c)
	if err != nil {
		return err
	}
	if err := sc.DB.Delete(entry).Error; err != nil {
		return err
	}
	return c.Redirect("/schedule")
}
