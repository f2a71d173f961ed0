package Controllers

import (
	"errors"
	"strconv"
	"time"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CalendarController handles the month view and event CRUD
type CalendarController struct {
	DB *gorm.DB
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

func (cc *CalendarController) ownedEvent(c *fiber.Ctx) (*Models.CalendarEvent, error) {
	user := c.Locals("user").(Models.User)
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.ErrNotFound
	}

	var event Models.CalendarEvent
	if err := cc.DB.Where("id = ? AND user_id = ?", id, user.Id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// CalendarPage renders the month named by the month/year query params,
// defaulting to the current month.
func (cc *CalendarController) CalendarPage(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	today := time.Now()
	month := int(today.Month())
	year := today.Year()
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		month = m
	}
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		year = y
	}

	view, err := Models.BuildMonthView(cc.DB, user.Id, year, month)
	if err != nil {
		return err
	}
	return c.Render("calendar", fiber.Map{
		"Calendar":  view,
		"TodayDate": today.Format(Models.EventDateLayout),
	})
}

// AddEvent inserts an event and re-renders the displayed month. The event
// date may fall outside that month.
func (cc *CalendarController) AddEvent(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	event := Models.CalendarEvent{
		UserId: user.Id,
		Date:   c.FormValue("date"),
		Event:  c.FormValue("event"),
	}
	if err := cc.DB.Create(&event).Error; err != nil {
		return err
	}
	return cc.CalendarPage(c)
}

// EditEventPage renders the edit form for one event.
func (cc *CalendarController) EditEventPage(c *fiber.Ctx) error {
	event, err := cc.ownedEvent(c)
	if err != nil {
		return err
	}
	return c.Render("edit_event", fiber.Map{"Event": event})
}

// EditEvent replaces the event text, independent of any month context.
func (cc *CalendarController) EditEvent(c *fiber.Ctx) error {
	event, err := cc.ownedEvent(c)
	if err != nil {
		return err
	}
	if err := cc.DB.Model(event).Update("event", c.FormValue("event")).Error; err != nil {
		return err
	}
	return c.Redirect("/calendar")
}

// DeleteEvent removes the event.
func (cc *CalendarController) DeleteEvent(c *fiber.Ctx) error {
	event, err := cc.ownedEvent(c)
	if err != nil {
		return err
	}
	if err := cc.DB.Delete(event).Error; err != nil {
		return err
	}
	return c.Redirect("/calendar")
}
