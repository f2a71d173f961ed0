package Models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EventDateLayout is the ISO date format calendar events are stored under.
const EventDateLayout = "2006-01-02"

// CalendarEvent is a dated note. Several events may share a date.
type CalendarEvent struct {
	Id     uint   `json:"id" gorm:"primaryKey"`
	UserId uint   `json:"user_id" gorm:"index"`
	Date   string `json:"date"`
	Event  string `json:"event"`
}

// CalendarDay is one numbered cell of the month grid.
type CalendarDay struct {
	Day    int
	Date   string
	Events []CalendarEvent
}

// MonthView carries everything the calendar template needs to lay out a
// month: the day cells plus the count of leading blanks.
type MonthView struct {
	Year         int
	Month        int
	MonthName    string
	StartWeekday int // weekday of day 1, Monday = 0
	Days         []CalendarDay
}

// BuildMonthView assembles the grid for one month, fetching each day's events
// for the user in store order.
func BuildMonthView(db *gorm.DB, userId uint, year, month int) (*MonthView, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	view := &MonthView{
		Year:         year,
		Month:        month,
		MonthName:    first.Month().String(),
		StartWeekday: (int(first.Weekday()) + 6) % 7,
	}

	for day := 1; day <= daysInMonth(year, month); day++ {
		dateStr := fmt.Sprintf("%d-%02d-%02d", year, month, day)
		var events []CalendarEvent
		if err := db.Where("user_id = ? AND date = ?", userId, dateStr).Find(&events).Error; err != nil {
			return nil, err
		}
		view.Days = append(view.Days, CalendarDay{Day: day, Date: dateStr, Events: events})
	}
	return view, nil
}

// daysInMonth uses day zero of the following month, which time.Date
// normalizes to the last day of the requested one.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
