package Models

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return db
}

func TestMonthViewLeapYear(t *testing.T) {
	db := testDB(t)

	feb2024, err := BuildMonthView(db, 1, 2024, 2)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	if len(feb2024.Days) != 29 {
		t.Errorf("February 2024 has %d days, want 29", len(feb2024.Days))
	}

	feb2023, err := BuildMonthView(db, 1, 2023, 2)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	if len(feb2023.Days) != 28 {
		t.Errorf("February 2023 has %d days, want 28", len(feb2023.Days))
	}
}

func TestMonthViewStartWeekday(t *testing.T) {
	db := testDB(t)

	// 2024-07-01 was a Monday, 2024-09-01 a Sunday.
	july, err := BuildMonthView(db, 1, 2024, 7)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	if july.StartWeekday != 0 {
		t.Errorf("July 2024 start weekday = %d, want 0", july.StartWeekday)
	}

	september, err := BuildMonthView(db, 1, 2024, 9)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	if september.StartWeekday != 6 {
		t.Errorf("September 2024 start weekday = %d, want 6", september.StartWeekday)
	}
}

func TestMonthViewDateStrings(t *testing.T) {
	db := testDB(t)

	march, err := BuildMonthView(db, 1, 2024, 3)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	if march.Days[4].Date != "2024-03-05" {
		t.Errorf("day 5 date = %q, want zero-padded 2024-03-05", march.Days[4].Date)
	}
	if march.MonthName != "March" {
		t.Errorf("month name = %q", march.MonthName)
	}
}

func TestMonthViewGroupsEventsUnderTheirDay(t *testing.T) {
	db := testDB(t)

	event := CalendarEvent{UserId: 1, Date: "2024-03-15", Event: "Dentist"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	other := CalendarEvent{UserId: 2, Date: "2024-03-15", Event: "Someone else"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	march, err := BuildMonthView(db, 1, 2024, 3)
	if err != nil {
		t.Fatalf("build month: %v", err)
	}
	for _, day := range march.Days {
		switch day.Day {
		case 15:
			if len(day.Events) != 1 || day.Events[0].Event != "Dentist" {
				t.Errorf("day 15 events = %+v", day.Events)
			}
		default:
			if len(day.Events) != 0 {
				t.Errorf("day %d unexpectedly has events: %+v", day.Day, day.Events)
			}
		}
	}
}
