package Models

import "strings"

// composedSeparator is the legacy encoding that packed subject and time into
// one column. It survives for display and for splitting old rows on edit.
const composedSeparator = " at "

// ScheduleEntry is one slot of a user's weekly class schedule.
type ScheduleEntry struct {
	Id      uint   `json:"id" gorm:"primaryKey"`
	UserId  uint   `json:"user_id" gorm:"index"`
	Day     string `json:"day"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
}

func (ScheduleEntry) TableName() string {
	return "class_schedule"
}

// ComposedSubject renders the entry in the legacy "{subject} at {time}" form
// the schedule views show. Entries without a time render as the bare subject.
func (e ScheduleEntry) ComposedSubject() string {
	if e.Time == "" {
		return e.Subject
	}
	return e.Subject + composedSeparator + e.Time
}

// SplitComposedSubject splits a legacy composed string on the first " at ".
// A string without the separator becomes the subject with an empty time.
func SplitComposedSubject(s string) (subject, timeOfDay string) {
	if i := strings.Index(s, composedSeparator); i >= 0 {
		return s[:i], s[i+len(composedSeparator):]
	}
	return s, ""
}

// DaySchedule groups a user's entries under one day label.
type DaySchedule struct {
	Day     string
	Entries []ScheduleEntry
}

// GroupByDay keeps the first-seen order of day labels as returned by the
// store, not calendar weekday order.
func GroupByDay(entries []ScheduleEntry) []DaySchedule {
	var groups []DaySchedule
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Day]
		if !ok {
			i = len(groups)
			index[e.Day] = i
			groups = append(groups, DaySchedule{Day: e.Day})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
