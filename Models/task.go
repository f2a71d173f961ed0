package Models

// DeadlineLayout is the shared format of task deadlines and the "now" string
// they are compared against. Both are zero-padded, so plain string comparison
// orders them chronologically.
const DeadlineLayout = "2006-01-02T15:04"

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Task is a to-do item with an optional file attachment.
type Task struct {
	Id       uint   `json:"id" gorm:"primaryKey"`
	UserId   uint   `json:"user_id" gorm:"index"`
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
	Filename string `json:"filename"`
	Status   string `json:"status" gorm:"default:pending"`
}

// Overdue reports whether the deadline sorts strictly before now, both in
// DeadlineLayout form. Tasks without a deadline are never overdue.
func (t Task) Overdue(now string) bool {
	return t.Deadline != "" && t.Deadline < now
}

// NextStatus flips pending to done; any other value maps back to pending.
func NextStatus(current string) string {
	if current == StatusPending {
		return StatusDone
	}
	return StatusPending
}
