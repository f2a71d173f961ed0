package Models

// User is an account row. Deleting a user does not cascade to their tasks,
// schedule entries or calendar events.
type User struct {
	Id         uint   `json:"id" gorm:"primaryKey"`
	Username   string `json:"username" gorm:"uniqueIndex;not null"`
	Password   string `json:"-" gorm:"not null"`
	Bio        string `json:"bio"`
	Contact    string `json:"contact"`
	ProfilePic string `json:"profile_pic"`
}

// IsAdmin reports whether this is the privileged account.
func (u *User) IsAdmin() bool {
	return u.Id == AdminID
}
