package Controllers

import (
	"time"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProfileController serves the dashboard and the profile editor
type ProfileController struct {
	DB        *gorm.DB
	UploadDir string
}

// NewProfileController creates a new ProfileController
func NewProfileController(db *gorm.DB, uploadDir string) *ProfileController {
	return &ProfileController{DB: db, UploadDir: uploadDir}
}

// Dashboard renders the user's task list with the overdue counter.
func (pc *ProfileController) Dashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	var tasks []Models.Task
	if err := pc.DB.Where("user_id = ?", user.Id).Find(&tasks).Error; err != nil {
		return err
	}

	now := time.Now().Format(Models.DeadlineLayout)
	overdue := 0
	for i := range tasks {
		if tasks[i].Overdue(now) {
			overdue++
		}
	}

	return c.Render("index", fiber.Map{
		"User":         user,
		"Tasks":        tasks,
		"Now":          now,
		"OverdueCount": overdue,
	})
}

// EditProfilePage renders the profile form with the current values.
func (pc *ProfileController) EditProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)
	return c.Render("edit_profile", fiber.Map{"User": user})
}

// EditProfile updates the account. The picture column takes the new filename
// even when empty, so submitting without an upload clears the stored picture.
func (pc *ProfileController) EditProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(Models.User)

	file, _ := c.FormFile("profile_pic")
	filename, err := saveAttachment(c, file, pc.UploadDir)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"username":    c.FormValue("username"),
		"password":    c.FormValue("password"),
		"bio":         c.FormValue("bio"),
		"contact":     c.FormValue("contact"),
		"profile_pic": filename,
	}
	if err := pc.DB.Model(&Models.User{}).Where("id = ?", user.Id).Updates(updates).Error; err != nil {
		return err
	}
	return c.Redirect("/")
}
