package Controllers

import (
	"bytes"
	"fmt"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// UserController handles the admin user management pages
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ListUsers renders every account's id and username. Reaching this handler
// requires the admin gate on the route.
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	var users []Models.User
	if err := uc.DB.Select("id", "username").Find(&users).Error; err != nil {
		return err
	}
	return c.Render("user_list", fiber.Map{"Users": users})
}

// DeleteUser removes an account. The admin row itself is untouchable, even
// for the admin. The deleted user's tasks, schedule and events stay behind.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || uint(id) == Models.AdminID {
		return c.Redirect("/")
	}
	if err := uc.DB.Delete(&Models.User{}, id).Error; err != nil {
		return err
	}
	return c.Redirect("/users")
}

// ExportUsers writes the user list as an xlsx download.
func (uc *UserController) ExportUsers(c *fiber.Ctx) error {
	var users []Models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return err
	}

	f := excelize.NewFile()
	sheetName := "Users"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Username", "Bio", "Contact"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, user := range users {
		row := rowIndex + 2
		values := []interface{}{user.Id, user.Username, user.Bio, user.Contact}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="users.xlsx"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
