package Controllers

import (
	"strings"

	"Planner/Models"
	"Planner/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// AuthController handles signup, login and logout
type AuthController struct {
	DB *gorm.DB
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type credentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the login form
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login checks the credentials and opens a session. The error message is the
// same for unknown users and wrong passwords.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}

	var user Models.User
	err := ac.DB.Where("username = ?", form.Username).First(&user).Error
	if err != nil || user.Password != form.Password {
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}

	if err := middleware.IssueSession(c, user.Id); err != nil {
		return err
	}
	if user.IsAdmin() {
		return c.Redirect("/users")
	}
	return c.Redirect("/")
}

// SignupPage renders the signup form
func (ac *AuthController) SignupPage(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

// Signup inserts a new account. A taken username surfaces as a form error,
// leaving the users table untouched.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		return c.Render("signup", fiber.Map{"Error": "Username and password are required."})
	}
	if err := validate.Struct(form); err != nil {
		return c.Render("signup", fiber.Map{"Error": "Username and password are required."})
	}

	user := Models.User{Username: form.Username, Password: form.Password}
	if err := ac.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return c.Render("signup", fiber.Map{"Error": "Username already exists."})
		}
		return err
	}
	return c.Redirect("/login")
}

// Logout drops the session unconditionally
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	middleware.ClearSession(c)
	return c.Redirect("/login")
}
