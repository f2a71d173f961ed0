package middleware

import (
	"errors"
	"os"
	"strconv"
	"time"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// SessionCookie carries the signed session token.
const SessionCookie = "jwt"

const sessionTTL = 24 * time.Hour

var ErrNoSession = errors.New("no active session")

// SecretKey signs session cookies. JWT_SECRET overrides the dev default.
var SecretKey = func() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "secret"
}()

// Verify resolves the session cookie to a user and stores it in Locals under
// "user". Requests without a valid session are sent to the login page.
func Verify(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(db, c)
		if err != nil {
			return c.Redirect("/login")
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// VerifyAdmin additionally requires the privileged account; signed-in
// non-admins are bounced to the dashboard.
func VerifyAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(db, c)
		if err != nil {
			return c.Redirect("/login")
		}
		if !user.IsAdmin() {
			return c.Redirect("/")
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser parses the session cookie and loads the user it names.
func CurrentUser(db *gorm.DB, c *fiber.Ctx) (Models.User, error) {
	var user Models.User

	cookie := c.Cookies(SessionCookie)
	if cookie == "" {
		return user, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(SecretKey), nil
	})
	if err != nil || !token.Valid {
		return user, ErrNoSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return user, ErrNoSession
	}

	if err := db.Where("id = ?", claims.Issuer).First(&user).Error; err != nil {
		return user, ErrNoSession
	}
	return user, nil
}

// IssueSession writes a signed session cookie carrying the user id.
func IssueSession(c *fiber.Ctx, userId uint) error {
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(userId)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(SecretKey))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
	})
	return nil
}

// ClearSession expires the session cookie immediately.
func ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
