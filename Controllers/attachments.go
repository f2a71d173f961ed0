package Controllers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kennygrant/sanitize"
)

// allowedExtensions is the upload policy. Anything else is dropped without an
// error being shown to the user.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"docx": true,
}

// AllowedFile reports whether the filename has an allowed extension, matched
// case-insensitively after the last dot.
func AllowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// saveAttachment stores an uploaded file under dir and returns the sanitized
// name that goes into the database. Disallowed extensions are silently
// skipped; same-name uploads overwrite each other on disk.
func saveAttachment(c *fiber.Ctx, file *multipart.FileHeader, dir string) (string, error) {
	if file == nil || !AllowedFile(file.Filename) {
		return "", nil
	}

	name := sanitize.Name(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
