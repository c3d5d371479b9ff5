package handlers

import (
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

// isMultipart reports whether the admin form arrived with an attachment.
// Mutations come as JSON when no file is involved.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formFile returns the named upload if present. A missing file is not an
// error; most media fields are optional.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}
