package utils

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FormFileBytes reads an optional multipart file field. Returns nil bytes
// when the field is absent.
func FormFileBytes(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
