package handlers

import (
	"errors"
	"net/http"
	"riftview/pkg/regions"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Default language used when the request doesn't specify one.
const defaultLanguage = "en_US"

var errUnknownRegion = errors.New("unknown region")

// normalizeRegion uppercases a routing region and verifies it exists.
func normalizeRegion(region string) (string, error) {
	region = strings.ToUpper(region)
	if !regions.IsValidSubRegion(region) {
		return "", errUnknownRegion
	}
	return region, nil
}

// language reads the lang query param.
func language(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return defaultLanguage
}

// abortWithLookupError maps a service error to the terminal response.
// Missing records are a plain 404, there is nothing to retry.
func abortWithLookupError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
