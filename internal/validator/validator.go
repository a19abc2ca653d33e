// Package validator registers the custom binding validators the API uses.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// imageContentTypes lists the content types accepted for logo uploads.
var imageContentTypes = map[string]struct{}{
	"image/png":     {},
	"image/jpeg":    {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// validateImageMIME validates that a string is an accepted image content type.
func validateImageMIME(fl validator.FieldLevel) bool {
	_, ok := imageContentTypes[fl.Field().String()]
	return ok
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("imagemime", validateImageMIME)
	}
}
