package validators

import (
	"errors"
	"strings"

	"second-brain/api/internal/model"
)

var (
	ErrContentTypeEmpty   = errors.New("no content type provided")
	ErrContentTypeInvalid = errors.New("type must be one of " + contentTypeList())
)

func ContentTypeValidator(t string) error {
	if t == "" {
		return ErrContentTypeEmpty
	}

	if !model.ContentType(t).Valid() {
		return ErrContentTypeInvalid
	}

	return nil
}

func contentTypeList() string {
	names := make([]string, len(model.ContentTypes))
	for i, t := range model.ContentTypes {
		names[i] = string(t)
	}

	return strings.Join(names, ", ")
}
