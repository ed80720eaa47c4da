package validators

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentBody struct {
	Link  string `json:"link" binding:"required,url"`
	Type  string `json:"type" binding:"required,contenttype"`
	Title string `json:"title" binding:"required,max=255"`
}

func TestDescribeValidationErrors(t *testing.T) {
	Register()
	Register()

	err := binding.Validator.ValidateStruct(&contentBody{Link: "not a url", Type: "podcast"})
	require.Error(t, err)

	issues := Describe(err)
	require.Len(t, issues, 3)

	byField := map[string]FieldError{}
	for _, i := range issues {
		byField[i.Field] = i
	}

	assert.Equal(t, "url", byField["link"].Rule)
	assert.Equal(t, "contenttype", byField["type"].Rule)
	assert.Equal(t, ErrContentTypeInvalid.Error(), byField["type"].Message)
	assert.Equal(t, "required", byField["title"].Rule)
	assert.Equal(t, "title is required", byField["title"].Message)
}

func TestContentTypeRuleAccepts(t *testing.T) {
	Register()

	for _, ct := range []string{"tweet", "video", "document", "link"} {
		err := binding.Validator.ValidateStruct(&contentBody{Link: "https://x.com/1", Type: ct, Title: "t"})
		assert.NoError(t, err, ct)
	}
}

func TestDescribeNonValidationErrors(t *testing.T) {
	var v struct {
		Username string `json:"username"`
	}

	err := json.Unmarshal([]byte(`{"username": 5}`), &v)
	issues := Describe(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "type", issues[0].Rule)
	assert.Equal(t, "username", issues[0].Field)

	issues = Describe(json.Unmarshal([]byte(`{`), &v))
	require.Len(t, issues, 1)
	assert.Equal(t, "body", issues[0].Rule)
}

func TestContentTypeValidator(t *testing.T) {
	assert.ErrorIs(t, ContentTypeValidator(""), ErrContentTypeEmpty)
	assert.ErrorIs(t, ContentTypeValidator("Tweet"), ErrContentTypeInvalid)
	assert.NoError(t, ContentTypeValidator("document"))
}

func TestCredentialValidators(t *testing.T) {
	assert.ErrorIs(t, UsernameValidator(""), ErrUsernameEmpty)
	assert.ErrorIs(t, UsernameValidator("ab"), ErrUsernameTooShort)
	assert.ErrorIs(t, UsernameValidator(strings.Repeat("a", 21)), ErrUsernameTooLong)
	assert.NoError(t, UsernameValidator("alice"))

	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("p", 256)), ErrPasswordTooLong)
	assert.NoError(t, PasswordValidator("password123"))
}
