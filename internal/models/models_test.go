package models_test

import (
	"errors"
	"strings"
	"testing"

	"blog/internal/models"
	"blog/internal/slugs"

	"github.com/stretchr/testify/assert"
)

type fixedSuffix string

func (f fixedSuffix) Suffix(n int) string { return string(f)[:n] }

func TestAccount_Normalized(t *testing.T) {
	a := models.Account{Email: "jane@example.com"}.Normalized()
	assert.Equal(t, "jane", a.Username)
	assert.Equal(t, "jane", a.FullName)

	kept := models.Account{Email: "jane@example.com", Username: "janedoe", FullName: "Jane Doe"}.Normalized()
	assert.Equal(t, "janedoe", kept.Username)
	assert.Equal(t, "Jane Doe", kept.FullName)

	// A username cleared later is derived again from the current email.
	changed := kept
	changed.Email = "doe@example.org"
	changed.Username = ""
	changed = changed.Normalized()
	assert.Equal(t, "doe", changed.Username)
	assert.Equal(t, "Jane Doe", changed.FullName)
}

func TestAccount_Normalized_DoesNotMutateReceiver(t *testing.T) {
	original := models.Account{Email: "sam@example.com"}
	_ = original.Normalized()
	assert.Empty(t, original.Username)
}

func TestAccount_Validate(t *testing.T) {
	var reqErr *models.RequiredFieldError

	err := models.Account{Username: "x"}.Validate()
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "email", reqErr.Field)

	assert.NoError(t, models.Account{Email: "a@b.c"}.Normalized().Validate())
}

func TestProfile_NormalizedAndDisplayName(t *testing.T) {
	owner := models.Account{Email: "jane@example.com", FullName: "jane"}

	p := models.Profile{}.Normalized(owner)
	assert.Equal(t, "jane", p.FullName)
	assert.Equal(t, models.DefaultProfileImage, p.Image)

	custom := models.Profile{FullName: "J. Doe", Image: "image/j.png"}.Normalized(owner)
	assert.Equal(t, "J. Doe", custom.FullName)
	assert.Equal(t, "image/j.png", custom.Image)

	assert.Equal(t, "jane", models.Profile{}.DisplayName(owner))
	assert.Equal(t, "J. Doe", custom.DisplayName(owner))
}

func TestCategory_Normalized(t *testing.T) {
	c := models.Category{Title: "Tech News"}.Normalized()
	assert.Equal(t, "tech-news", c.Slug)

	// The slug is derived once and survives a title change.
	c.Title = "Science"
	c = c.Normalized()
	assert.Equal(t, "tech-news", c.Slug)
}

func TestPost_Normalized(t *testing.T) {
	p := models.Post{Title: "Hello World", AccountID: 1}.Normalized(fixedSuffix("Zq"))
	assert.Equal(t, "hello-world-Zq", p.Slug)
	assert.Equal(t, models.StatusActive, p.Status)

	p.Title = "Goodbye"
	p = p.Normalized(slugs.ShortUUID{})
	assert.Equal(t, "hello-world-Zq", p.Slug)

	random := models.Post{Title: "Hello World"}.Normalized(slugs.ShortUUID{})
	assert.True(t, strings.HasPrefix(random.Slug, "hello-world-"))
	suffix := strings.TrimPrefix(random.Slug, "hello-world-")
	assert.Len(t, suffix, 2)
	for _, r := range suffix {
		assert.Contains(t, slugs.Alphabet, string(r))
	}
}

func TestPost_Validate(t *testing.T) {
	var reqErr *models.RequiredFieldError
	assert.True(t, errors.As(models.Post{AccountID: 1}.Validate(), &reqErr))
	assert.Equal(t, "title", reqErr.Field)

	var choiceErr *models.InvalidChoiceError
	err := models.Post{Title: "t", AccountID: 1, Status: "Archived"}.Validate()
	assert.True(t, errors.As(err, &choiceErr))

	assert.NoError(t, models.Post{Title: "t", AccountID: 1, Status: models.StatusDraft}.Validate())
}

func TestComment_Validate(t *testing.T) {
	var reqErr *models.RequiredFieldError
	assert.True(t, errors.As(models.Comment{PostID: 1}.Validate(), &reqErr))
	assert.Equal(t, "comment", reqErr.Field)
	assert.NoError(t, models.Comment{PostID: 1, Comment: "nice"}.Validate())
}

func TestDisplayStrings(t *testing.T) {
	post := &models.Post{Title: "Hello"}
	assert.Equal(t, "Hello - Ann", models.Comment{Post: post, Name: "Ann"}.String())
	assert.Equal(t, "Hello - ann", models.Bookmark{Post: post, Account: &models.Account{Username: "ann"}}.String())
	assert.Equal(t, "Like - Hello", models.Notification{Type: models.NotifyLike, Post: post}.String())
	assert.Equal(t, "Notification", models.Notification{Type: models.NotifyLike}.String())
	assert.Equal(t, "jane", models.Profile{Account: &models.Account{FullName: "jane"}}.String())
}
