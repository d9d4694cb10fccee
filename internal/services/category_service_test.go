package services_test

import (
	"testing"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create_DerivesSlug(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewCategoryService(store)

	category := &models.Category{Title: "Tech News"}
	require.NoError(t, service.Create(category))
	assert.Equal(t, "tech-news", category.Slug)

	// Same title, no disambiguation: the unique slug index rejects it.
	err := service.Create(&models.Category{Title: "Tech News"})
	assert.ErrorIs(t, err, repositories.ErrUniqueViolation)

	explicit := &models.Category{Title: "Tech News", Slug: "tech-news-2"}
	require.NoError(t, service.Create(explicit))
	assert.Equal(t, "tech-news-2", explicit.Slug)
}

func TestCategoryService_Update_KeepsSlug(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewCategoryService(store)

	category := &models.Category{Title: "Tech News"}
	require.NoError(t, service.Create(category))

	category.Title = "Technology"
	require.NoError(t, service.Update(category))

	stored, err := service.GetBySlug("tech-news")
	require.NoError(t, err)
	assert.Equal(t, "Technology", stored.Title)
}

func TestCategoryService_Validation(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewCategoryService(store)

	var reqErr *models.RequiredFieldError
	require.ErrorAs(t, service.Create(&models.Category{}), &reqErr)
	assert.Equal(t, "title", reqErr.Field)
}

func TestCategoryService_ListCountsAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	author := registerAccount(t, store, "jane@example.com")
	categories := services.NewCategoryService(store)
	posts := services.NewPostService(store, &sequenceSuffix{codes: []string{"aa", "bb", "cc"}}, nil)

	tech := &models.Category{Title: "Tech"}
	life := &models.Category{Title: "Life"}
	require.NoError(t, categories.Create(tech))
	require.NoError(t, categories.Create(life))

	for _, title := range []string{"One", "Two"} {
		require.NoError(t, posts.Create(&models.Post{AccountID: author.ID, Title: title, CategoryID: &tech.ID}))
	}
	draft := &models.Post{AccountID: author.ID, Title: "Three", CategoryID: &tech.ID, Status: models.StatusDraft}
	require.NoError(t, posts.Create(draft))

	list, err := categories.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	counts := map[string]int64{}
	for _, c := range list {
		counts[c.Slug] = c.PostCount
	}
	assert.EqualValues(t, 3, counts["tech"])
	assert.EqualValues(t, 0, counts["life"])

	active, err := categories.Posts("tech", models.StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, categories.Delete(tech.ID))

	orphaned, err := posts.GetBySlug(draft.Slug)
	require.NoError(t, err)
	assert.Nil(t, orphaned.CategoryID)
	assert.Nil(t, orphaned.Category)

	count, err := categories.PostCount(tech.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
