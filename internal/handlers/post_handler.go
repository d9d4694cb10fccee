package handlers

import (
	"strconv"

	"blog/internal/middleware"
	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for posts and the interactions on them.
type PostHandler struct {
	postService *services.PostService
	validate    *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the post, comment and bookmark routes. Writes go through
// auth, except posting a comment.
func (h *PostHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.GetAllPosts)
	postRoutes.Post("/", auth, h.CreatePost)
	postRoutes.Get("/:slug", h.GetPost)
	postRoutes.Patch("/:slug", auth, h.UpdatePost)
	postRoutes.Delete("/:slug", auth, h.DeletePost)
	postRoutes.Post("/:slug/like", auth, h.ToggleLike)
	postRoutes.Get("/:slug/likes", h.GetLikes)
	postRoutes.Get("/:slug/comments", h.GetComments)
	postRoutes.Post("/:slug/comments", h.CreateComment)
	postRoutes.Post("/:slug/bookmark", auth, h.ToggleBookmark)

	router.Put("/comments/:id/reply", auth, h.ReplyToComment)
	router.Get("/bookmarks", auth, h.GetBookmarks)
}

// PostRequest represents the request body for creating or editing a post.
type PostRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	CategoryID  *uint  `json:"category_id"`
	Image       string `json:"image" validate:"omitempty,max=255"`
	Description string `json:"description"`
	Tags        string `json:"tags" validate:"omitempty,max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Draft Disabled"`
}

// GetAllPosts lists posts newest first. The status query parameter defaults to Active;
// category_id and account_id narrow the listing further.
func (h *PostHandler) GetAllPosts(c *fiber.Ctx) error {
	filter := repositories.PostFilter{
		Status: models.PostStatus(c.Query("status", string(models.StatusActive))),
	}
	if !filter.Status.Valid() {
		return respondError(c, &models.InvalidChoiceError{Field: "status", Value: string(filter.Status)}, "Invalid status")
	}
	for key, target := range map[string]**uint{"category_id": &filter.CategoryID, "account_id": &filter.AccountID} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid " + key,
				"error":   err.Error(),
			})
		}
		value := uint(id)
		*target = &value
	}

	posts, err := h.postService.List(filter)
	if err != nil {
		return respondError(c, err, "Failed to retrieve posts")
	}
	return c.JSON(posts)
}

// CreatePost handles the creation of a new post by the signed-in account.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req PostRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	post := models.Post{
		AccountID:   accountID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Tags:        req.Tags,
		Status:      models.PostStatus(req.Status),
	}
	if err := h.postService.Create(&post); err != nil {
		return respondError(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns a post and counts the view.
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.postService.View(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}
	likes, err := h.postService.LikeCount(post.ID)
	if err != nil {
		return respondError(c, err, "Failed to count likes")
	}
	return c.JSON(fiber.Map{
		"post":  post,
		"likes": likes,
	})
}

// UpdatePost edits a post written by the signed-in account. The slug never changes.
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req PostRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}
	post.Account, post.Profile, post.Category = nil, nil, nil
	post.CategoryID = req.CategoryID
	post.Title = req.Title
	post.Image = req.Image
	post.Description = req.Description
	post.Tags = req.Tags
	if req.Status != "" {
		post.Status = models.PostStatus(req.Status)
	}

	if err := h.postService.UpdateAs(accountID, post); err != nil {
		return respondError(c, err, "Failed to update post")
	}
	return c.JSON(post)
}

// DeletePost removes a post written by the signed-in account.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}
	if err := h.postService.Delete(accountID, post.ID); err != nil {
		return respondError(c, err, "Failed to delete post")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleLike likes the post for the signed-in account, or takes the like back.
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}

	liked, err := h.postService.ToggleLike(post.ID, accountID)
	if err != nil {
		return respondError(c, err, "Failed to update like")
	}
	likes, err := h.postService.LikeCount(post.ID)
	if err != nil {
		return respondError(c, err, "Failed to count likes")
	}
	return c.JSON(fiber.Map{
		"liked": liked,
		"likes": likes,
	})
}

// GetLikes returns the like count and the accounts that like the post.
func (h *PostHandler) GetLikes(c *fiber.Ctx) error {
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}
	likers, err := h.postService.Likers(post.ID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve likes")
	}
	return c.JSON(fiber.Map{
		"likes":    len(likers),
		"accounts": likers,
	})
}

// GetComments lists the post's comments, newest first.
func (h *PostHandler) GetComments(c *fiber.Ctx) error {
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}
	comments, err := h.postService.Comments(post.ID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve comments")
	}
	return c.JSON(comments)
}

// CommentRequest represents the request body of a new comment.
type CommentRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Comment string `json:"comment" validate:"required"`
}

// CreateComment adds a visitor's comment to the post.
func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}

	comment := models.Comment{
		PostID:  post.ID,
		Name:    req.Name,
		Email:   req.Email,
		Comment: req.Comment,
	}
	if err := h.postService.AddComment(&comment); err != nil {
		return respondError(c, err, "Failed to create comment")
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ReplyRequest represents the request body of the author's reply to a comment.
type ReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

// ReplyToComment stores the signed-in author's reply on a comment.
func (h *PostHandler) ReplyToComment(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return badParam(c, err)
	}
	var req ReplyRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	comment, err := h.postService.Reply(accountID, commentID, req.Reply)
	if err != nil {
		return respondError(c, err, "Failed to reply to comment")
	}
	return c.JSON(comment)
}

// ToggleBookmark saves the post for the signed-in account, or removes the bookmark.
func (h *PostHandler) ToggleBookmark(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	post, err := h.postService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve post")
	}

	bookmarked, err := h.postService.ToggleBookmark(post.ID, accountID)
	if err != nil {
		return respondError(c, err, "Failed to update bookmark")
	}
	return c.JSON(fiber.Map{
		"bookmarked": bookmarked,
	})
}

// GetBookmarks lists the posts the signed-in account has saved.
func (h *PostHandler) GetBookmarks(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	bookmarks, err := h.postService.Bookmarks(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve bookmarks")
	}
	return c.JSON(bookmarks)
}
