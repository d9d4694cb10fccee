package services

import (
	"errors"
	"fmt"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/slugs"
)

// ErrForbidden is returned when an account edits a post or comment it does not own.
var ErrForbidden = errors.New("forbidden")

// PostService handles business logic related to posts, their likes, comments and bookmarks.
type PostService struct {
	store     repositories.Store
	suffixes  slugs.SuffixGenerator
	publisher EventPublisher
}

// NewPostService creates a new PostService. publisher may be nil.
func NewPostService(store repositories.Store, suffixes slugs.SuffixGenerator, publisher EventPublisher) *PostService {
	if suffixes == nil {
		suffixes = slugs.ShortUUID{}
	}
	return &PostService{
		store:     store,
		suffixes:  suffixes,
		publisher: publisher,
	}
}

// Create saves a new post, deriving its slug once and linking the author's profile.
func (s *PostService) Create(post *models.Post) error {
	normalized := post.Normalized(s.suffixes)
	if err := normalized.Validate(); err != nil {
		return err
	}

	err := s.store.Transaction(func(tx repositories.Store) error {
		if normalized.ProfileID == nil {
			profile, err := tx.Profiles().GetByAccountID(normalized.AccountID)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			if profile != nil {
				normalized.ProfileID = &profile.ID
			}
		}
		return tx.Posts().Create(&normalized)
	})
	if err != nil {
		return err
	}
	*post = normalized
	return nil
}

// Update saves post edits. The slug is never recomputed once set.
func (s *PostService) Update(post *models.Post) error {
	normalized := post.Normalized(s.suffixes)
	if err := normalized.Validate(); err != nil {
		return err
	}
	if err := s.store.Posts().Update(&normalized); err != nil {
		return err
	}
	*post = normalized
	return nil
}

// UpdateAs saves post edits made by accountID, who must be the author.
func (s *PostService) UpdateAs(accountID uint, post *models.Post) error {
	if post.AccountID != accountID {
		return fmt.Errorf("account %d cannot edit post %d: %w", accountID, post.ID, ErrForbidden)
	}
	return s.Update(post)
}

// GetBySlug retrieves a post by its slug without touching its view count.
func (s *PostService) GetBySlug(slug string) (*models.Post, error) {
	return s.store.Posts().GetBySlug(slug)
}

// View retrieves a post for display and counts the view.
func (s *PostService) View(slug string) (*models.Post, error) {
	post, err := s.store.Posts().GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.Posts().IncrementView(post.ID); err != nil {
		return nil, err
	}
	post.View++
	return post, nil
}

// List retrieves posts matching filter, newest first.
func (s *PostService) List(filter repositories.PostFilter) ([]models.Post, error) {
	return s.store.Posts().List(filter)
}

// Delete removes a post written by accountID. Comments, bookmarks, notifications and likes go with it.
func (s *PostService) Delete(accountID, postID uint) error {
	post, err := s.store.Posts().GetByID(postID)
	if err != nil {
		return err
	}
	if post.AccountID != accountID {
		return fmt.Errorf("account %d cannot delete post %d: %w", accountID, postID, ErrForbidden)
	}
	return s.store.Posts().Delete(postID)
}

// ToggleLike adds accountID to the post's likers, or removes it if already there.
// It reports whether the account likes the post afterwards.
func (s *PostService) ToggleLike(postID, accountID uint) (bool, error) {
	var liked bool
	err := s.store.Transaction(func(tx repositories.Store) error {
		post, err := tx.Posts().GetByID(postID)
		if err != nil {
			return err
		}
		has, err := tx.Posts().HasLike(postID, accountID)
		if err != nil {
			return err
		}
		if has {
			return tx.Posts().RemoveLike(postID, accountID)
		}
		if err := tx.Posts().AddLike(postID, accountID); err != nil {
			return err
		}
		liked = true
		return notify(tx, post, models.NotifyLike)
	})
	if err != nil {
		return false, err
	}

	eventType := EventPostUnliked
	if liked {
		eventType = EventPostLiked
	}
	publishEvent(s.publisher, Event{Type: eventType, PostID: postID, AccountID: accountID})
	return liked, nil
}

// LikeCount counts the accounts that like the post.
func (s *PostService) LikeCount(postID uint) (int64, error) {
	return s.store.Posts().LikeCount(postID)
}

// Likers returns the accounts that like the post.
func (s *PostService) Likers(postID uint) ([]models.Account, error) {
	return s.store.Posts().Likers(postID)
}

// Comments returns the post's comments, most recently created first. Every call queries again.
func (s *PostService) Comments(postID uint) ([]models.Comment, error) {
	return s.store.Comments().ListForPost(postID)
}

// AddComment saves a comment and notifies the post's author.
func (s *PostService) AddComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	var authorID uint
	err := s.store.Transaction(func(tx repositories.Store) error {
		post, err := tx.Posts().GetByID(comment.PostID)
		if err != nil {
			return err
		}
		authorID = post.AccountID
		if err := tx.Comments().Create(comment); err != nil {
			return err
		}
		return notify(tx, post, models.NotifyComment)
	})
	if err != nil {
		return err
	}

	publishEvent(s.publisher, Event{Type: EventCommentCreated, PostID: comment.PostID, AccountID: authorID})
	return nil
}

// Reply stores the author's reply on a comment of one of their posts.
func (s *PostService) Reply(accountID, commentID uint, reply string) (*models.Comment, error) {
	var comment *models.Comment
	err := s.store.Transaction(func(tx repositories.Store) error {
		c, err := tx.Comments().GetByID(commentID)
		if err != nil {
			return err
		}
		post, err := tx.Posts().GetByID(c.PostID)
		if err != nil {
			return err
		}
		if post.AccountID != accountID {
			return fmt.Errorf("account %d cannot reply on post %d: %w", accountID, post.ID, ErrForbidden)
		}
		c.Reply = reply
		if err := tx.Comments().Update(c); err != nil {
			return err
		}
		comment = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleBookmark saves the post for accountID, or removes the bookmark if it exists.
// It reports whether the post is bookmarked afterwards.
func (s *PostService) ToggleBookmark(postID, accountID uint) (bool, error) {
	var bookmarked bool
	err := s.store.Transaction(func(tx repositories.Store) error {
		post, err := tx.Posts().GetByID(postID)
		if err != nil {
			return err
		}
		existing, err := tx.Bookmarks().Find(accountID, postID)
		switch {
		case err == nil:
			return tx.Bookmarks().Delete(existing.ID)
		case !errors.Is(err, repositories.ErrNotFound):
			return err
		}
		if err := tx.Bookmarks().Create(&models.Bookmark{AccountID: accountID, PostID: postID}); err != nil {
			return err
		}
		bookmarked = true
		return notify(tx, post, models.NotifyBookmark)
	})
	if err != nil {
		return false, err
	}

	eventType := EventPostUnbookmarked
	if bookmarked {
		eventType = EventPostBookmarked
	}
	publishEvent(s.publisher, Event{Type: eventType, PostID: postID, AccountID: accountID})
	return bookmarked, nil
}

// Bookmarks lists the posts accountID has saved.
func (s *PostService) Bookmarks(accountID uint) ([]models.Bookmark, error) {
	return s.store.Bookmarks().ListForAccount(accountID)
}
