package repositories

import "gorm.io/gorm"

// Store groups the repositories of every entity and runs multi-row writes atomically.
type Store interface {
	Accounts() AccountRepository
	Profiles() ProfileRepository
	Categories() CategoryRepository
	Posts() PostRepository
	Comments() CommentRepository
	Bookmarks() BookmarkRepository
	Notifications() NotificationRepository

	// Transaction runs fn against a Store bound to one database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(fn func(tx Store) error) error
}

// GORMStore is a GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

func (s *GORMStore) Accounts() AccountRepository { return NewGORMAccountRepository(s.db) }

func (s *GORMStore) Profiles() ProfileRepository { return NewGORMProfileRepository(s.db) }

func (s *GORMStore) Categories() CategoryRepository { return NewGORMCategoryRepository(s.db) }

func (s *GORMStore) Posts() PostRepository { return NewGORMPostRepository(s.db) }

func (s *GORMStore) Comments() CommentRepository { return NewGORMCommentRepository(s.db) }

func (s *GORMStore) Bookmarks() BookmarkRepository { return NewGORMBookmarkRepository(s.db) }

func (s *GORMStore) Notifications() NotificationRepository {
	return NewGORMNotificationRepository(s.db)
}

// Transaction implements Store.
func (s *GORMStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}
