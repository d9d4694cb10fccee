package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"blog/internal/database"
	"blog/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestMain silences the service logs during tests.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

// MockPublisher is a mock implementation of services.EventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

// fixedSuffix is a deterministic slugs.SuffixGenerator.
type fixedSuffix string

func (f fixedSuffix) Suffix(n int) string { return string(f)[:n] }

// sequenceSuffix hands out suffixes in order.
type sequenceSuffix struct {
	codes []string
	next  int
}

func (s *sequenceSuffix) Suffix(n int) string {
	code := s.codes[s.next%len(s.codes)]
	s.next++
	return code[:n]
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestStore(t *testing.T) (repositories.Store, *gorm.DB) {
	db := newTestDB(t)
	return repositories.NewGORMStore(db), db
}
