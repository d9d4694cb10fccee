package services

import (
	"encoding/json"
	"log"
	"time"
)

// Routing keys of the events published after a write commits.
const (
	EventPostLiked         = "post.liked"
	EventPostUnliked       = "post.unliked"
	EventCommentCreated    = "comment.created"
	EventPostBookmarked    = "post.bookmarked"
	EventPostUnbookmarked  = "post.unbookmarked"
	EventAccountRegistered = "account.registered"
	EventOTPIssued         = "account.otp_issued"
)

// EventPublisher delivers events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the JSON body of a published event.
type Event struct {
	Type      string    `json:"type"`
	PostID    uint      `json:"post_id,omitempty"`
	AccountID uint      `json:"account_id"`
	Timestamp time.Time `json:"timestamp"`
}

// publishEvent sends an event if a publisher is configured. Failures are logged and
// never undo the committed write.
func publishEvent(publisher EventPublisher, event Event) {
	if publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event.Type, err)
		return
	}
	if err := publisher.Publish(event.Type, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for account %d: %v", event.Type, event.AccountID, err)
		return
	}
	log.Printf("Published %s event for account %d", event.Type, event.AccountID)
}
