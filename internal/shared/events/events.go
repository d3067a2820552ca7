package events

import (
	"context"
	"time"
)

// EventKind is a closed enumeration of the domain events the application
// emits. Dispatch is keyed by kind, not by runtime type inspection.
type EventKind string

const (
	KindTweetCreated EventKind = "TWEET_CREATED"
	KindUserFollowed EventKind = "USER_FOLLOWED"
)

// Event is an immutable message describing something that already happened.
// Events are values: no identity, no persistence, no ordering across events.
type Event interface {
	Kind() EventKind
}

// TweetCreatedEvent is emitted after a tweet has been persisted.
// It carries a denormalized snapshot of the tweet so handlers never need
// to read the tweet back.
type TweetCreatedEvent struct {
	TweetID   string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

func (TweetCreatedEvent) Kind() EventKind { return KindTweetCreated }

// UserFollowedEvent is emitted after a follow edge has been persisted.
type UserFollowedEvent struct {
	FollowerID string
	FollowedID string
}

func (UserFollowedEvent) Kind() EventKind { return KindUserFollowed }

// Handler reacts to a single event. Handlers run asynchronously on the
// publisher's worker pool; a returned error is logged by the pool wrapper
// and is never surfaced to the publishing caller.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// Publisher decouples event producers from the handlers that react to them.
type Publisher interface {
	// Publish schedules one asynchronous invocation per registered handler
	// and returns without waiting for any of them. The only error it can
	// return is a synchronous scheduling failure (saturated worker pool).
	Publish(ctx context.Context, event Event) error

	// AddListener registers a handler for an event kind. Registering the
	// same handler twice registers it twice. Safe to call concurrently
	// with Publish.
	AddListener(kind EventKind, handler Handler)
}
