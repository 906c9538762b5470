package notification

import "context"

type Repository interface {
	// CreateBatch inserts queued notifications in one statement.
	CreateBatch(ctx context.Context, notifications []Notification) error

	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]Notification, int, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, id, recipientID string) error
}

// Enqueuer accepts notifications for asynchronous delivery. Enqueue never
// blocks the caller.
type Enqueuer interface {
	Enqueue(n Notification)
}
