package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/notification"
)

type fakeNotificationRepo struct {
	mu      sync.Mutex
	stored  []notification.Notification
	batches int
}

func (r *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = append(r.stored, notifications...)
	r.batches++
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]notification.Notification, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notification.Notification
	for _, n := range r.stored {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.stored {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stored {
		if r.stored[i].ID == id && r.stored[i].RecipientID == recipientID {
			r.stored[i].IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stored {
		if r.stored[i].RecipientID == recipientID {
			r.stored[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stored {
		if r.stored[i].ID == id && r.stored[i].RecipientID == recipientID {
			r.stored = append(r.stored[:i], r.stored[i+1:]...)
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) storedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stored)
}

func TestEnqueueFillsDefaults(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, Config{FlushInterval: 10 * time.Millisecond})
	defer svc.Stop()

	svc.Enqueue(notification.Notification{
		RecipientID: "emp-1",
		Type:        notification.TypeLeaveApproved,
		Title:       "Leave request approved",
	})

	require.Eventually(t, func() bool { return repo.storedCount() == 1 }, time.Second, 5*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.NotEmpty(t, repo.stored[0].ID)
	assert.False(t, repo.stored[0].CreatedAt.IsZero())
}

func TestWorkerFlushesOnBatchSize(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, Config{BatchSize: 5, WorkerCount: 1, FlushInterval: time.Hour})
	defer svc.Stop()

	for i := 0; i < 5; i++ {
		svc.Enqueue(notification.Notification{RecipientID: "emp-1", Type: notification.TypeLeaveRequested})
	}

	// The flush interval is far off, so only the batch-size trigger applies.
	require.Eventually(t, func() bool { return repo.storedCount() == 5 }, time.Second, 5*time.Millisecond)
}

func TestEnqueueDropsWhenQueueFull(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, Config{QueueSize: 1, WorkerCount: 1, BatchSize: 100, FlushInterval: time.Hour})

	// Workers may drain at most one entry while we overfill; anything past
	// queue capacity plus in-flight batches is dropped, never blocked on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			svc.Enqueue(notification.Notification{RecipientID: "emp-1", Type: notification.TypeLeaveRequested})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	svc.Stop()
}

func TestStopFlushesPending(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, Config{WorkerCount: 1, FlushInterval: 10 * time.Millisecond})

	for i := 0; i < 3; i++ {
		svc.Enqueue(notification.Notification{RecipientID: "emp-1", Type: notification.TypeCompOffCredit})
	}

	require.Eventually(t, func() bool { return repo.storedCount() == 3 }, time.Second, 5*time.Millisecond)
	svc.Stop()
	assert.Equal(t, 3, repo.storedCount())
}

func TestListAndReadFlow(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, Config{WorkerCount: 1, FlushInterval: 10 * time.Millisecond})
	defer svc.Stop()

	svc.Enqueue(notification.Notification{RecipientID: "emp-1", Type: notification.TypeLeaveApproved})
	svc.Enqueue(notification.Notification{RecipientID: "emp-1", Type: notification.TypeLeaveRejected})
	svc.Enqueue(notification.Notification{RecipientID: "emp-2", Type: notification.TypeLeaveRequested})

	require.Eventually(t, func() bool { return repo.storedCount() == 3 }, time.Second, 5*time.Millisecond)

	list, total, err := svc.List(context.Background(), "emp-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	unread, err := svc.UnreadCount(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, svc.MarkRead(context.Background(), list[0].ID, "emp-1"))
	unread, err = svc.UnreadCount(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, svc.MarkAllRead(context.Background(), "emp-1"))
	unread, err = svc.UnreadCount(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	// emp-2's notification is untouched.
	unread, err = svc.UnreadCount(context.Background(), "emp-2")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}
