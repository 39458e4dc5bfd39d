package services

import (
	"context"
	"time"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type NotificationStore interface {
	Insert(ctx context.Context, n models.Notification) error
	ListByRecipient(ctx context.Context, user string) ([]models.Notification, error)
	MarkAllSeen(ctx context.Context, user string) error
}

// NotificationService turns feed events into per-user notification records,
// with best-effort fan-out to live websocket connections and push endpoints.
type NotificationService struct {
	store NotificationStore
	hub   *RealtimeHub
	push  *PushService
	now   func() time.Time
}

// NewNotificationService accepts a nil hub and a nil push service; only the
// stored record is mandatory.
func NewNotificationService(store NotificationStore, hub *RealtimeHub, push *PushService) *NotificationService {
	return &NotificationService{store: store, hub: hub, push: push, now: time.Now}
}

func (s *NotificationService) Notify(ctx context.Context, recipient, message string) error {
	n := models.Notification{
		User:      recipient,
		Message:   message,
		Timestamp: s.now().UTC(),
		Seen:      false,
	}
	if err := s.store.Insert(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(recipient, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if s.push != nil {
		s.push.PushToUser(ctx, recipient, "HealthFitnessApp", message, nil)
	}
	return nil
}

// ListNotifications returns the recipient's notifications newest first, then
// marks every unseen one as seen. The two store calls are not atomic: a
// failure in between leaves notifications unseen, which is safe to retry.
func (s *NotificationService) ListNotifications(ctx context.Context, user string) ([]models.Notification, error) {
	list, err := s.store.ListByRecipient(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.store.MarkAllSeen(ctx, user); err != nil {
		return nil, err
	}
	return list, nil
}
