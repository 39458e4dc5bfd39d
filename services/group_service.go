package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

// GroupStore is the document-store surface the feed manager needs. Every
// method is a single store round trip; the service composes them, so
// check-then-act sequences (join, like) are not atomic across calls.
type GroupStore interface {
	FindByName(ctx context.Context, name string) (*models.Group, error)
	Insert(ctx context.Context, g *models.Group) error
	AddMember(ctx context.Context, name, user string) error
	RemoveMember(ctx context.Context, name, user string) error
	AppendPost(ctx context.Context, name string, post models.Post) error
	FindPostByContent(ctx context.Context, name, content string) (*models.Post, error)
	ApplyLike(ctx context.Context, name, content, user string) error
	ApplyDislike(ctx context.Context, name, content string) error
	AppendComment(ctx context.Context, name, content string, comment models.Comment) error
	PullComments(ctx context.Context, name, content, text string) error
	ListNames(ctx context.Context) ([]string, error)
	ListNamesByMember(ctx context.Context, user string) ([]string, error)
}

// Notifier delivers a message to a single recipient. Implemented by
// NotificationService; failures are the caller's to ignore or propagate.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

type JoinStatus int

const (
	JoinCreated JoinStatus = iota // group did not exist; created with the caller as first member
	Joined                        // appended to an existing member list
	AlreadyMember                 // no-op
)

type GroupService struct {
	store    GroupStore
	notifier Notifier
	now      func() time.Time
}

func NewGroupService(store GroupStore, notifier Notifier) *GroupService {
	return &GroupService{store: store, notifier: notifier, now: time.Now}
}

func (s *GroupService) JoinGroup(ctx context.Context, user, name string) (JoinStatus, error) {
	if name == "" {
		return 0, fmt.Errorf("group name is required: %w", ErrInvalidInput)
	}

	group, err := s.store.FindByName(ctx, name)
	if isNotFound(err) {
		g := &models.Group{Name: name, Members: []string{user}, Posts: []models.Post{}}
		if err := s.store.Insert(ctx, g); err != nil {
			return 0, err
		}
		return JoinCreated, nil
	}
	if err != nil {
		return 0, err
	}

	if contains(group.Members, user) {
		return AlreadyMember, nil
	}
	if err := s.store.AddMember(ctx, name, user); err != nil {
		return 0, err
	}
	return Joined, nil
}

func (s *GroupService) LeaveGroup(ctx context.Context, user, name string) error {
	if name == "" {
		return fmt.Errorf("group name is required: %w", ErrInvalidInput)
	}
	group, err := s.store.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if !contains(group.Members, user) {
		return fmt.Errorf("you are not a member of %s: %w", name, ErrForbidden)
	}
	return s.store.RemoveMember(ctx, name, user)
}

func (s *GroupService) CreatePost(ctx context.Context, user, name, content string) (*models.Post, error) {
	if name == "" || content == "" {
		return nil, fmt.Errorf("group name and content are required: %w", ErrInvalidInput)
	}
	group, err := s.store.FindByName(ctx, name)
	if isNotFound(err) {
		return nil, fmt.Errorf("you are not a member of %s: %w", name, ErrForbidden)
	}
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, user) {
		return nil, fmt.Errorf("you are not a member of %s: %w", name, ErrForbidden)
	}

	post := models.Post{
		PostID:    uuid.NewString(),
		User:      user,
		Content:   content,
		Likes:     0,
		LikedBy:   []string{},
		Comments:  []models.Comment{},
		Timestamp: s.now().UTC(),
	}
	if err := s.store.AppendPost(ctx, name, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// LikePost reads the post to check the liked_by set, then applies the
// counter update in a second round trip. Two concurrent likes from the same
// user can both pass the check and both land; see the service tests.
func (s *GroupService) LikePost(ctx context.Context, user, name, content string) error {
	post, err := s.store.FindPostByContent(ctx, name, content)
	if err != nil {
		return err
	}
	if contains(post.LikedBy, user) {
		return fmt.Errorf("you have already liked this post: %w", ErrConflict)
	}
	if err := s.store.ApplyLike(ctx, name, content, user); err != nil {
		return err
	}
	// Self-likes notify too; the owner is always told.
	return s.notifier.Notify(ctx, post.User, fmt.Sprintf("%s liked your post!", user))
}

// DislikePost is not the inverse of LikePost: any caller may decrement any
// number of times, and the counter can go negative.
func (s *GroupService) DislikePost(ctx context.Context, name, content string) error {
	return s.store.ApplyDislike(ctx, name, content)
}

func (s *GroupService) CommentOnPost(ctx context.Context, user, name, content, text string) error {
	post, err := s.store.FindPostByContent(ctx, name, content)
	if err != nil {
		return err
	}
	if err := s.store.AppendComment(ctx, name, content, models.Comment{User: user, Text: text}); err != nil {
		return err
	}
	msg := fmt.Sprintf("%s commented on your post: %s", user, text)
	return s.notifier.Notify(ctx, post.User, msg)
}

func (s *GroupService) RemoveComment(ctx context.Context, name, content, text string) error {
	return s.store.PullComments(ctx, name, content, text)
}

func (s *GroupService) ListGroupPosts(ctx context.Context, user, name string) ([]models.Post, error) {
	group, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, user) {
		return nil, fmt.Errorf("you are not a member of %s: %w", name, ErrForbidden)
	}
	return group.Posts, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]string, error) {
	return s.store.ListNames(ctx)
}

func (s *GroupService) ListUserGroups(ctx context.Context, user string) ([]string, error) {
	return s.store.ListNamesByMember(ctx, user)
}

// PostBadge publishes a badge-earned announcement into a group's feed.
// Membership is not checked; the group just has to exist.
func (s *GroupService) PostBadge(ctx context.Context, user, name, badge string) error {
	if name == "" || badge == "" {
		return fmt.Errorf("group name and badge are required: %w", ErrInvalidInput)
	}
	if _, err := s.store.FindByName(ctx, name); err != nil {
		return err
	}
	post := models.Post{
		PostID:    uuid.NewString(),
		User:      user,
		Content:   fmt.Sprintf("🎉 Earned a new badge: %s!", badge),
		LikedBy:   []string{},
		Comments:  []models.Comment{},
		Timestamp: s.now().UTC(),
	}
	return s.store.AppendPost(ctx, name, post)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
