package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type GroupRepo struct {
	col *mongo.Collection
}

func NewGroupRepo(db *mongo.Database) *GroupRepo {
	return &GroupRepo{col: db.Collection("groups")}
}

func (r *GroupRepo) FindByName(ctx context.Context, name string) (*models.Group, error) {
	var g models.Group
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("group %q: %w", name, services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &g, nil
}

func (r *GroupRepo) Insert(ctx context.Context, g *models.Group) error {
	if _, err := r.col.InsertOne(ctx, g); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *GroupRepo) AddMember(ctx context.Context, name, user string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$push": bson.M{"members": user}})
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group %q: %w", name, services.ErrNotFound)
	}
	return nil
}

func (r *GroupRepo) RemoveMember(ctx context.Context, name, user string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$pull": bson.M{"members": user}})
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group %q: %w", name, services.ErrNotFound)
	}
	return nil
}

func (r *GroupRepo) AppendPost(ctx context.Context, name string, post models.Post) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$push": bson.M{"posts": post}})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("group %q: %w", name, services.ErrNotFound)
	}
	return nil
}

// FindPostByContent projects the first post whose content matches exactly.
// Two identical posts in one group are indistinguishable here; every caller
// acts on the first match.
func (r *GroupRepo) FindPostByContent(ctx context.Context, name, content string) (*models.Post, error) {
	filter := bson.M{"name": name, "posts.content": content}
	opts := options.FindOne().SetProjection(bson.M{"posts.$": 1})

	var g models.Group
	err := r.col.FindOne(ctx, filter, opts).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("post: %w", services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if len(g.Posts) == 0 {
		return nil, fmt.Errorf("post: %w", services.ErrNotFound)
	}
	return &g.Posts[0], nil
}

// ApplyLike increments the like counter and records the liker in one atomic
// document update. The membership check happens earlier, in the service.
func (r *GroupRepo) ApplyLike(ctx context.Context, name, content, user string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": name, "posts.content": content},
		bson.M{
			"$inc":  bson.M{"posts.$.likes": 1},
			"$push": bson.M{"posts.$.liked_by": user},
		})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("post: %w", services.ErrNotFound)
	}
	return nil
}

// ApplyDislike decrements unconditionally. No liked_by bookkeeping and no
// floor at zero; the counter may go negative.
func (r *GroupRepo) ApplyDislike(ctx context.Context, name, content string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": name, "posts.content": content},
		bson.M{"$inc": bson.M{"posts.$.likes": -1}})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("post: %w", services.ErrNotFound)
	}
	return nil
}

func (r *GroupRepo) AppendComment(ctx context.Context, name, content string, comment models.Comment) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": name, "posts.content": content},
		bson.M{"$push": bson.M{"posts.$.comments": comment}})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("post: %w", services.ErrNotFound)
	}
	return nil
}

// PullComments removes every comment with exactly matching text from the
// first matching post. NotFound covers both a missing post and a text that
// removed nothing.
func (r *GroupRepo) PullComments(ctx context.Context, name, content, text string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": name, "posts.content": content},
		bson.M{"$pull": bson.M{"posts.$.comments": bson.M{"text": text}}})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("comment: %w", services.ErrNotFound)
	}
	return nil
}

func (r *GroupRepo) ListNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, bson.M{})
}

func (r *GroupRepo) ListNamesByMember(ctx context.Context, user string) ([]string, error) {
	return r.listNames(ctx, bson.M{"members": user})
}

func (r *GroupRepo) listNames(ctx context.Context, filter bson.M) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "name": 1})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	names := []string{}
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr(err)
	}
	return names, nil
}
