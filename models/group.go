package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is the aggregate for the community feed: the membership list and the
// posts (with their likes and comments) live on one document.
type Group struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string             `bson:"name" json:"name"`
	Members []string           `bson:"members" json:"members"`
	Posts   []Post             `bson:"posts" json:"posts"`
}

// Post is embedded in its group. Mutation endpoints locate a post by group
// name plus exact content match; PostID is a stable identifier assigned at
// creation for clients that want to stop relying on content matching.
type Post struct {
	PostID    string    `bson:"post_id" json:"post_id"`
	User      string    `bson:"user" json:"user"`
	Content   string    `bson:"content" json:"content"`
	Likes     int       `bson:"likes" json:"likes"`
	LikedBy   []string  `bson:"liked_by" json:"liked_by"`
	Comments  []Comment `bson:"comments" json:"comments"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Comment struct {
	User string `bson:"user" json:"user"`
	Text string `bson:"text" json:"text"`
}
