package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is a board entry. Password is kept for prospective self-service
// edit/delete and never returned on list views.
type Post struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Content   string        `json:"content" bson:"content"`
	Author    string        `json:"author" bson:"author"`
	Password  string        `json:"-" bson:"password"`
	Rating    int           `json:"rating" bson:"rating"`
	Views     int           `json:"views" bson:"views"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// PostSummary is the list-view shape: no content, no password, plus the
// computed comment count.
type PostSummary struct {
	ID           bson.ObjectID `json:"id"`
	Title        string        `json:"title"`
	Author       string        `json:"author"`
	Views        int           `json:"views"`
	CreatedAt    time.Time     `json:"created_at"`
	CommentCount int           `json:"comment_count"`
}

type Comment struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    string        `json:"post_id" bson:"post_id"`
	Author    string        `json:"author" bson:"author"`
	Content   string        `json:"content" bson:"content"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
