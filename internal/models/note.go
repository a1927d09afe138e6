package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a single user-authored note. Every note belongs to exactly one
// owner and is only ever read or mutated through owner-scoped lookups.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	IsPinned  bool               `bson:"isPinned" json:"isPinned"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	CreatedOn time.Time          `bson:"createdOn" json:"createdOn"`
}

// NotePatch carries the fields of a merge-patch edit. Nil means the field was
// omitted; a pointer to a zero value is still an update, so setting tags to an
// empty list or pinning to false works.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// Empty reports whether the patch carries no fields at all.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPinned == nil
}
