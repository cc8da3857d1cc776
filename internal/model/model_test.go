package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-schema/pkg/dberr"
)

func strPtr(s string) *string { return &s }

func TestPostSerializeNestsMediaAndComments(t *testing.T) {
	p := &Post{
		ID:     10,
		UserID: 1,
		Media: []Media{
			{ID: 100, Type: strPtr("image"), URL: "http://x/1.png", PostID: 10},
			{ID: 101, Type: strPtr("video"), URL: "http://x/2.mp4", PostID: 10},
		},
		Comments: []Comment{
			{ID: 7, CommentText: "hi", AuthorID: 2, PostID: 10},
		},
	}

	out, err := json.Marshal(p.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 10, "user_id": 1,
		"media": [
			{"id": 100, "type": "image", "url": "http://x/1.png", "post_id": 10},
			{"id": 101, "type": "video", "url": "http://x/2.mp4", "post_id": 10}
		],
		"comments": [{"id": 7, "comment_text": "hi", "author_id": 2, "post_id": 10}]
	}`, string(out))
}

func TestPostSerializeEmptyCollectionsAreLists(t *testing.T) {
	out, err := json.Marshal((&Post{ID: 1, UserID: 2}).Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user_id":2,"media":[],"comments":[]}`, string(out))
}

func TestFollowerSerializeFollowedAt(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 500, time.FixedZone("CET", 3600))
	f := &Follower{UserFromID: 1, UserToID: 2, FollowedAt: &at}

	v := f.Serialize()
	assert.Equal(t, int64(1), v["user_from_id"])
	assert.Equal(t, int64(2), v["user_to_id"])
	assert.Equal(t, "2024-03-01T11:30:00.0000005Z", v["followed_at"])

	f.FollowedAt = nil
	v = f.Serialize()
	assert.Contains(t, v, "followed_at")
	assert.Nil(t, v["followed_at"])
}

func TestFollowerBeforeCreateStampsTime(t *testing.T) {
	f := &Follower{UserFromID: 1, UserToID: 2}
	before := time.Now().UTC()
	require.NoError(t, f.BeforeCreate(nil))
	require.NotNil(t, f.FollowedAt)
	assert.False(t, f.FollowedAt.Before(before))

	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	f.FollowedAt = &fixed
	require.NoError(t, f.BeforeCreate(nil))
	assert.Equal(t, fixed, *f.FollowedAt)
}

func TestUserSerializeNullableNames(t *testing.T) {
	u := &User{ID: 1, Username: "alice", Email: "a@x.com", Lastname: strPtr("Liddell")}
	assert.Equal(t, map[string]any{
		"id":        int64(1),
		"username":  "alice",
		"firstname": nil,
		"lastname":  "Liddell",
		"email":     "a@x.com",
	}, u.Serialize())
}

func TestMediaAndCommentSerialize(t *testing.T) {
	m := &Media{ID: 3, URL: "http://x/3", PostID: 9}
	assert.Equal(t, map[string]any{"id": int64(3), "type": nil, "url": "http://x/3", "post_id": int64(9)}, m.Serialize())

	c := &Comment{ID: 4, CommentText: "ok", AuthorID: 5, PostID: 9}
	assert.Equal(t, map[string]any{"id": int64(4), "comment_text": "ok", "author_id": int64(5), "post_id": int64(9)}, c.Serialize())
}

func TestSerializeNilReceivers(t *testing.T) {
	assert.Nil(t, (*User)(nil).Serialize())
	assert.Nil(t, (*Post)(nil).Serialize())
	assert.Nil(t, (*Media)(nil).Serialize())
	assert.Nil(t, (*Comment)(nil).Serialize())
	assert.Nil(t, (*Follower)(nil).Serialize())
}

func TestBeforeSaveRejectsOverlongColumns(t *testing.T) {
	u := &User{Username: strings.Repeat("a", 51), Email: "a@x.com"}
	err := u.BeforeSave(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberr.ErrValueTooLong)

	var ce *dberr.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "user", ce.Table)
	assert.Equal(t, "username", ce.Column)

	m := &Media{Type: strPtr(strings.Repeat("t", 21)), URL: "http://x"}
	assert.True(t, dberr.IsKind(m.BeforeSave(nil), dberr.KindTooLong))

	c := &Comment{CommentText: strings.Repeat("c", 500)}
	assert.NoError(t, c.BeforeSave(nil))
	c.CommentText += "c"
	assert.ErrorIs(t, c.BeforeSave(nil), dberr.ErrValueTooLong)
}

func TestBeforeSaveRejectsEmptyRequiredColumns(t *testing.T) {
	err := (&User{Email: "a@x.com"}).BeforeSave(nil)
	assert.ErrorIs(t, err, dberr.ErrNotNullViolation)
	var ce *dberr.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "username", ce.Column)

	assert.ErrorIs(t, (&User{Username: "alice"}).BeforeSave(nil), dberr.ErrNotNullViolation)
	assert.ErrorIs(t, (&Media{PostID: 1}).BeforeSave(nil), dberr.ErrNotNullViolation)
	assert.ErrorIs(t, (&Comment{PostID: 1, AuthorID: 1}).BeforeSave(nil), dberr.ErrNotNullViolation)
	assert.NoError(t, (&User{Username: "alice", Email: "a@x.com"}).BeforeSave(nil))
}

func TestModelsOrder(t *testing.T) {
	ms := Models()
	require.Len(t, ms, 5)
	assert.IsType(t, &User{}, ms[0])
	assert.IsType(t, &Follower{}, ms[4])
}
