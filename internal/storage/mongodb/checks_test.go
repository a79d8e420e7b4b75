package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mavecode/mavecode-api/internal/models"
)

func decodeDoc[T any](t *testing.T, doc bson.M) *T {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var v T
	require.NoError(t, bson.Unmarshal(raw, &v))
	return &v
}

func TestValidCourse(t *testing.T) {
	now := time.Now().UTC()
	full := bson.M{
		"_id": "c1", "title": "Go", "description": "d", "category": "backend",
		"level": "beginner", "instructor": "Firza Ilmi", "created_at": now, "updated_at": now,
	}

	tests := []struct {
		name string
		doc  bson.M
		want bool
	}{
		{name: "complete", doc: full, want: true},
		{name: "title only", doc: bson.M{"_id": "c1", "title": "T"}, want: false},
		{name: "no category", doc: without(full, "category"), want: false},
		{name: "no level", doc: without(full, "level"), want: false},
		{name: "no instructor", doc: without(full, "instructor"), want: false},
		{name: "no timestamps", doc: without(full, "created_at", "updated_at"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validCourse(decodeDoc[models.Course](t, tt.doc)))
		})
	}
}

func TestValidOtherKinds(t *testing.T) {
	now := time.Now().UTC()

	assert.False(t, validVideo(decodeDoc[models.Video](t, bson.M{"_id": "v1", "course_id": "c1", "title": "T"})))
	assert.True(t, validVideo(decodeDoc[models.Video](t, bson.M{
		"_id": "v1", "course_id": "c1", "title": "T", "video_url": "https://x", "type": "video", "created_at": now,
	})))

	assert.False(t, validArticle(decodeDoc[models.Article](t, bson.M{"_id": "a1", "slug": "s", "title": "T"})))
	a := decodeDoc[models.Article](t, bson.M{
		"_id": "a1", "slug": "s", "title": "T", "content": "c", "category": "news", "author": "A",
		"created_at": now, "updated_at": now,
	})
	assert.True(t, validArticle(a))
	assert.NotNil(t, a.Tags)

	assert.False(t, validOrder(decodeDoc[models.Order](t, bson.M{"_id": "o1", "user_id": "u1", "status": "paid"})))
	assert.False(t, validLiveClass(decodeDoc[models.LiveClass](t, bson.M{"_id": "l1", "title": "T", "scheduled_at": now})))
	assert.False(t, validUser(decodeDoc[models.User](t, bson.M{"_id": "u1", "email": "a@b.c", "password": "h"})))
	assert.False(t, validFAQ(decodeDoc[models.FAQ](t, bson.M{"_id": "f1", "question": "q"})))
}

func without(doc bson.M, keys ...string) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
