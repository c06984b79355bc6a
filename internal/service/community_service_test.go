package service

import (
	"context"
	"testing"
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
)

type fakePostRepo struct {
	post        *entity.Post
	onIncrement func()
}

func (r *fakePostRepo) Create(ctx context.Context, p *entity.Post) error { return nil }
func (r *fakePostRepo) Update(ctx context.Context, p *entity.Post) error { return nil }
func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }

func (r *fakePostRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	if r.post == nil {
		return nil, nil
	}
	cp := *r.post
	return &cp, nil
}

func (r *fakePostRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	if r.post == nil {
		return nil, nil
	}
	return []*entity.Post{r.post}, nil
}

func (r *fakePostRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakePostRepo) IncrementCounter(ctx context.Context, id uuid.UUID, column string, delta int) error {
	switch column {
	case "likes_count":
		r.post.LikesCount += delta
	case "comments_count":
		r.post.CommentsCount += delta
	}
	if r.onIncrement != nil {
		r.onIncrement()
	}
	return nil
}

type fakePostLikeRepo struct {
	existing *entity.PostLike
	created  []*entity.PostLike
}

func (r *fakePostLikeRepo) Create(ctx context.Context, like *entity.PostLike) error {
	r.created = append(r.created, like)
	return nil
}

func (r *fakePostLikeRepo) Delete(ctx context.Context, postId, userId uuid.UUID) error { return nil }

func (r *fakePostLikeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PostLike, error) {
	return r.existing, nil
}

func (r *fakePostLikeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PostLike, error) {
	return nil, nil
}

func TestToggleLikeReportsStoredCounter(t *testing.T) {
	postId := uuid.New()
	posts := &fakePostRepo{post: &entity.Post{
		Id:         postId,
		UserId:     uuid.New(),
		LikesCount: 5,
		CreatedAt:  time.Now(),
	}}
	// Another like lands between this request's increment and its read-back.
	posts.onIncrement = func() { posts.post.LikesCount++ }

	uow := &fakeUow{posts: posts, postLikes: &fakePostLikeRepo{}}
	svc := NewCommunityService(&fakeFactory{uow: uow}, nil, nopLogger{})

	res, err := svc.ToggleLike(context.Background(), uuid.New(), postId)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Liked {
		t.Fatal("expected the toggle to like the post")
	}
	if len(uow.postLikes.created) != 1 {
		t.Fatalf("expected 1 like row, got %d", len(uow.postLikes.created))
	}
	if res.LikesCount != 7 {
		t.Errorf("likes_count = %d, want the stored 7, not a stale snapshot", res.LikesCount)
	}
	if uow.committed != 1 {
		t.Errorf("committed %d times, want 1", uow.committed)
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	uow := &fakeUow{posts: &fakePostRepo{}, postLikes: &fakePostLikeRepo{}}
	svc := NewCommunityService(&fakeFactory{uow: uow}, nil, nopLogger{})

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	if appStatus(t, err).Status != 404 {
		t.Fatal("expected 404 for an unknown post")
	}
}
