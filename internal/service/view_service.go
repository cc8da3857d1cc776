package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-schema/internal/cache"
	"github.com/d60-Lab/social-schema/internal/model"
	"github.com/d60-Lab/social-schema/internal/repository"
	"github.com/d60-Lab/social-schema/pkg/logger"
)

// ViewService 读取序列化视图，记录经由 redis 快照缓存（可选）
type ViewService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	media    repository.MediaRepository
	comments repository.CommentRepository
	follows  repository.FollowRepository
	cache    *cache.SnapshotCache
}

func NewViewService(
	users repository.UserRepository,
	posts repository.PostRepository,
	media repository.MediaRepository,
	comments repository.CommentRepository,
	follows repository.FollowRepository,
	snapshots *cache.SnapshotCache,
) *ViewService {
	return &ViewService{users: users, posts: posts, media: media, comments: comments, follows: follows, cache: snapshots}
}

// PostView 返回帖子的完整序列化视图（含 media 与 comments）
// 缓存保存的是记录本身，命中与未命中返回相同类型的视图
func (s *ViewService) PostView(ctx context.Context, id int64) (map[string]any, error) {
	var cached model.Post
	if s.cached(ctx, cache.KindPost, id, &cached) {
		return cached.Serialize(), nil
	}
	p, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, cache.KindPost, id, p)
	return p.Serialize(), nil
}

func (s *ViewService) UserView(ctx context.Context, id int64) (map[string]any, error) {
	var cached model.User
	if s.cached(ctx, cache.KindUser, id, &cached) {
		return cached.Serialize(), nil
	}
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, cache.KindUser, id, u)
	return u.Serialize(), nil
}

// UserProfile 用户视图加上关注/粉丝计数
func (s *ViewService) UserProfile(ctx context.Context, id int64) (map[string]any, error) {
	v, err := s.UserView(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(v)+2)
	for k, val := range v {
		out[k] = val
	}
	out["followers"] = followers
	out["following"] = following
	return out, nil
}

func (s *ViewService) AddMedia(ctx context.Context, m *model.Media) error {
	if err := s.media.Create(ctx, m); err != nil {
		return err
	}
	s.InvalidatePost(ctx, m.PostID)
	return nil
}

func (s *ViewService) AddComment(ctx context.Context, c *model.Comment) error {
	if err := s.comments.Create(ctx, c); err != nil {
		return err
	}
	s.InvalidatePost(ctx, c.PostID)
	return nil
}

func (s *ViewService) UpdateUser(ctx context.Context, u *model.User) error {
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	s.InvalidateUser(ctx, u.ID)
	return nil
}

func (s *ViewService) InvalidatePost(ctx context.Context, ids ...int64) {
	if err := s.cache.Delete(ctx, cache.KindPost, ids...); err != nil {
		logger.Warn("invalidate post view failed", zap.Int64s("ids", ids), zap.Error(err))
	}
}

func (s *ViewService) InvalidateUser(ctx context.Context, ids ...int64) {
	if err := s.cache.Delete(ctx, cache.KindUser, ids...); err != nil {
		logger.Warn("invalidate user view failed", zap.Int64s("ids", ids), zap.Error(err))
	}
}

// cache errors degrade to a database read
func (s *ViewService) cached(ctx context.Context, kind cache.Kind, id int64, dst any) bool {
	hit, err := s.cache.Get(ctx, kind, id, dst)
	if err != nil {
		logger.Warn("snapshot cache read failed", zap.String("kind", string(kind)), zap.Int64("id", id), zap.Error(err))
		return false
	}
	return hit
}

func (s *ViewService) store(ctx context.Context, kind cache.Kind, id int64, record any) {
	if err := s.cache.Set(ctx, kind, id, record); err != nil {
		logger.Warn("snapshot cache write failed", zap.String("kind", string(kind)), zap.Int64("id", id), zap.Error(err))
	}
}
