package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-schema/internal/repository"
	"github.com/d60-Lab/social-schema/pkg/logger"
)

var (
	ErrFollowSelf = errors.New("cannot follow self")
)

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, fromUserID, toUserID int64) (map[string]any, error)
	Unfollow(ctx context.Context, fromUserID, toUserID int64) error
	ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]int64, error)
	ListFollowers(ctx context.Context, userID int64, page, pageSize int) ([]int64, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
}

func NewRelationshipService(followRepo repository.FollowRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo}
}

// Follow 返回新关注关系的序列化视图；重复关注返回唯一约束错误
func (s *relationshipService) Follow(ctx context.Context, fromUserID, toUserID int64) (map[string]any, error) {
	if fromUserID == toUserID {
		return nil, ErrFollowSelf
	}
	f, err := s.followRepo.Create(ctx, fromUserID, toUserID)
	if err != nil {
		logger.Debug("follow failed", zap.Int64("from", fromUserID), zap.Int64("to", toUserID), zap.Error(err))
		return nil, err
	}
	return f.Serialize(), nil
}

func (s *relationshipService) Unfollow(ctx context.Context, fromUserID, toUserID int64) error {
	return s.followRepo.Delete(ctx, fromUserID, toUserID)
}

func paging(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return (page - 1) * pageSize, pageSize
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]int64, error) {
	offset, limit := paging(page, pageSize)
	items, err := s.followRepo.ListFollowing(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]int64, len(items))
	for i, it := range items {
		res[i] = it.UserToID
	}
	return res, nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID int64, page, pageSize int) ([]int64, error) {
	offset, limit := paging(page, pageSize)
	items, err := s.followRepo.ListFollowers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]int64, len(items))
	for i, it := range items {
		res[i] = it.UserFromID
	}
	return res, nil
}
