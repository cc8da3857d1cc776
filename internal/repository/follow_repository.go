package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/internal/model"
)

type FollowRepository interface {
	Create(ctx context.Context, fromUserID, toUserID int64) (*model.Follower, error)
	Delete(ctx context.Context, fromUserID, toUserID int64) error
	Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	Get(ctx context.Context, fromUserID, toUserID int64) (*model.Follower, error)
	ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*model.Follower, error)
	ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]*model.Follower, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// Create 重复的 (from, to) 由复合主键拒绝，返回唯一约束错误
func (r *followRepository) Create(ctx context.Context, fromUserID, toUserID int64) (*model.Follower, error) {
	ctx, span := startSpan(ctx, "FollowRepository.Create")
	f := &model.Follower{UserFromID: fromUserID, UserToID: toUserID}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, finish(span, err)
	}
	return f, finish(span, nil)
}

func (r *followRepository) Delete(ctx context.Context, fromUserID, toUserID int64) error {
	ctx, span := startSpan(ctx, "FollowRepository.Delete")
	return finish(span, r.db.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", fromUserID, toUserID).
		Delete(&model.Follower{}).Error)
}

func (r *followRepository) Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	ctx, span := startSpan(ctx, "FollowRepository.Exists")
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follower{}).
		Where("user_from_id = ? AND user_to_id = ?", fromUserID, toUserID).
		Count(&cnt).Error; err != nil {
		return false, finish(span, err)
	}
	return cnt > 0, finish(span, nil)
}

func (r *followRepository) Get(ctx context.Context, fromUserID, toUserID int64) (*model.Follower, error) {
	ctx, span := startSpan(ctx, "FollowRepository.Get")
	var f model.Follower
	if err := r.db.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", fromUserID, toUserID).
		First(&f).Error; err != nil {
		return nil, finish(span, err)
	}
	return &f, finish(span, nil)
}

// ListFollowing 用户关注的人（userID 作为 from）
func (r *followRepository) ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*model.Follower, error) {
	ctx, span := startSpan(ctx, "FollowRepository.ListFollowing")
	var res []*model.Follower
	err := r.db.WithContext(ctx).
		Where("user_from_id = ?", userID).
		Order("followed_at, user_to_id").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, finish(span, err)
}

// ListFollowers 关注该用户的人（userID 作为 to）
func (r *followRepository) ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]*model.Follower, error) {
	ctx, span := startSpan(ctx, "FollowRepository.ListFollowers")
	var res []*model.Follower
	err := r.db.WithContext(ctx).
		Where("user_to_id = ?", userID).
		Order("followed_at, user_from_id").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, finish(span, err)
}

func (r *followRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	ctx, span := startSpan(ctx, "FollowRepository.CountFollowing")
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follower{}).Where("user_from_id = ?", userID).Count(&cnt).Error
	return cnt, finish(span, err)
}

func (r *followRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	ctx, span := startSpan(ctx, "FollowRepository.CountFollowers")
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follower{}).Where("user_to_id = ?", userID).Count(&cnt).Error
	return cnt, finish(span, err)
}
