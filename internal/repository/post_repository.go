package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/internal/model"
)

type PostRepository interface {
	// Create 同时插入 p.Media 与 p.Comments 中的新记录
	Create(ctx context.Context, p *model.Post) error
	// Get 返回预加载了 media 与 comments 的完整帖子
	Get(ctx context.Context, id int64) (*model.Post, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*model.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func byID(db *gorm.DB) *gorm.DB { return db.Order("id") }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	ctx, span := startSpan(ctx, "PostRepository.Create")
	return finish(span, r.db.WithContext(ctx).Create(p).Error)
}

func (r *postRepository) Get(ctx context.Context, id int64) (*model.Post, error) {
	ctx, span := startSpan(ctx, "PostRepository.Get")
	var p model.Post
	if err := r.db.WithContext(ctx).
		Preload("Media", byID).
		Preload("Comments", byID).
		First(&p, id).Error; err != nil {
		return nil, finish(span, err)
	}
	return &p, finish(span, nil)
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*model.Post, error) {
	ctx, span := startSpan(ctx, "PostRepository.ListByUser")
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Media", byID).
		Preload("Comments", byID).
		Where("user_id = ?", userID).
		Order("id").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, finish(span, err)
}

// Delete 仍有 media 或 comments 引用时失败（RESTRICT）
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "PostRepository.Delete")
	return finish(span, r.db.WithContext(ctx).Delete(&model.Post{}, id).Error)
}
