package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	Get(ctx context.Context, id int64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	ctx, span := startSpan(ctx, "CommentRepository.Create")
	return finish(span, r.db.WithContext(ctx).Create(c).Error)
}

func (r *commentRepository) Get(ctx context.Context, id int64) (*model.Comment, error) {
	ctx, span := startSpan(ctx, "CommentRepository.Get")
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, finish(span, err)
	}
	return &c, finish(span, nil)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	ctx, span := startSpan(ctx, "CommentRepository.ListByPost")
	var res []*model.Comment
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&res).Error
	return res, finish(span, err)
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]*model.Comment, error) {
	ctx, span := startSpan(ctx, "CommentRepository.ListByAuthor")
	var res []*model.Comment
	err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id").Offset(offset).Limit(limit).Find(&res).Error
	return res, finish(span, err)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "CommentRepository.Delete")
	return finish(span, r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error)
}
