package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/internal/model"
)

type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) error
	Get(ctx context.Context, id int64) (*model.Media, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Media, error)
	Delete(ctx context.Context, id int64) error
}

type mediaRepository struct{ db *gorm.DB }

func NewMediaRepository(db *gorm.DB) MediaRepository { return &mediaRepository{db: db} }

func (r *mediaRepository) Create(ctx context.Context, m *model.Media) error {
	ctx, span := startSpan(ctx, "MediaRepository.Create")
	return finish(span, r.db.WithContext(ctx).Create(m).Error)
}

func (r *mediaRepository) Get(ctx context.Context, id int64) (*model.Media, error) {
	ctx, span := startSpan(ctx, "MediaRepository.Get")
	var m model.Media
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, finish(span, err)
	}
	return &m, finish(span, nil)
}

func (r *mediaRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Media, error) {
	ctx, span := startSpan(ctx, "MediaRepository.ListByPost")
	var res []*model.Media
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&res).Error
	return res, finish(span, err)
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "MediaRepository.Delete")
	return finish(span, r.db.WithContext(ctx).Delete(&model.Media{}, id).Error)
}
