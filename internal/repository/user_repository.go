package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	ctx, span := startSpan(ctx, "UserRepository.Create")
	return finish(span, r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	ctx, span := startSpan(ctx, "UserRepository.Get")
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, finish(span, err)
	}
	return &u, finish(span, nil)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	ctx, span := startSpan(ctx, "UserRepository.GetByUsername")
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, finish(span, err)
	}
	return &u, finish(span, nil)
}

// Update 写回全部列；不存在的 id 返回 gorm.ErrRecordNotFound，不会插入新行
func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	ctx, span := startSpan(ctx, "UserRepository.Update")
	res := r.db.WithContext(ctx).Model(u).Where("id = ?", u.ID).Select("*").Updates(u)
	if res.Error != nil {
		return finish(span, res.Error)
	}
	if res.RowsAffected == 0 {
		return finish(span, gorm.ErrRecordNotFound)
	}
	return finish(span, nil)
}

// Delete 外键为 RESTRICT：仍被帖子、评论或关注关系引用的用户删除失败
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "UserRepository.Delete")
	return finish(span, r.db.WithContext(ctx).Delete(&model.User{}, id).Error)
}
