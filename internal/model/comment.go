package model

import "gorm.io/gorm"

// Comment 评论，属于一个帖子和一个作者
type Comment struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	CommentText string `json:"comment_text" gorm:"size:500;not null;default:null" validate:"required,max=500"`
	AuthorID    int64  `json:"author_id" gorm:"not null;index:idx_comment_author"`
	PostID      int64  `json:"post_id" gorm:"not null;index:idx_comment_post"`

	Author *User `json:"-" validate:"-" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Comment) TableName() string { return "comment" }

func (c *Comment) BeforeSave(*gorm.DB) error { return checkLengths(c.TableName(), c) }

func (c *Comment) Serialize() map[string]any {
	if c == nil {
		return nil
	}
	return map[string]any{
		"id":           c.ID,
		"comment_text": c.CommentText,
		"author_id":    c.AuthorID,
		"post_id":      c.PostID,
	}
}
