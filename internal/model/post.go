package model

import "gorm.io/gorm"

// Post 内容主体；Media/Comments 由预加载填充
type Post struct {
	ID     int64 `json:"id" gorm:"primaryKey"`
	UserID int64 `json:"user_id" gorm:"not null;index:idx_post_user"`

	User     *User     `json:"-" validate:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Media    []Media   `json:"media" validate:"-" gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Comments []Comment `json:"comments" validate:"-" gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Post) TableName() string { return "post" }

func (p *Post) BeforeSave(*gorm.DB) error { return checkLengths(p.TableName(), p) }

// Serialize 递归序列化 media 与 comments，空集合输出为空列表
func (p *Post) Serialize() map[string]any {
	if p == nil {
		return nil
	}
	media := make([]map[string]any, 0, len(p.Media))
	for i := range p.Media {
		media = append(media, p.Media[i].Serialize())
	}
	comments := make([]map[string]any, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, p.Comments[i].Serialize())
	}
	return map[string]any{
		"id":       p.ID,
		"user_id":  p.UserID,
		"media":    media,
		"comments": comments,
	}
}
