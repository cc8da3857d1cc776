package model

import "gorm.io/gorm"

// Media 帖子附件，Type 为自由标签（image/video ...）
type Media struct {
	ID     int64   `json:"id" gorm:"primaryKey"`
	Type   *string `json:"type" gorm:"size:20" validate:"omitempty,max=20"`
	URL    string  `json:"url" gorm:"column:url;size:255;not null;default:null" validate:"required,max=255"`
	PostID int64   `json:"post_id" gorm:"not null;index:idx_media_post"`
}

func (Media) TableName() string { return "media" }

func (m *Media) BeforeSave(*gorm.DB) error { return checkLengths(m.TableName(), m) }

func (m *Media) Serialize() map[string]any {
	if m == nil {
		return nil
	}
	return map[string]any{
		"id":      m.ID,
		"type":    deref(m.Type),
		"url":     m.URL,
		"post_id": m.PostID,
	}
}
