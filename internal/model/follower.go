package model

import (
	"time"

	"gorm.io/gorm"
)

// Follower 关注关系（From 关注 To）
// 复合主键 (user_from_id, user_to_id)，同一有序对只能出现一次
type Follower struct {
	UserFromID int64      `json:"user_from_id" gorm:"primaryKey;autoIncrement:false"`
	UserToID   int64      `json:"user_to_id" gorm:"primaryKey;autoIncrement:false;index:idx_follower_to"`
	FollowedAt *time.Time `json:"followed_at"`

	From *User `json:"-" validate:"-" gorm:"foreignKey:UserFromID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	To   *User `json:"-" validate:"-" gorm:"foreignKey:UserToID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Follower) TableName() string { return "follower" }

// BeforeCreate stamps followed_at with the insertion time when unset.
func (f *Follower) BeforeCreate(*gorm.DB) error {
	if f.FollowedAt == nil {
		now := time.Now().UTC()
		f.FollowedAt = &now
	}
	return nil
}

// Serialize renders followed_at as an ISO-8601 string, or nil when absent.
func (f *Follower) Serialize() map[string]any {
	if f == nil {
		return nil
	}
	var followedAt any
	if f.FollowedAt != nil {
		followedAt = f.FollowedAt.UTC().Format(time.RFC3339Nano)
	}
	return map[string]any{
		"user_from_id": f.UserFromID,
		"user_to_id":   f.UserToID,
		"followed_at":  followedAt,
	}
}
