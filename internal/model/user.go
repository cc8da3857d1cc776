package model

import "gorm.io/gorm"

// User 用户。username/email 为必填唯一列；零值在保存前即被拒绝，插入时也写为 NULL
type User struct {
	ID        int64   `json:"id" gorm:"primaryKey"`
	Username  string  `json:"username" gorm:"size:50;uniqueIndex;not null;default:null" validate:"required,max=50"`
	Firstname *string `json:"firstname" gorm:"size:50" validate:"omitempty,max=50"`
	Lastname  *string `json:"lastname" gorm:"size:50" validate:"omitempty,max=50"`
	Email     string  `json:"email" gorm:"size:120;uniqueIndex;not null;default:null" validate:"required,max=120"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeSave(*gorm.DB) error { return checkLengths(u.TableName(), u) }

// Serialize 返回用户的扁平视图
func (u *User) Serialize() map[string]any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"firstname": deref(u.Firstname),
		"lastname":  deref(u.Lastname),
		"email":     u.Email,
	}
}
