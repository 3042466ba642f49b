package models

import "time"

// Forum post categories.
const (
	CategoryReview     = "review"
	CategoryDiscussion = "discussion"
	CategoryQuestion   = "question"
	CategoryNews       = "news"
)

var ValidCategories = map[string]bool{
	CategoryReview:     true,
	CategoryDiscussion: true,
	CategoryQuestion:   true,
	CategoryNews:       true,
}

type ForumGroup struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"size:100;not null"`
	Description  string `json:"description" gorm:"type:text"`
	MembersCount int    `json:"members_count" gorm:"not null;default:0"`
	IconClass    string `json:"icon_class" gorm:"size:50"`
	ColorClass   string `json:"color_class" gorm:"size:50;default:'bg-white'"`
	Order        int    `json:"order" gorm:"column:display_order;not null;default:0;index"`
}

func (ForumGroup) TableName() string {
	return "forum_groups"
}

type ForumPost struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Category     string    `json:"category" gorm:"size:20;not null"`
	ForumGroupID *int64    `json:"forum_group_id,omitempty" gorm:"index"`
	Likes        int       `json:"likes" gorm:"not null;default:0"`
	Views        int64     `json:"views" gorm:"not null;default:0"`
	IsPinned     bool      `json:"is_pinned" gorm:"not null;default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// associations
	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	ForumGroup *ForumGroup `json:"forum_group,omitempty" gorm:"foreignKey:ForumGroupID;constraint:OnDelete:SET NULL;"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
