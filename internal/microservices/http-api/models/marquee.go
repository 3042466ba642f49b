package models

import "time"

// MarqueeMessage is a line of the ticker shown above every page.
type MarqueeMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text" gorm:"size:200;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true;index"`
	Order     int       `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (MarqueeMessage) TableName() string {
	return "marquee_messages"
}
