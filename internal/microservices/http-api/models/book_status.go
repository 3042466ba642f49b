package models

import "time"

// Reading statuses a user can put a book in.
const (
	StatusReading   = "reading"
	StatusPlanned   = "planned"
	StatusRead      = "read"
	StatusAbandoned = "abandoned"
)

// StatusAll is the bookmark filter value meaning "no filter".
const StatusAll = "all"

var ValidStatuses = map[string]bool{
	StatusReading:   true,
	StatusPlanned:   true,
	StatusRead:      true,
	StatusAbandoned: true,
}

// UserBookStatus is a bookmark: at most one per (user, book).
type UserBookStatus struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_book" json:"user_id"`
	BookID  int64     `gorm:"not null;uniqueIndex:idx_user_book;index" json:"book_id"`
	Status  string    `gorm:"size:20;not null;default:'planned'" json:"status"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (UserBookStatus) TableName() string {
	return "user_book_statuses"
}
