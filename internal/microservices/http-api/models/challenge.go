package models

// ReadingChallenge is the yearly "read N books" marathon.
type ReadingChallenge struct {
	ID       int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Year     int   `json:"year" gorm:"not null"`
	Goal     int   `json:"goal" gorm:"not null"`
	Current  int   `json:"current" gorm:"not null;default:0"`
	IsActive bool  `json:"is_active" gorm:"not null;default:true;index"`
}

func (ReadingChallenge) TableName() string {
	return "reading_challenges"
}

// ProgressPercentage is current/goal as a truncated percent, 0 when goal is 0.
func (c ReadingChallenge) ProgressPercentage() int {
	if c.Goal <= 0 {
		return 0
	}
	return c.Current * 100 / c.Goal
}
