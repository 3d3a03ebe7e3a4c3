package entity

type Submission struct {
	Base

	TaskID string `gorm:"uniqueIndex:idx_submissions_user_task"`
	Task   Task   `gorm:"foreignKey:TaskID"`

	UserID string `gorm:"uniqueIndex:idx_submissions_user_task"`
	User   User   `gorm:"foreignKey:UserID"`

	IsCorrect bool
	Score     int

	// Answer keeps the structured attempt payload for audit. It is never
	// updated after the row is created.
	Answer Map
}
