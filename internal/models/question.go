package models

// Question.Category references Category.ID, but the link is not enforced at
// this layer: inserts with an unknown category id are accepted as-is.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}
