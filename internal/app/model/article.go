package model

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

type Article struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"size:64;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Published bool      `gorm:"default:true" json:"published"`
	Created   time.Time `gorm:"autoCreateTime" json:"created"`
	// CharacterCount is owned by the store: recomputed from Body on every
	// write, never accepted from callers.
	CharacterCount int `gorm:"not null" json:"character_count"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) BeforeSave(tx *gorm.DB) error {
	a.CharacterCount = utf8.RuneCountInString(a.Body)
	return nil
}
