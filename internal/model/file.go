package model

import "time"

// File is one uploaded medical report document. The record is immutable after
// upload: the owning user and the retrieval URL never change.
type File struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Filename   string    `gorm:"size:256;not null" json:"filename"`
	FileURL    string    `gorm:"size:1024;not null" json:"file_url"`
	FileType   string    `gorm:"size:128" json:"file_type"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
