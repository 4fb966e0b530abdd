package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ImagePostModel: record penyimpanan murni untuk pengumuman bergambar.
type ImagePostModel struct {
	ImagePostID       uuid.UUID      `gorm:"column:image_post_id;primaryKey;type:uuid" json:"image_post_id"`
	ImagePostDesc     string         `gorm:"column:image_post_desc;type:text" json:"image_post_desc"`
	ImagePostForClass string         `gorm:"column:image_post_for_class;type:varchar(20)" json:"image_post_for_class,omitempty"`
	ImagePostURLs     pq.StringArray `gorm:"column:image_post_urls;type:text[]" json:"image_post_urls"`

	ImagePostCreatedAt time.Time `gorm:"column:image_post_created_at;autoCreateTime" json:"image_post_created_at"`
}

func (ImagePostModel) TableName() string {
	return "image_posts"
}

func (m *ImagePostModel) BeforeCreate(tx *gorm.DB) error {
	if m.ImagePostID == uuid.Nil {
		m.ImagePostID = uuid.New()
	}
	return nil
}
