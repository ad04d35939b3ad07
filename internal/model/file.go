package model

import "time"

// Типы записей. folder не имеет содержимого, image дополнительно
// обрабатывается воркером миниатюр.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// ThumbnailSizes — фиксированные ширины производных вариантов image.
// Воркер пишет их по пути <localPath>_<width>, выдача читает оттуда же.
var ThumbnailSizes = []int{500, 250, 100}

// ValidType проверяет, что тип записи один из трёх допустимых.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// File — запись о файле или папке пользователя.
// ParentID == nil означает корень. LocalPath задан только для file/image
// и указывает на блоб на диске; наружу он не отдаётся.
type File struct {
	ID       string  `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string  `gorm:"type:uuid;not null;index" json:"userId"`
	Name     string  `gorm:"not null" json:"name"`
	Type     string  `gorm:"not null" json:"type"`
	ParentID *string `gorm:"type:uuid;index" json:"parentId"`
	IsPublic bool    `gorm:"not null;default:false" json:"isPublic"`

	LocalPath string `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
