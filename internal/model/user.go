package model

import "time"

// User — учётная запись. Пароль хранится только как bcrypt-хеш
// и никогда не сериализуется в ответах.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
