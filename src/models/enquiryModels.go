package models

import "time"

// EnquiryModel is a customer enquiry submitted through the storefront contact form.
// Records are immutable after creation; the only write operations are create and delete.
type EnquiryModel struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Email string `json:"email" gorm:"column:email;type:varchar(255);not null"`
	// Phone is stored as a bigint so a 10-digit number never overflows; it is
	// rendered as a string in every DTO because its width exceeds the safe
	// integer range of JSON consumers.
	Phone     int64     `json:"phone" gorm:"column:phone;type:bigint;not null"`
	Query     string    `json:"query" gorm:"column:query;type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}
