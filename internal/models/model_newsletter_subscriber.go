package models

import "time"

type NewsletterSubscriber struct {
	ID             string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email          string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Active         bool       `gorm:"column:active;not null;default:true" json:"active"`
	SubscribedAt   time.Time  `gorm:"column:subscribed_at;not null" json:"subscribed_at"`
	UnsubscribedAt *time.Time `gorm:"column:unsubscribed_at;default:null" json:"unsubscribed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscriber" }
