package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDeliveryLog records one attempt to deliver an outbound
// notification. A logical notification may span several rows sharing a
// subscription_id with increasing attempt numbers. StatusCode and Success
// are nullable: a network-level failure has neither.
type NotificationDeliveryLog struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubscriptionID *uuid.UUID        `gorm:"column:subscription_id;type:uuid" json:"subscription_id,omitempty"`
	StatusCode     *int              `gorm:"column:status_code" json:"status_code,omitempty"`
	Success        *bool             `gorm:"column:success" json:"success,omitempty"`
	Attempt        int               `gorm:"column:attempt;not null" json:"attempt"`
	ErrorMessage   string            `gorm:"column:error_message" json:"error_message,omitempty"`
	RequestBody    datatypes.JSONMap `gorm:"column:request_body;type:jsonb;not null" json:"request_body"`
	ResponseBody   datatypes.JSONMap `gorm:"column:response_body;type:jsonb" json:"response_body,omitempty"`
	DispatchedAt   time.Time         `gorm:"column:dispatched_at;autoCreateTime" json:"dispatched_at"`
}

func (NotificationDeliveryLog) TableName() string {
	return "notification_delivery_logs"
}
