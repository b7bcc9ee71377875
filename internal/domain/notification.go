package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

type Notification struct {
	ID                int64            `json:"id"`
	UserID            int64            `json:"user_id"`
	Title             string           `json:"title"`
	Message           string           `json:"message,omitempty"`
	Type              NotificationType `json:"type"`
	IsRead            bool             `json:"is_read"`
	RelatedEntityType string           `json:"related_entity_type,omitempty"`
	RelatedEntityID   int64            `json:"related_entity_id,omitempty"`
	ReadAt            *time.Time       `json:"read_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

type FrequencyUnit string

const (
	FrequencyDay   FrequencyUnit = "day"
	FrequencyWeek  FrequencyUnit = "week"
	FrequencyMonth FrequencyUnit = "month"
)

func ParseFrequencyUnit(s string) (FrequencyUnit, bool) {
	switch FrequencyUnit(s) {
	case FrequencyDay, FrequencyWeek, FrequencyMonth:
		return FrequencyUnit(s), true
	}
	return "", false
}

// NotificationSetting configures periodic client reminders for a material
// or a material group. At least one of MaterialID / GroupName is required.
type NotificationSetting struct {
	ID             int64         `json:"id"`
	CompanyID      int64         `json:"company_id"`
	ProjectID      int64         `json:"project_id"`
	MaterialID     *int64        `json:"material_id,omitempty"`
	GroupName      string        `json:"group_name,omitempty"`
	FrequencyValue int           `json:"frequency_value"`
	FrequencyUnit  FrequencyUnit `json:"frequency_unit"`
	NotifyViaEmail bool          `json:"notify_via_email"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
