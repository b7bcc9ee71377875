package clientnotify

type CreateSettingRequest struct {
	ProjectID      int64  `json:"project_id" binding:"required"`
	MaterialID     *int64 `json:"material_id"`
	GroupName      string `json:"group_name"`
	FrequencyValue int    `json:"frequency_value" binding:"required"`
	FrequencyUnit  string `json:"frequency_unit" binding:"required"`
	NotifyViaEmail bool   `json:"notify_via_email"`
}

type UpdateSettingRequest struct {
	MaterialID     *int64  `json:"material_id"`
	GroupName      *string `json:"group_name"`
	FrequencyValue *int    `json:"frequency_value"`
	FrequencyUnit  *string `json:"frequency_unit"`
	NotifyViaEmail *bool   `json:"notify_via_email"`
}
