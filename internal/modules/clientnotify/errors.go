package clientnotify

import "errors"

var (
	ErrSettingNotFound  = errors.New("notification setting not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTargetRequired   = errors.New("either material_id or group_name is required")
	ErrInvalidFrequency = errors.New("invalid reminder frequency")
)
