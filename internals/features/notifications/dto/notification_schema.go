package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/notifications/model"

	"github.com/google/uuid"
)

var NotificationSchema = collection.Schema[model.NotificationModel]{
	Name: "notification",
	GetID: func(m model.NotificationModel) string {
		if m.NotificationID == uuid.Nil {
			return ""
		}
		return m.NotificationID.String()
	},
	SetID: func(m *model.NotificationModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.NotificationID = u
		}
	},
	SearchText: func(m model.NotificationModel) []string {
		return []string{m.NotificationTitle, m.NotificationDescription}
	},
	Filters: map[string]func(model.NotificationModel) string{
		"type":     func(m model.NotificationModel) string { return m.NotificationType },
		"priority": func(m model.NotificationModel) string { return m.NotificationPriority },
	},
	Defaults: func() model.NotificationModel {
		return model.NotificationModel{
			NotificationType:     "Info",
			NotificationPriority: model.NotificationPriorityNormal,
		}
	},
	SeedLists: func(m model.NotificationModel) map[string][]string {
		return map[string][]string{"tags": m.NotificationTags}
	},
	CommitLists: func(m *model.NotificationModel, lists map[string][]string) {
		m.NotificationTags = append([]string(nil), lists["tags"]...)
	},
	Rules: []collection.Rule[model.NotificationModel]{
		collection.Required("notification_title", func(m model.NotificationModel) string { return m.NotificationTitle }, "Title is required"),
		collection.MaxLen("notification_title", 200, func(m model.NotificationModel) string { return m.NotificationTitle }, "Title must be less than 200 characters"),
		collection.Required("notification_description", func(m model.NotificationModel) string { return m.NotificationDescription }, "Description is required"),
		collection.MinLen("notification_description", 10, func(m model.NotificationModel) string { return m.NotificationDescription }, "Description must be at least 10 characters"),
		collection.OneOf("notification_type", model.NotificationTypes, func(m model.NotificationModel) string { return m.NotificationType }, "Type is not in the allowed set"),
		collection.OneOf("notification_priority", model.NotificationPriorities, func(m model.NotificationModel) string { return m.NotificationPriority }, "Priority is not in the allowed set"),
	},
	Counters: []collection.Counter[model.NotificationModel]{
		{Name: "public", Match: func(m model.NotificationModel) bool { return m.NotificationIsPublic }},
		{Name: "high_priority", Match: func(m model.NotificationModel) bool { return m.NotificationPriority == model.NotificationPriorityHigh }},
		{Name: "urgent", Match: func(m model.NotificationModel) bool { return m.NotificationType == "Urgent" }},
	},
}
