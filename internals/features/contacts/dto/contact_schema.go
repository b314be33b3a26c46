package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/contacts/model"

	"github.com/google/uuid"
)

var ContactSchema = collection.Schema[model.ContactModel]{
	Name: "contact",
	GetID: func(m model.ContactModel) string {
		if m.ContactID == uuid.Nil {
			return ""
		}
		return m.ContactID.String()
	},
	SetID: func(m *model.ContactModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.ContactID = u
		}
	},
	SearchText: func(m model.ContactModel) []string {
		return []string{m.ContactName, m.ContactRole, m.ContactEmail}
	},
	Filters: map[string]func(model.ContactModel) string{
		"role": func(m model.ContactModel) string { return m.ContactRole },
	},
	Defaults: func() model.ContactModel {
		return model.ContactModel{
			ContactRole:     "Staff",
			ContactIsPublic: true,
		}
	},
	Rules: []collection.Rule[model.ContactModel]{
		collection.Required("contact_name", func(m model.ContactModel) string { return m.ContactName }, "Name is required"),
		collection.MaxLen("contact_name", 100, func(m model.ContactModel) string { return m.ContactName }, "Name must be less than 100 characters"),
		collection.Required("contact_email", func(m model.ContactModel) string { return m.ContactEmail }, "Email is required"),
		collection.Email("contact_email", func(m model.ContactModel) string { return m.ContactEmail }, "Email format is invalid"),
		collection.OneOf("contact_role", model.ContactRoles, func(m model.ContactModel) string { return m.ContactRole }, "Role is not in the allowed set"),
	},
	Counters: []collection.Counter[model.ContactModel]{
		{Name: "public", Match: func(m model.ContactModel) bool { return m.ContactIsPublic }},
		{Name: "with_phone", Match: func(m model.ContactModel) bool { return m.ContactPhone != "" }},
	},
}
