package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/donations/campaigns/model"

	"github.com/google/uuid"
)

var CampaignSchema = collection.Schema[model.CampaignModel]{
	Name: "campaign",
	GetID: func(m model.CampaignModel) string {
		if m.CampaignID == uuid.Nil {
			return ""
		}
		return m.CampaignID.String()
	},
	SetID: func(m *model.CampaignModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.CampaignID = u
		}
	},
	SearchText: func(m model.CampaignModel) []string {
		return []string{m.CampaignTitle, m.CampaignDescription}
	},
	Filters: map[string]func(model.CampaignModel) string{
		"status": func(m model.CampaignModel) string { return m.CampaignStatus },
	},
	Defaults: func() model.CampaignModel {
		return model.CampaignModel{
			CampaignStatus: model.CampaignStatusActive,
		}
	},
	Rules: []collection.Rule[model.CampaignModel]{
		collection.Required("campaign_title", func(m model.CampaignModel) string { return m.CampaignTitle }, "Title is required"),
		collection.MaxLen("campaign_title", 200, func(m model.CampaignModel) string { return m.CampaignTitle }, "Title must be less than 200 characters"),
		collection.Required("campaign_description", func(m model.CampaignModel) string { return m.CampaignDescription }, "Description is required"),
		collection.MinLen("campaign_description", 10, func(m model.CampaignModel) string { return m.CampaignDescription }, "Description must be at least 10 characters"),
		{Field: "campaign_goal_amount", Check: func(m model.CampaignModel) string {
			if m.CampaignGoalAmount <= 0 {
				return "Goal amount must be greater than 0"
			}
			return ""
		}},
		collection.OneOf("campaign_status", model.CampaignStatuses, func(m model.CampaignModel) string { return m.CampaignStatus }, "Status is not in the allowed set"),
	},
	Counters: []collection.Counter[model.CampaignModel]{
		{Name: "active", Match: func(m model.CampaignModel) bool { return m.CampaignStatus == model.CampaignStatusActive }},
		{Name: "closed", Match: func(m model.CampaignModel) bool { return m.CampaignStatus == model.CampaignStatusClosed }},
		{Name: "featured", Match: func(m model.CampaignModel) bool { return m.CampaignIsFeatured }},
	},
}
