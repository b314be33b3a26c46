package dto

import (
	"testing"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/donations/campaigns/model"

	"github.com/stretchr/testify/assert"
)

func validCampaign() model.CampaignModel {
	m := CampaignSchema.Defaults()
	m.CampaignTitle = "Renovasi Atap Masjid"
	m.CampaignDescription = "Penggalangan dana untuk perbaikan atap yang bocor."
	m.CampaignGoalAmount = 50_000_000
	return m
}

func TestCampaignDefaultsActive(t *testing.T) {
	m := CampaignSchema.Defaults()
	assert.Equal(t, model.CampaignStatusActive, m.CampaignStatus)
}

func TestCampaignGoalAmountMustBePositive(t *testing.T) {
	m := validCampaign()
	m.CampaignGoalAmount = 0

	errs := collection.ValidateRecord(CampaignSchema, m)
	assert.Contains(t, errs["campaign_goal_amount"], "Goal amount must be greater than 0")

	m.CampaignGoalAmount = -100
	errs = collection.ValidateRecord(CampaignSchema, m)
	assert.Contains(t, errs["campaign_goal_amount"], "Goal amount must be greater than 0")
}

func TestCampaignValidationCollectsAllViolations(t *testing.T) {
	m := validCampaign()
	m.CampaignTitle = ""
	m.CampaignDescription = ""

	errs := collection.ValidateRecord(CampaignSchema, m)
	assert.Contains(t, errs["campaign_title"], "Title is required")
	assert.Contains(t, errs["campaign_description"], "Description is required")
}

func TestCampaignValidRecordPasses(t *testing.T) {
	errs := collection.ValidateRecord(CampaignSchema, validCampaign())
	assert.Empty(t, errs)
}

func TestCampaignProgressPercent(t *testing.T) {
	m := validCampaign()
	m.CampaignRaisedAmount = 12_500_000

	resp := ToCampaignResponse(&m)
	assert.Equal(t, 25, resp.CampaignProgress)
}
