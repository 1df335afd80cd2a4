package dto

import (
	"time"

	"sigapbanjar_backend/internals/features/households/model"
)

type HouseholdCreateRequest struct {
	HouseholdNIK           string   `json:"household_nik" form:"household_nik" validate:"required,len=16,numeric"`
	HouseholdHeadName      string   `json:"household_head_name" form:"household_head_name" validate:"required,max=120"`
	HouseholdDistrict      string   `json:"household_district" form:"household_district" validate:"required"`
	HouseholdMemberCount   int      `json:"household_member_count" form:"household_member_count" validate:"required,min=1"`
	HouseholdHousingStatus string   `json:"household_housing_status" form:"household_housing_status" validate:"required"`
	HouseholdVulnerable    []string `json:"household_vulnerable_groups" form:"household_vulnerable_groups" validate:"omitempty"`
}

type HouseholdResponse struct {
	HouseholdID            uint      `json:"household_id"`
	HouseholdNIK           string    `json:"household_nik"`
	HouseholdHeadName      string    `json:"household_head_name"`
	HouseholdDistrict      string    `json:"household_district"`
	HouseholdMemberCount   int       `json:"household_member_count"`
	HouseholdHousingStatus string    `json:"household_housing_status"`
	HouseholdVulnerable    []string  `json:"household_vulnerable_groups"`
	CreatedAt              time.Time `json:"created_at"`
}

func ToHouseholdResponse(m model.HouseholdModel) HouseholdResponse {
	return HouseholdResponse{
		HouseholdID:            m.HouseholdID,
		HouseholdNIK:           m.HouseholdNIK,
		HouseholdHeadName:      m.HouseholdHeadName,
		HouseholdDistrict:      m.HouseholdDistrict,
		HouseholdMemberCount:   m.HouseholdMemberCount,
		HouseholdHousingStatus: m.HouseholdHousingStatus,
		HouseholdVulnerable:    m.HouseholdVulnerable,
		CreatedAt:              m.CreatedAt,
	}
}
