package model

import (
	"time"

	"gorm.io/datatypes"
)

type HouseholdModel struct {
	HouseholdID            uint                        `json:"household_id" gorm:"column:household_id;primaryKey"`
	HouseholdNIK           string                      `json:"household_nik" gorm:"column:household_nik;size:16;uniqueIndex;not null"`
	HouseholdHeadName      string                      `json:"household_head_name" gorm:"column:household_head_name;not null"`
	HouseholdDistrict      string                      `json:"household_district" gorm:"column:household_district;not null"`
	HouseholdMemberCount   int                         `json:"household_member_count" gorm:"column:household_member_count;not null"`
	HouseholdHousingStatus string                      `json:"household_housing_status" gorm:"column:household_housing_status;not null"`
	HouseholdVulnerable    datatypes.JSONSlice[string] `json:"household_vulnerable_groups" gorm:"column:household_vulnerable_groups"`
	CreatedAt              time.Time                   `json:"created_at" gorm:"column:created_at"`
}

func (HouseholdModel) TableName() string {
	return "household"
}
