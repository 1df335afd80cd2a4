package model

import "time"

type AgriculturalParcelModel struct {
	ParcelID            uint     `json:"parcel_id" gorm:"column:parcel_id;primaryKey"`
	ParcelOwnerNIK      string   `json:"parcel_owner_nik" gorm:"column:parcel_owner_nik;size:16;index;not null"`
	ParcelDistrict      string   `json:"parcel_district" gorm:"column:parcel_district;not null"`
	ParcelAreaHa        float64  `json:"parcel_area_ha" gorm:"column:parcel_area_ha;not null"`
	ParcelCropAgeDays   int      `json:"parcel_crop_age_days" gorm:"column:parcel_crop_age_days;not null"`
	ParcelEstimatedLoss int64    `json:"parcel_estimated_loss" gorm:"column:parcel_estimated_loss;not null;default:0"`
	ParcelLatitude      *float64 `json:"parcel_latitude,omitempty" gorm:"column:parcel_latitude"`
	ParcelLongitude     *float64 `json:"parcel_longitude,omitempty" gorm:"column:parcel_longitude"`
	ParcelPhotoPath     *string  `json:"parcel_photo_path,omitempty" gorm:"column:parcel_photo_path"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
}

func (AgriculturalParcelModel) TableName() string {
	return "agricultural_parcel"
}
