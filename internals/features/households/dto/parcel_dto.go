package dto

import (
	"time"

	"sigapbanjar_backend/internals/features/households/model"
)

type ParcelCreateRequest struct {
	ParcelOwnerNIK    string   `json:"parcel_owner_nik" form:"parcel_owner_nik" validate:"required,len=16,numeric"`
	ParcelDistrict    string   `json:"parcel_district" form:"parcel_district" validate:"required"`
	ParcelAreaHa      float64  `json:"parcel_area_ha" form:"parcel_area_ha" validate:"required,gt=0"`
	ParcelCropAgeDays int      `json:"parcel_crop_age_days" form:"parcel_crop_age_days" validate:"required,gt=0"`
	ParcelLatitude    *float64 `json:"parcel_latitude,omitempty" form:"parcel_latitude" validate:"omitempty,min=-90,max=90"`
	ParcelLongitude   *float64 `json:"parcel_longitude,omitempty" form:"parcel_longitude" validate:"omitempty,min=-180,max=180"`
}

type ParcelResponse struct {
	ParcelID            uint      `json:"parcel_id"`
	ParcelOwnerNIK      string    `json:"parcel_owner_nik"`
	ParcelDistrict      string    `json:"parcel_district"`
	ParcelAreaHa        float64   `json:"parcel_area_ha"`
	ParcelCropAgeDays   int       `json:"parcel_crop_age_days"`
	ParcelEstimatedLoss int64     `json:"parcel_estimated_loss"`
	ParcelLatitude      *float64  `json:"parcel_latitude,omitempty"`
	ParcelLongitude     *float64  `json:"parcel_longitude,omitempty"`
	ParcelPhotoURL      string    `json:"parcel_photo_url"`
	CreatedAt           time.Time `json:"created_at"`
}

type parcelPhotoResolver func(*string) string

func ToParcelResponse(m model.AgriculturalParcelModel, photoURL parcelPhotoResolver) ParcelResponse {
	return ParcelResponse{
		ParcelID:            m.ParcelID,
		ParcelOwnerNIK:      m.ParcelOwnerNIK,
		ParcelDistrict:      m.ParcelDistrict,
		ParcelAreaHa:        m.ParcelAreaHa,
		ParcelCropAgeDays:   m.ParcelCropAgeDays,
		ParcelEstimatedLoss: m.ParcelEstimatedLoss,
		ParcelLatitude:      m.ParcelLatitude,
		ParcelLongitude:     m.ParcelLongitude,
		ParcelPhotoURL:      photoURL(m.ParcelPhotoPath),
		CreatedAt:           m.CreatedAt,
	}
}
