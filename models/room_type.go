package models

// RoomType is a category of room: its identity is a short uppercase code
// ("STD", "DLX") that appears on rate sheets. The code is immutable once
// created; price, capacity and amenity flags may change.
type RoomType struct {
	RoomTypeCode string `gorm:"primaryKey;size:3;column:room_type_code" json:"room_type_code" validate:"required,roomtypecode"`

	RoomTypeName   string  `gorm:"size:25;column:room_type_name" json:"room_type_name" validate:"required,max=25"`
	Price          float64 `gorm:"type:decimal(6,2)" json:"price" validate:"gte=0"`
	Deluxe         bool    `json:"deluxe"`
	Bath           bool    `json:"bath"`
	SeparateShower bool    `gorm:"column:separate_shower" json:"separate_shower"`
	MaximumGuests  int     `gorm:"column:maximum_guests" json:"maximum_guests" validate:"gte=1"`
}

func (rt *RoomType) Validate() error {
	return checkStruct(rt)
}
