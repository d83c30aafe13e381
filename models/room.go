package models

// Room is a physical hotel room. Its identity is the room number itself,
// not a surrogate id. Deleting a room type clears the reference here rather
// than deleting the room.
type Room struct {
	RoomNumber int `gorm:"primaryKey;autoIncrement:false;column:room_number" json:"room_number" validate:"required,gte=1,lte=9999"`

	RoomTypeCode *string   `gorm:"size:3;column:room_type_code;index" json:"room_type_code"`
	RoomType     *RoomType `gorm:"foreignKey:RoomTypeCode;references:RoomTypeCode;constraint:OnDelete:SET NULL" json:"room_type,omitempty"`
}

func (r *Room) Validate() error {
	return checkStruct(r)
}
