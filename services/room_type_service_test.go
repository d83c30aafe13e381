package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestCreateRoomType(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `room_types`").
		WithArgs("STD", "Standard", 85.0, false, true, false, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rt := models.RoomType{
		RoomTypeCode:  "STD",
		RoomTypeName:  "Standard",
		Price:         85.0,
		Bath:          true,
		MaximumGuests: 2,
	}
	require.NoError(t, svc.Create(&rt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoomTypeRejectsLowercaseCodeWithoutQuerying(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	rt := models.RoomType{RoomTypeCode: "std", RoomTypeName: "Standard", MaximumGuests: 2}
	err := svc.Create(&rt)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "room_type_code", verr.Field)
	assert.Contains(t, verr.Message, "uppercase")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The code is the primary key, so a second create surfaces as the driver's
// duplicate-key error rather than a pre-flight count.
func TestCreateRoomTypeDuplicateCode(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `room_types`").
		WithArgs("STD", "Standard", 85.0, false, false, false, 2).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'STD' for key 'PRIMARY'"})
	mock.ExpectRollback()

	rt := models.RoomType{RoomTypeCode: "STD", RoomTypeName: "Standard", Price: 85.0, MaximumGuests: 2}
	require.ErrorIs(t, svc.Create(&rt), ErrDuplicateRoomType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoomTypeKeepsCode(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `room_types`").
		WithArgs("STD", 1).
		WillReturnRows(sqlmock.NewRows([]string{"room_type_code", "room_type_name", "price", "maximum_guests"}).
			AddRow("STD", "Standard", 85.0, 2))
	mock.ExpectExec("UPDATE `room_types` SET").
		WithArgs("Standard Plus", 95.0, false, true, true, 2, "STD").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rt := models.RoomType{
		RoomTypeName:   "Standard Plus",
		Price:          95.0,
		Bath:           true,
		SeparateShower: true,
		MaximumGuests:  2,
	}
	require.NoError(t, svc.Update("STD", &rt))
	assert.Equal(t, "STD", rt.RoomTypeCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoomTypeUnknownCode(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `room_types`").
		WithArgs("ZZZ", 1).
		WillReturnRows(sqlmock.NewRows([]string{"room_type_code"}))
	mock.ExpectRollback()

	rt := models.RoomType{RoomTypeName: "Mystery", MaximumGuests: 1}
	require.ErrorIs(t, svc.Update("ZZZ", &rt), ErrRoomTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoomTypeNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `room_types`").
		WithArgs("ZZZ").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.ErrorIs(t, svc.Delete("ZZZ"), ErrRoomTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoomTypesOrderedByCode(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectQuery("SELECT .+ FROM `room_types` ORDER BY room_type_code ASC").
		WillReturnRows(sqlmock.NewRows([]string{"room_type_code", "room_type_name", "price", "maximum_guests"}).
			AddRow("DLX", "Deluxe", 140.0, 3).
			AddRow("STD", "Standard", 85.0, 2))

	types, err := svc.List()
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "DLX", types[0].RoomTypeCode)
	assert.Equal(t, "STD", types[1].RoomTypeCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
