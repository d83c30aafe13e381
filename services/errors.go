package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP status codes; everything else surfaces as a 500.
var (
	ErrGuestNotFound       = errors.New("guest_not_found")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrRoomTypeNotFound    = errors.New("room_type_not_found")
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrStaffNotFound       = errors.New("staff_not_found")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrRoomAlreadyBooked   = errors.New("room_already_booked")
	ErrAlreadyCheckedIn    = errors.New("already_checked_in")
	ErrAlreadyCheckedOut   = errors.New("already_checked_out")
	ErrInvalidStatusChange = errors.New("invalid_status_change")
	ErrDuplicateRoom       = errors.New("room_already_exists")
	ErrDuplicateRoomType   = errors.New("room_type_already_exists")
)

// isDuplicateKeyError reports whether err is a MySQL duplicate entry error
// (1062). Falls back to message matching for drivers that do not expose the
// error number.
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}

// isForeignKeyError reports whether err is a MySQL foreign key violation
// (1452), raised when a referenced guest or room does not exist.
func isForeignKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1452
	}
	return err != nil && strings.Contains(err.Error(), "foreign key constraint fails")
}
