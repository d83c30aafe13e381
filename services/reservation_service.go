package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"frontdesk-backend/events"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// referenceAttempts bounds the retry loop on reference code collisions.
const referenceAttempts = 3

// ReservationInput carries the caller-supplied fields for creating or
// updating a reservation. EndDate is deliberately absent: it is always
// recomputed from StartOfStay and LengthOfStay, never trusted from the
// caller. A nil Price means "nightly room-type price times nights".
type ReservationInput struct {
	GuestID        *uint
	RoomNumber     *int
	StartOfStay    time.Time
	LengthOfStay   int
	NumberOfGuests int
	Price          *float64
	AmountPaid     float64
	StatusCode     string
	Notes          string
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Create books a stay. The overlap check and the insert run in one
// transaction holding the room row lock, so two concurrent bookings for the
// same room serialize and the later one sees the earlier insert.
func (s *ReservationService) Create(input ReservationInput) (*models.Reservation, error) {
	if err := checkStayInput(input); err != nil {
		return nil, err
	}
	if input.RoomNumber == nil {
		return nil, models.NewValidationError("room_number", "Room is required")
	}
	if input.GuestID == nil {
		return nil, models.NewValidationError("guest_id", "Guest is required")
	}

	status := input.StatusCode
	if status == "" {
		status = models.StatusReserved
	}
	if !models.ValidStatusCode(status) {
		return nil, models.NewValidationError("status_code", "Status must be one of RE, IN or OT")
	}

	res := &models.Reservation{
		ReferenceCode:  utils.NewReferenceCode(),
		GuestID:        input.GuestID,
		RoomNumber:     input.RoomNumber,
		ReservedAt:     time.Now().UTC(),
		AmountPaid:     input.AmountPaid,
		NumberOfGuests: input.NumberOfGuests,
		StartOfStay:    input.StartOfStay,
		LengthOfStay:   input.LengthOfStay,
		StatusCode:     status,
		Notes:          strings.TrimSpace(input.Notes),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.applyRoomRules(tx, res, input.Price, 0); err != nil {
			return err
		}
		res.RecomputeEndDate()
		if err := res.Validate(); err != nil {
			return err
		}
		if err := s.insertWithReference(tx, res); err != nil {
			return err
		}
		return appendEvent(tx, res, models.EventReservationCreated)
	})
	if txErr != nil {
		return nil, txErr
	}

	created, err := s.GetByID(res.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reservation %d: %w", res.ReservationID, err)
	}
	s.publish(created, models.EventReservationCreated)
	return created, nil
}

// Update replaces a reservation's details. The overlap check re-runs with
// the reservation's own id excluded so a stay never conflicts with itself.
// Clearing the room is allowed; a roomless reservation skips the overlap
// check entirely.
func (s *ReservationService) Update(id uint, input ReservationInput) (*models.Reservation, error) {
	if err := checkStayInput(input); err != nil {
		return nil, err
	}

	var res models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to find reservation %d: %w", id, err)
		}

		status := input.StatusCode
		if status == "" {
			status = res.StatusCode
		}
		if !models.ValidStatusCode(status) {
			return models.NewValidationError("status_code", "Status must be one of RE, IN or OT")
		}
		if !models.CanTransition(res.StatusCode, status) {
			return ErrInvalidStatusChange
		}

		res.GuestID = input.GuestID
		res.RoomNumber = input.RoomNumber
		res.NumberOfGuests = input.NumberOfGuests
		res.StartOfStay = input.StartOfStay
		res.LengthOfStay = input.LengthOfStay
		res.AmountPaid = input.AmountPaid
		res.StatusCode = status
		res.Notes = strings.TrimSpace(input.Notes)

		if err := s.applyRoomRules(tx, &res, input.Price, id); err != nil {
			return err
		}
		res.RecomputeEndDate()
		if err := res.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&res).Error; err != nil {
			if isForeignKeyError(err) {
				return ErrGuestNotFound
			}
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}
		return appendEvent(tx, &res, models.EventReservationUpdated)
	})
	if txErr != nil {
		return nil, txErr
	}

	updated, err := s.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reservation %d: %w", id, err)
	}
	s.publish(updated, models.EventReservationUpdated)
	return updated, nil
}

// Delete cancels a reservation from any status. The audit row outlives the
// reservation, so the cancellation is recorded after the delete in the same
// transaction.
func (s *ReservationService) Delete(id uint) error {
	var res models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Guest").First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to find reservation %d: %w", id, err)
		}
		if err := tx.Delete(&models.Reservation{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}
		return appendEvent(tx, &res, models.EventReservationCancelled)
	})
	if txErr != nil {
		return txErr
	}
	s.publish(&res, models.EventReservationCancelled)
	return nil
}

// CheckIn moves a Reserved stay to Checked-In. The row lock keeps two desks
// from checking the same reservation in at once.
func (s *ReservationService) CheckIn(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusCheckedIn, models.EventReservationCheckedIn)
}

// CheckOut moves a stay to Checked-Out. Reserved stays may check out
// directly: a no-show billed for the first night goes straight to OT.
func (s *ReservationService) CheckOut(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusCheckedOut, models.EventReservationCheckedOut)
}

func (s *ReservationService) transition(id uint, target, eventType string) (*models.Reservation, error) {
	var res models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to find reservation %d: %w", id, err)
		}
		switch {
		case res.StatusCode == target && target == models.StatusCheckedIn:
			return ErrAlreadyCheckedIn
		case res.StatusCode == target && target == models.StatusCheckedOut:
			return ErrAlreadyCheckedOut
		case !models.CanTransition(res.StatusCode, target):
			return ErrInvalidStatusChange
		}
		if err := tx.Model(&res).Update("status_code", target).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}
		res.StatusCode = target
		return appendEvent(tx, &res, eventType)
	})
	if txErr != nil {
		return nil, txErr
	}

	reloaded, err := s.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reservation %d: %w", id, err)
	}
	s.publish(reloaded, eventType)
	return reloaded, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		First(&res, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to find reservation %d: %w", id, err)
	}
	return &res, nil
}

// GetByReference finds a reservation by the code the guest quotes at the
// desk. Lookup is case-insensitive and tolerates surrounding whitespace.
func (s *ReservationService) GetByReference(code string) (*models.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrReservationNotFound
	}
	var res models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		First(&res, "reference_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to find reservation %s: %w", code, err)
	}
	return &res, nil
}

// List returns reservations whose stay touches the criteria window, soonest
// first.
func (s *ReservationService) List(criteria ReservationSearch) ([]models.Reservation, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	q := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		Order("start_of_stay ASC, reservation_id ASC")
	if !criteria.From.IsZero() {
		q = q.Where("end_date >= ?", criteria.From)
	}
	if !criteria.To.IsZero() {
		q = q.Where("start_of_stay <= ?", criteria.To)
	}
	if criteria.GuestLastName != "" {
		q = q.Joins("LEFT JOIN guests ON guests.guest_id = reservations.guest_id").
			Where("guests.last_name LIKE ?", "%"+criteria.GuestLastName+"%")
	}
	if criteria.RoomNumber != 0 {
		q = q.Where("reservations.room_number = ?", criteria.RoomNumber)
	}
	if criteria.StatusCode != "" {
		q = q.Where("status_code = ?", criteria.StatusCode)
	}

	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// ForRoom returns a room's reservations, optionally narrowed to the given
// status codes, earliest stay first.
func (s *ReservationService) ForRoom(roomNumber int, statusCodes ...string) ([]models.Reservation, error) {
	q := s.DB.Where("room_number = ?", roomNumber).Order("start_of_stay ASC")
	if len(statusCodes) > 0 {
		q = q.Where("status_code IN ?", statusCodes)
	}
	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations for room %d: %w", roomNumber, err)
	}
	return reservations, nil
}

// Events returns the reservation's audit trail, oldest first.
func (s *ReservationService) Events(id uint) ([]models.ReservationEvent, error) {
	var count int64
	if err := s.DB.Model(&models.Reservation{}).Where("reservation_id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to find reservation %d: %w", id, err)
	}
	if count == 0 {
		return nil, ErrReservationNotFound
	}
	var evts []models.ReservationEvent
	err := s.DB.
		Where("reservation_id = ?", id).
		Order("created_at ASC, id ASC").
		Find(&evts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events for reservation %d: %w", id, err)
	}
	return evts, nil
}

// CheckOverlap reports whether the proposed stay collides with an existing
// reservation for the room. excludeID skips the reservation being edited;
// pass 0 when creating. This is the advisory form of the check; the binding
// one runs inside the booking transaction under the room lock.
func (s *ReservationService) CheckOverlap(roomNumber int, startOfStay time.Time, lengthOfStay int, excludeID uint) (bool, error) {
	if lengthOfStay < 1 {
		return false, models.NewValidationError("length_of_stay", "Length of stay must be at least 1 night")
	}
	return s.hasOverlap(s.DB, roomNumber, startOfStay, lengthOfStay, excludeID)
}

// applyRoomRules locks the room row, resolves the price, and runs the
// overlap and capacity checks. Must be called inside an open transaction. A
// nil room skips every room-bound rule; the caller-supplied price is then
// the only price source.
func (s *ReservationService) applyRoomRules(tx *gorm.DB, res *models.Reservation, price *float64, excludeID uint) error {
	if res.RoomNumber == nil {
		if price != nil {
			res.Price = *price
		}
		return nil
	}

	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, "room_number = ?", *res.RoomNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to lock room %d: %w", *res.RoomNumber, err)
	}

	var roomType *models.RoomType
	if room.RoomTypeCode != nil {
		var rt models.RoomType
		if err := tx.First(&rt, "room_type_code = ?", *room.RoomTypeCode).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load room type %s: %w", *room.RoomTypeCode, err)
			}
		} else {
			roomType = &rt
		}
	}

	switch {
	case price != nil:
		res.Price = *price
	case roomType != nil:
		res.Price = roomType.Price * float64(res.LengthOfStay)
	}

	overlapping, err := s.hasOverlap(tx, *res.RoomNumber, res.StartOfStay, res.LengthOfStay, excludeID)
	if err != nil {
		return err
	}
	if overlapping {
		return ErrRoomAlreadyBooked
	}

	if roomType != nil && res.NumberOfGuests > roomType.MaximumGuests {
		return models.NewValidationError("number_of_guests",
			fmt.Sprintf("Number of guests (%d) exceeds room capacity (%d)", res.NumberOfGuests, roomType.MaximumGuests))
	}
	return nil
}

func (s *ReservationService) hasOverlap(db *gorm.DB, roomNumber int, startOfStay time.Time, lengthOfStay int, excludeID uint) (bool, error) {
	endDate := models.ComputeEndDate(startOfStay, lengthOfStay)
	q := db.Model(&models.Reservation{}).
		Where("room_number = ? AND start_of_stay < ? AND end_date > ?", roomNumber, endDate, startOfStay)
	if excludeID != 0 {
		q = q.Where("reservation_id <> ?", excludeID)
	}
	var conflicts int64
	if err := q.Count(&conflicts).Error; err != nil {
		return false, fmt.Errorf("failed to check for overlapping reservations: %w", err)
	}
	return conflicts > 0, nil
}

// insertWithReference creates the row, regenerating the reference code on
// the rare duplicate collision.
func (s *ReservationService) insertWithReference(tx *gorm.DB, res *models.Reservation) error {
	for attempt := 1; ; attempt++ {
		err := tx.Create(res).Error
		if err == nil {
			return nil
		}
		if isDuplicateKeyError(err) && attempt < referenceAttempts {
			log.Printf("reservation reference %s collided, regenerating (attempt %d)", res.ReferenceCode, attempt)
			res.ReferenceCode = utils.NewReferenceCode()
			continue
		}
		if isForeignKeyError(err) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}
}

// checkStayInput rejects unusable stay fields before any query runs; a
// zero-night request never reaches the overlap check.
func checkStayInput(input ReservationInput) error {
	if input.StartOfStay.IsZero() {
		return models.NewValidationError("start_of_stay", "Start of stay is required")
	}
	if input.LengthOfStay < 1 {
		return models.NewValidationError("length_of_stay", "Length of stay must be at least 1 night")
	}
	return nil
}

func appendEvent(tx *gorm.DB, res *models.Reservation, eventType string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"reference_code": res.ReferenceCode,
		"room_number":    res.RoomNumber,
		"guest_id":       res.GuestID,
		"start_of_stay":  res.StartOfStay.Format(models.StayDateLayout),
		"end_date":       res.EndDate.Format(models.StayDateLayout),
		"status_code":    res.StatusCode,
		"price":          res.Price,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	evt := models.ReservationEvent{
		ReservationID: res.ReservationID,
		EventType:     eventType,
		Payload:       datatypes.JSON(payload),
	}
	if err := tx.Create(&evt).Error; err != nil {
		return fmt.Errorf("failed to record %s event: %w", eventType, err)
	}
	return nil
}

// publish mirrors the event to the broker after commit. Failures only log;
// the booking itself already stands.
func (s *ReservationService) publish(res *models.Reservation, eventType string) {
	msg := events.ReservationMessage{
		EventType:     eventType,
		ReservationID: res.ReservationID,
		ReferenceCode: res.ReferenceCode,
		RoomNumber:    res.RoomNumber,
		StartOfStay:   res.StartOfStay.Format(models.StayDateLayout),
		EndDate:       res.EndDate.Format(models.StayDateLayout),
		StatusCode:    res.StatusCode,
		Price:         res.Price,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if res.Guest != nil {
		msg.GuestName = res.Guest.DisplayName()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = events.PublishReservationEvent(ctx, msg)
}
