package commands

import (
	"fmt"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/shared"
)

var (
	ErrValidation          = errs.New("validation failed")
	ErrInvalidSlot         = errs.New("slot is not offered")
	ErrOrderNotFound       = errs.New("order not found")
	ErrOrderPickedUp       = errs.New("order already picked up")
	ErrAppointmentExists   = errs.New("order already has an appointment")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrSlotUnavailable     = errs.New("slot no longer available")
	ErrSlotLocked          = shared.ErrSlotLocked
	ErrStoreConflict       = errs.New("appointments file is locked")
	ErrStoreFailure        = errs.New("appointment store operation failed")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrTokenGeneration     = errs.New("token generation failed")
)

// ExistingAppointmentError carries the appointment that blocked a new booking.
type ExistingAppointmentError struct {
	Appointment appointment.Appointment
}

func (e *ExistingAppointmentError) Error() string {
	return fmt.Sprintf("order %s already booked for %s", e.Appointment.OrderNumber, e.Appointment.Display())
}

func (e *ExistingAppointmentError) Is(target error) bool {
	return target == ErrAppointmentExists
}

// storeErr marks repository failures so handlers can map them without knowing infra kinds.
func storeErr(err error) error {
	if infra.IsKind(err, infra.KindWriteConflict) {
		return errs.Mark(err, ErrStoreConflict)
	}
	return errs.Mark(err, ErrStoreFailure)
}
