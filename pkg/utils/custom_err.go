package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidStartDate    = errors.New("invalid trip start date")
	ErrInvalidEndDate      = errors.New("invalid trip end date")
	ErrActivityOutsideTrip = errors.New("activity date outside trip interval")
	ErrDatabaseError       = errors.New("database error")
	ErrMailDelivery        = errors.New("mail delivery failed")
)
