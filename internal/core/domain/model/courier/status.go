package courier

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Courier state machine violations.
var (
	// ErrAlreadyStarted is returned by StartWork while the courier is delivering.
	ErrAlreadyStarted = errors.New("courier cannot start working: work already started")
	// ErrNotAvailable is returned by InWork before the courier has started working.
	ErrNotAvailable = errors.New("courier cannot take an order: courier has not started working")
	// ErrAlreadyBusy is returned by InWork while the courier is delivering another order.
	ErrAlreadyBusy = errors.New("courier cannot take an order: courier is already busy")
	// ErrIncompleteDelivery is returned by StopWork while a delivery is in progress.
	ErrIncompleteDelivery = errors.New("courier cannot stop working: delivery is incomplete")
)

// Status is the availability of a courier.
//
// State transitions:
//
//	NotAvailable ──StartWork──> Ready ──InWork──> Busy
//	      ^                      │ ^               │
//	      └──────StopWork────────┘ └─CompleteOrder─┘
//
// StartWork is also accepted in Ready, and StopWork in NotAvailable.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusNotAvailable is the initial status: the courier is off shift.
	StatusNotAvailable

	// StatusReady means the courier is on shift and can take an order.
	StatusReady

	// StatusBusy means the courier is delivering an order.
	StatusBusy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		StatusNotAvailable: "NotAvailable",
		StatusReady:        "Ready",
		StatusBusy:         "Busy",
	}
}

// Validate checks that the status is one of NotAvailable, Ready or Busy.
func (s Status) Validate() error {
	if s != StatusNotAvailable && s != StatusReady && s != StatusBusy {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartWork returns Ready. It fails with ErrAlreadyStarted when s is Busy.
func (s Status) StartWork() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == StatusBusy {
		return 0, ErrAlreadyStarted
	}
	return StatusReady, nil
}

// InWork moves Ready to Busy.
func (s Status) InWork() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	switch s {
	case StatusNotAvailable:
		return 0, ErrNotAvailable
	case StatusBusy:
		return 0, ErrAlreadyBusy
	default:
		return StatusBusy, nil
	}
}

// CompleteOrder returns Ready from any status.
func (s Status) CompleteOrder() Status {
	return StatusReady
}

// StopWork returns NotAvailable. It fails with ErrIncompleteDelivery when s is Busy.
func (s Status) StopWork() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == StatusBusy {
		return 0, ErrIncompleteDelivery
	}
	return StatusNotAvailable, nil
}
