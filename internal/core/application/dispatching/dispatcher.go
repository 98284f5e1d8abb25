package dispatching

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when none of the candidates can take the order:
// the list is empty, or every courier is off shift, busy or too small for the weight.
var ErrCourierNotFound = errors.New("courier not found")

// Dispatcher selects the courier with the shortest time to the order's location
// among the Ready couriers whose transport can carry the order, then assigns
// the order to it.
//
// Example usage:
//
//	dispatcher := dispatching.NewDispatcher()
//	chosen, err := dispatcher.Dispatch(o, readyCouriers)
//	if errors.Is(err, dispatching.ErrCourierNotFound) {
//	    // No courier can take this order right now
//	    return
//	}
//	// o is Assigned, chosen is Busy; persist both in one unit of work
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch finds the best courier for o and assigns the order to it.
// Ties go to the courier listed first.
func (d Dispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(o, couriers)
	if err != nil {
		return nil, err
	}

	if err := o.AssignToCourier(best); err != nil {
		return nil, err
	}

	return best, nil
}

func (d Dispatcher) findBestCourier(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		bestCourier *courier.Courier
		bestTime    = math.MaxFloat64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.Status() != courier.StatusReady {
			continue
		}

		fits, err := c.CanCarry(o.Weight())
		if err != nil {
			return nil, err
		}
		if !fits {
			continue
		}

		tm, err := c.CalculateTimeToLocation(o.Location())
		if err != nil {
			return nil, err
		}

		if tm < bestTime {
			bestTime = tm
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
