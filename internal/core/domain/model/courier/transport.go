package courier

import (
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Transport is the vehicle profile of a courier. The catalog is closed:
// each transport has a fixed speed (grid cells per movement step) and a
// fixed carrying capacity. Transports compare by value.
type Transport int

const (
	// TransportUnknown represents an invalid or undefined transport.
	TransportUnknown Transport = iota
	// Pedestrian moves one cell per step and carries up to 1 kg.
	Pedestrian
	// Bicycle moves two cells per step and carries up to 4 kg.
	Bicycle
	// Scooter moves three cells per step and carries up to 6 kg.
	Scooter
	// Car moves four cells per step and carries up to 8 kg.
	Car
)

type transportProfile struct {
	name     string
	speed    int
	capacity int
}

func getTransportProfiles() map[Transport]transportProfile {
	//nolint:exhaustive // TransportUnknown is intentionally excluded as it's invalid
	return map[Transport]transportProfile{
		Pedestrian: {name: "pedestrian", speed: 1, capacity: 1},
		Bicycle:    {name: "bicycle", speed: 2, capacity: 4},
		Scooter:    {name: "scooter", speed: 3, capacity: 6},
		Car:        {name: "car", speed: 4, capacity: 8},
	}
}

// Transports returns the whole catalog ordered by speed.
func Transports() []Transport {
	return []Transport{Pedestrian, Bicycle, Scooter, Car}
}

// MaxCapacity returns the heaviest order any transport in the catalog can carry.
// Heavier orders could never be delivered.
func MaxCapacity() kernel.Weight {
	capacity, _ := Car.Capacity()
	return capacity
}

// TransportFromName resolves a catalog entry by its case-insensitive name.
func TransportFromName(name string) (Transport, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Transports() {
		if getTransportProfiles()[t].name == wanted {
			return t, nil
		}
	}
	return TransportUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transport", fmt.Errorf("%q is not a known transport", name))
}

// Validate checks that the transport belongs to the catalog.
func (t Transport) Validate() error {
	if _, ok := getTransportProfiles()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport", fmt.Errorf("%d is not a known transport", t))
	}
	return nil
}

// Name returns the lower-case catalog name, or "unknown".
func (t Transport) Name() string {
	if p, ok := getTransportProfiles()[t]; ok {
		return p.name
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (t Transport) String() string {
	return t.Name()
}

// Speed returns the number of grid cells the transport covers in one movement step.
// It is zero for transports outside the catalog.
func (t Transport) Speed() int {
	return getTransportProfiles()[t].speed
}

// Capacity returns the heaviest order the transport can carry.
func (t Transport) Capacity() (kernel.Weight, error) {
	if err := t.Validate(); err != nil {
		return kernel.Weight{}, err
	}
	return kernel.NewWeight(getTransportProfiles()[t].capacity)
}

// CanCarry reports whether an order of the given weight fits the transport.
func (t Transport) CanCarry(weight kernel.Weight) (bool, error) {
	if err := weight.Validate(); err != nil {
		return false, err
	}

	capacity, err := t.Capacity()
	if err != nil {
		return false, err
	}

	return weight.LessOrEqual(capacity), nil
}
