// Package ble defines a backend-neutral view of a Bluetooth Low Energy central: scanning,
// connecting to a peripheral and subscribing to one of its characteristics. Concrete backends live
// in the goble and tinygo sub-packages.
package ble

import (
	"sort"
)

// BeaconSet merges advertisements by address while a scan is running. A scan response may carry
// the local name while the advertisement itself does not, so a known name is never overwritten by
// an empty one.
type BeaconSet map[string]Beacon

func (s BeaconSet) Add(b Beacon) {
	if prev, ok := s[b.Address]; ok && b.LocalName == "" {
		b.LocalName = prev.LocalName
	}
	s[b.Address] = b
}

// List returns the beacons ordered by address.
func (s BeaconSet) List() []Beacon {
	beacons := make([]Beacon, 0, len(s))
	for _, b := range s {
		beacons = append(beacons, b)
	}
	sort.Slice(beacons, func(i, j int) bool {
		return beacons[i].Address < beacons[j].Address
	})
	return beacons
}

// FindByName returns the first beacon whose local name equals name exactly. Beacons without a
// local name never match.
func FindByName(beacons []Beacon, name string) (Beacon, bool) {
	for _, b := range beacons {
		if b.LocalName != "" && b.LocalName == name {
			return b, true
		}
	}
	return Beacon{}, false
}
