// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monitor

import "fmt"

// Unit is a byte-rate display unit for ArrivalRate/DepartureRate.
type Unit int

const (
	Bytes Unit = iota
	KB
	MB
	GB
	TB
)

var unitFactor = [...]float64{
	Bytes: 1,
	KB:    1.0 / (1 << 10),
	MB:    1.0 / (1 << 20),
	GB:    1.0 / (1 << 30),
	TB:    1.0 / (1 << 40),
}

func (u Unit) String() string {
	switch u {
	case Bytes:
		return "B"
	case KB:
		return "KB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	case TB:
		return "TB"
	default:
		return "?"
	}
}

type rateCounter struct {
	items  uint64
	frames uint64
}

// Stats aggregates a Sampler's running counters and derives arrival rate,
// departure rate, mean occupancy and utilization from them. Every
// derivation is zero-guarded: an unconverged or idle queue reports zero
// instead of dividing by zero — spec.md §9 rejects the original source's
// "samples = 1" calibration hack in favor of this.
type Stats struct {
	arrival       rateCounter
	departure     rateCounter
	occupancy     rateCounter
	itemUnitBytes float64
	frameWidth    float64
}

// NewStats creates an empty Stats for items of itemUnitBytes bytes each.
func NewStats(itemUnitBytes float64) *Stats {
	return &Stats{itemUnitBytes: itemUnitBytes}
}

func (s *Stats) addArrival(items uint64, frameWidth float64) {
	s.arrival.items += items
	s.arrival.frames++
	s.frameWidth = frameWidth
}

func (s *Stats) addDeparture(items uint64, frameWidth float64) {
	s.departure.items += items
	s.departure.frames++
	s.frameWidth = frameWidth
}

func (s *Stats) addOccupancy(items uint64) {
	s.occupancy.items += items
	s.occupancy.frames++
}

func rate(c rateCounter, itemUnitBytes, frameWidth float64, unit Unit) float64 {
	if c.items == 0 || c.frames == 0 || frameWidth == 0 {
		return 0
	}
	return (float64(c.items) * itemUnitBytes) / (frameWidth * float64(c.frames)) * unitFactor[unit]
}

// ArrivalRate returns the producer's byte rate in unit, or 0 if no frame
// has yet been accepted toward the estimate.
func (s *Stats) ArrivalRate(unit Unit) float64 {
	return rate(s.arrival, s.itemUnitBytes, s.frameWidth, unit)
}

// DepartureRate returns the consumer's byte rate in unit, or 0 if no frame
// has yet been accepted toward the estimate.
func (s *Stats) DepartureRate(unit Unit) float64 {
	return rate(s.departure, s.itemUnitBytes, s.frameWidth, unit)
}

// MeanOccupancy returns the average observed queue size across sampled
// frames, or 0 if none have been observed.
func (s *Stats) MeanOccupancy() float64 {
	if s.occupancy.frames == 0 {
		return 0
	}
	return float64(s.occupancy.items) / float64(s.occupancy.frames)
}

// Utilization is the ratio of arrival rate to departure rate (both in
// bytes), or 0 if the departure rate is 0.
func (s *Stats) Utilization() float64 {
	d := s.DepartureRate(Bytes)
	if d == 0 {
		return 0
	}
	return s.ArrivalRate(Bytes) / d
}

// String renders a human-readable snapshot in MB/s.
func (s *Stats) String() string {
	return fmt.Sprintf("arrival=%.2fMB/s departure=%.2fMB/s occupancy=%.1f utilization=%.2f",
		s.ArrivalRate(MB), s.DepartureRate(MB), s.MeanOccupancy(), s.Utilization())
}
