// Package chart describes the report charts, renders them with go-chart and
// manages the lifetime of rendered chart handles.
package chart

import (
	"fmt"
	"time"
)

// Slot identifies one of the report's chart positions.
type Slot string

const (
	SlotTemperature Slot = "temp"
	SlotAir         Slot = "air"
	SlotExposure    Slot = "uv"
	SlotAQI         Slot = "aqi"
)

// Slots lists every chart slot in display order.
var Slots = []Slot{SlotTemperature, SlotAir, SlotExposure, SlotAQI}

// ParseSlot validates a slot name taken from a URL.
func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown chart %q", s)
}

// Title is the heading shown for the slot, including in the enlarged view.
func (s Slot) Title() string {
	switch s {
	case SlotTemperature:
		return "Temperature Trends"
	case SlotAir:
		return "Air Quality (PM2.5 & PM10)"
	case SlotExposure:
		return "UV Index"
	case SlotAQI:
		return "Air Quality Index Over Time"
	default:
		return string(s)
	}
}

// Type is the kind of plot.
type Type string

const (
	TypeLine Type = "line"
	TypeBar  Type = "bar"
)

// Dataset is one labelled series. Data entries are nil for gaps.
type Dataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	BarColors       []string   `json:"barColors,omitempty"`
	BorderWidth     float64    `json:"borderWidth"`
	BorderDash      []float64  `json:"borderDash,omitempty"`
	Fill            bool       `json:"fill"`
	Stepped         bool       `json:"stepped,omitempty"`
	HidePoints      bool       `json:"hidePoints,omitempty"`
	Axis            string     `json:"yAxisID,omitempty"`
}

// Axis describes a y axis.
type Axis struct {
	ID         string         `json:"id"`
	Title      string         `json:"title,omitempty"`
	Position   string         `json:"position"`
	Hidden     bool           `json:"hidden,omitempty"`
	Min        *float64       `json:"min,omitempty"`
	Max        *float64       `json:"max,omitempty"`
	TickStep   float64        `json:"tickStep,omitempty"`
	TickLabels map[int]string `json:"tickLabels,omitempty"`
}

// Spec is a complete, renderer-independent chart description.
type Spec struct {
	Slot     Slot      `json:"slot"`
	Type     Type      `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Axes     []Axis    `json:"axes,omitempty"`
}

// axis returns the axis with the given id, or the first axis when id is empty.
func (s Spec) axis(id string) (Axis, bool) {
	for _, a := range s.Axes {
		if id == "" || a.ID == id {
			return a, true
		}
	}
	return Axis{}, false
}

// HourLabel turns a provider timestamp such as "2026-10-17T14:00" into "14:00".
func HourLabel(ts string) string {
	t, err := time.Parse("2006-01-02T15:04", ts)
	if err != nil {
		return ts
	}
	return fmt.Sprintf("%d:00", t.Hour())
}

func floatPtr(v float64) *float64 { return &v }
