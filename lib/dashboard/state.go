package dashboard

import (
	"github.com/pkg/errors"
)

// State is the selection made with the dashboard controls.
type State struct {
	Year      int      `json:"year"`
	Areas     []string `json:"areas"`
	CrimeType string   `json:"crimeType"`
}

func (s *State) Clone() *State {
	return &State{
		Year:      s.Year,
		Areas:     append([]string{}, s.Areas...),
		CrimeType: s.CrimeType,
	}
}

// Event is a change made by the user to one of the controls.
type Event interface {
	Apply(state *State) *State
}

type YearChanged struct {
	Year int
}

func (e YearChanged) Apply(state *State) *State {
	result := state.Clone()
	result.Year = e.Year
	return result
}

type AreasChanged struct {
	Areas []string
}

func (e AreasChanged) Apply(state *State) *State {
	result := state.Clone()
	result.Areas = append([]string{}, e.Areas...)
	return result
}

type CrimeTypeChanged struct {
	CrimeType string
}

func (e CrimeTypeChanged) Apply(state *State) *State {
	result := state.Clone()
	result.CrimeType = e.CrimeType
	return result
}

const (
	EventYearChanged      = "yearChanged"
	EventAreasChanged     = "areasChanged"
	EventCrimeTypeChanged = "crimeTypeChanged"
)

// EventMessage is the wire form of an Event.
type EventMessage struct {
	Type      string   `json:"type"`
	Year      *int     `json:"year,omitempty"`
	Areas     []string `json:"areas,omitempty"`
	CrimeType *string  `json:"crimeType,omitempty"`
}

func (m *EventMessage) ToEvent() (Event, error) {
	switch m.Type {
	case EventYearChanged:
		if m.Year == nil {
			return nil, errors.Errorf("%v needs a year", m.Type)
		}
		return YearChanged{Year: *m.Year}, nil

	case EventAreasChanged:
		return AreasChanged{Areas: m.Areas}, nil

	case EventCrimeTypeChanged:
		if m.CrimeType == nil {
			return nil, errors.Errorf("%v needs a crime type", m.Type)
		}
		return CrimeTypeChanged{CrimeType: *m.CrimeType}, nil

	default:
		return nil, errors.Errorf("unknown event type: '%v'", m.Type)
	}
}
