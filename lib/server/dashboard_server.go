package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/dashboard"
	"github.com/pescuma/bdcrime/lib/filters"
)

type SelectionParams struct {
	Year  *int     `form:"year"`
	Area  []string `form:"area"`
	Crime string   `form:"crime"`
}

type ChartParams struct {
	SelectionParams
	Kind string `uri:"kind"`
}

type EventParams struct {
	State *dashboard.State        `json:"state"`
	Event *dashboard.EventMessage `json:"event"`
}

func (s *server) initDashboard(r *gin.Engine) {
	r.GET("/api/options", get(s.options))
	r.GET("/api/dashboard", getP[SelectionParams](s.dashboardGet))
	r.POST("/api/dashboard/events", postP[EventParams](s.dashboardEvent))
	r.GET("/api/charts/:kind", getP[ChartParams](s.chartGet))
}

func (s *server) options() (any, error) {
	return s.dash.Controls(), nil
}

func (s *server) dashboardGet(params *SelectionParams) (any, error) {
	state, err := s.toState(params)
	if err != nil {
		return nil, err
	}

	return s.dash.Render(state)
}

func (s *server) dashboardEvent(params *EventParams) (any, error) {
	state := params.State
	if state == nil {
		state = s.dash.DefaultState()
	}

	if params.Event == nil {
		page, err := s.dash.Render(state)
		if err != nil {
			return nil, err
		}

		return gin.H{"state": state, "page": page}, nil
	}

	event, err := params.Event.ToEvent()
	if err != nil {
		return nil, errors.Wrap(errorBadRequest, err.Error())
	}

	state, page, err := s.dash.Handle(state, event)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"state": state,
		"page":  page,
	}, nil
}

func (s *server) chartGet(params *ChartParams) (any, error) {
	kind, err := charts.ParseKind(params.Kind)
	if err != nil {
		return nil, err
	}

	state, err := s.toState(&params.SelectionParams)
	if err != nil {
		return nil, err
	}

	return s.dash.Chart(state, kind)
}

// toState fills the missing query parameters with the defaults. A missing area
// selects all areas; area patterns may be repeated or separated by commas.
func (s *server) toState(params *SelectionParams) (*dashboard.State, error) {
	result := s.dash.DefaultState()

	if params.Year != nil {
		result.Year = *params.Year
	}

	if params.Crime != "" {
		result.CrimeType = params.Crime
	}

	if params.Area != nil {
		areas, err := filters.ParseAreas(s.dash.Dataset(), params.Area)
		if err != nil {
			return nil, err
		}

		result.Areas = areas
	}

	return result, nil
}
