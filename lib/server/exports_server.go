package server

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/exporters/xlsx"
	"github.com/pescuma/bdcrime/lib/renderers/png"
)

const contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *server) initExports(r *gin.Engine) {
	r.GET("/api/png/:kind", getFile[ChartParams]("image/png", s.pngGet))
	r.GET("/api/export.xlsx", getFile[SelectionParams](contentTypeXlsx, s.xlsxGet))
}

func (s *server) pngGet(params *ChartParams, w io.Writer) (string, error) {
	kind, err := charts.ParseKind(params.Kind)
	if err != nil {
		return "", err
	}
	if !png.Supports(kind) {
		return "", errorNotFound
	}

	state, err := s.toState(&params.SelectionParams)
	if err != nil {
		return "", err
	}

	chart, err := s.dash.Chart(state, kind)
	if err != nil {
		return "", err
	}

	return "", png.Render(w, chart, nil)
}

func (s *server) xlsxGet(params *SelectionParams, w io.Writer) (string, error) {
	state, err := s.toState(params)
	if err != nil {
		return "", err
	}

	in, err := s.dash.Input(state)
	if err != nil {
		return "", err
	}

	err = xlsx.Export(w, in)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%v-%v.xlsx", s.dash.Dataset().Name, state.Year), nil
}
