package queries

import (
	"context"

	"creational/internal/core/domain/model/report"
)

// BuildReportQueryHandler assembles reports through a report.Director.
type BuildReportQueryHandler struct {
	director report.Director
}

func NewBuildReportQueryHandler(director report.Director) BuildReportQueryHandler {
	return BuildReportQueryHandler{director: director}
}

func (h BuildReportQueryHandler) Handle(_ context.Context, query BuildReportQuery) (BuildReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return BuildReportQueryResponse{}, err
	}

	builder, err := report.NewBuilder(query.Format())
	if err != nil {
		return BuildReportQueryResponse{}, err
	}

	r := h.director.Construct(builder)
	return BuildReportQueryResponse{
		Format:  query.Format().String(),
		Header:  r.Header(),
		Content: r.Content(),
		Footer:  r.Footer(),
		Text:    r.String(),
	}, nil
}
