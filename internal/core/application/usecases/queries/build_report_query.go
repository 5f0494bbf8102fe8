package queries

import (
	"errors"

	"creational/internal/core/domain/model/report"
	"creational/internal/pkg/guard"
)

var ErrBuildReportQueryIsNotConstructed = errors.New(
	"BuildReportQuery must be created via NewBuildReportQuery constructor",
)

// BuildReportQuery runs the report director with the builder for a format.
//
// Example:
//
//	query, err := NewBuildReportQuery(report.HTML)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	fmt.Println(resp.Text)
type BuildReportQuery struct {
	format report.Format
	guard  guard.ConstructorGuard
}

func NewBuildReportQuery(format report.Format) (BuildReportQuery, error) {
	if err := format.Validate(); err != nil {
		return BuildReportQuery{}, err
	}
	return BuildReportQuery{format: format, guard: guard.NewConstructorGuard()}, nil
}

func (q BuildReportQuery) Validate() error {
	return q.guard.Validate(ErrBuildReportQueryIsNotConstructed)
}

func (q BuildReportQuery) Format() report.Format {
	return q.format
}

// BuildReportQueryResponse holds the assembled parts and their rendering.
type BuildReportQueryResponse struct {
	Format  string
	Header  string
	Content string
	Footer  string
	Text    string
}
