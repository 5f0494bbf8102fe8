package report

const (
	DefaultHeader  = "Report header"
	DefaultContent = "Report content"
	DefaultFooter  = "Report footer"
)

// Director drives a Builder through the fixed assembly sequence.
type Director struct{}

func NewDirector() Director {
	return Director{}
}

// Construct sets header, content and footer, in that order, and returns the
// builder's report.
func (Director) Construct(b Builder) Report {
	b.SetHeader(DefaultHeader)
	b.SetContent(DefaultContent)
	b.SetFooter(DefaultFooter)
	return b.Report()
}
