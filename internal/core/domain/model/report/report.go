package report

// Report is the product of one assembly pass.
type Report struct {
	header  string
	content string
	footer  string
}

func (r Report) Header() string {
	return r.header
}

func (r Report) Content() string {
	return r.content
}

func (r Report) Footer() string {
	return r.footer
}

// String renders the report under a "Report:" label, one part per line.
func (r Report) String() string {
	return "Report:\n" + r.header + "\n" + r.content + "\n" + r.footer
}
