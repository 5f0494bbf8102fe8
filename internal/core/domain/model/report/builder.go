package report

// Builder receives the parts of a report one at a time.
type Builder interface {
	SetHeader(header string)
	SetContent(content string)
	SetFooter(footer string)
	Report() Report
}

var (
	_ Builder = (*TextBuilder)(nil)
	_ Builder = (*HTMLBuilder)(nil)
)

// TextBuilder stores every part as given.
type TextBuilder struct {
	report Report
}

func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

func (b *TextBuilder) SetHeader(header string) {
	b.report.header = header
}

func (b *TextBuilder) SetContent(content string) {
	b.report.content = content
}

func (b *TextBuilder) SetFooter(footer string) {
	b.report.footer = footer
}

func (b *TextBuilder) Report() Report {
	return b.report
}

// HTMLBuilder wraps every part in its tag before storing it. Parts are not
// escaped.
type HTMLBuilder struct {
	report Report
}

func NewHTMLBuilder() *HTMLBuilder {
	return &HTMLBuilder{}
}

func (b *HTMLBuilder) SetHeader(header string) {
	b.report.header = "<h1>" + header + "</h1>"
}

func (b *HTMLBuilder) SetContent(content string) {
	b.report.content = "<p>" + content + "</p>"
}

func (b *HTMLBuilder) SetFooter(footer string) {
	b.report.footer = "<footer>" + footer + "</footer>"
}

func (b *HTMLBuilder) Report() Report {
	return b.report
}
