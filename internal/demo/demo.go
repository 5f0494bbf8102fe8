// Package demo runs the fixed walkthrough of the three construction
// patterns: the shared settings store, the report builders and the order
// prototype. Its only output is the text written to the given writer.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/core/domain/model/report"
	"creational/internal/core/domain/model/settings"
	"creational/internal/core/ports"
)

// Runner writes the walkthrough. Diagnostics go to the logger, never to the
// output writer.
type Runner struct {
	provider ports.SettingsProvider
	director report.Director
	logger   *slog.Logger
}

func NewRunner(provider ports.SettingsProvider, logger *slog.Logger) *Runner {
	return &Runner{
		provider: provider,
		director: report.NewDirector(),
		logger:   logger.With("component", "demo"),
	}
}

// Run writes the settings, report and order sections in that order. A
// failure to clone the sample order is returned wrapped and ends the run.
func (r *Runner) Run(w io.Writer) error {
	out := &lineWriter{w: w}

	r.settingsSection(out)
	r.reportSection(out)
	if err := r.orderSection(out); err != nil {
		return err
	}
	return out.err
}

func (r *Runner) settingsSection(out *lineWriter) {
	config := r.provider.Store()
	config.LoadDefaults()
	out.println("Settings loaded.")

	theme, _ := config.Get(settings.KeyTheme)
	language, _ := config.Get(settings.KeyLanguage)
	out.println("Theme: " + theme)
	out.println("Language: " + language)

	another := r.provider.Store()
	out.println(fmt.Sprintf("Same instance? %t", config == another))
}

func (r *Runner) reportSection(out *lineWriter) {
	out.println(r.director.Construct(report.NewTextBuilder()).String())
	out.println(r.director.Construct(report.NewHTMLBuilder()).String())
}

func (r *Runner) orderSection(out *lineWriter) error {
	original, err := sampleOrder()
	if err != nil {
		return fmt.Errorf("build sample order: %w", err)
	}

	cloned, err := original.Clone()
	if err != nil {
		r.logger.Error("order clone failed", "order_id", original.ID().String(), "error", err)
		return fmt.Errorf("clone order %s: %w", original.ID(), err)
	}
	if err = cloned.SetDiscount(3.0); err != nil {
		return err
	}
	r.logger.Debug("order cloned", "source_id", original.ID().String(), "clone_id", cloned.ID().String())

	out.println(original.String())
	out.println(cloned.String())
	return nil
}

func sampleOrder() (*order.Order, error) {
	o, err := order.NewOrder(kernel.NewUUID())
	if err != nil {
		return nil, err
	}

	for _, item := range []struct {
		name  string
		price float64
	}{
		{"Product 1", 10.0},
		{"Product 2", 15.0},
	} {
		p, pErr := order.NewProduct(item.name, item.price)
		if pErr != nil {
			return nil, pErr
		}
		o.AddProduct(p)
	}

	if err = o.SetDeliveryCost(5.0); err != nil {
		return nil, err
	}
	if err = o.SetDiscount(2.0); err != nil {
		return nil, err
	}
	return o, nil
}

// lineWriter keeps the first write error and drops later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) println(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.w, s+"\n")
}
