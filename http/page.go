package http

import (
	"embed"
	"html/template"

	"go-currency-converter/domain"
	"go-currency-converter/ui"
)

//go:embed templates/page.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html"))

// pageView collects the controller's display updates for one render
type pageView struct {
	SourceValue string
	TargetValue string
	SourceName  string
	TargetName  string
	SourceImage string
	TargetImage string
}

func (v *pageView) SetText(region ui.Region, text string) {
	switch region {
	case ui.SourceValue:
		v.SourceValue = text
	case ui.TargetValue:
		v.TargetValue = text
	case ui.SourceName:
		v.SourceName = text
	case ui.TargetName:
		v.TargetName = text
	}
}

func (v *pageView) SetImage(region ui.Region, src string) {
	switch region {
	case ui.SourceImage:
		v.SourceImage = src
	case ui.TargetImage:
		v.TargetImage = src
	}
}

// pageSound marks the page to autoplay the audio cue; the browser may still refuse
type pageSound struct {
	requested bool
}

func (s *pageSound) Play() error {
	s.requested = true
	return nil
}

type option struct {
	Code domain.Currency
	Name string
	From bool
	To   bool
}

// page the template model
type page struct {
	State      string
	Assets     string
	Currencies []option
	Amount     string
	View       *pageView
	PlaySound  bool
	Sound      string
}

func options(from, to domain.Currency) []option {
	out := make([]option, 0, len(domain.Supported))
	for _, c := range domain.Supported {
		label, _ := ui.Describe(c)
		out = append(out, option{Code: c, Name: label.Name, From: c == from, To: c == to})
	}
	return out
}
