// Package ui turns user interactions into conversions and display updates.
// It knows nothing about the surface it drives: adapters implement View and Sound.
package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/rates"
)

// Region a display slot written by the controller
type Region int

const (
	SourceValue Region = iota
	TargetValue
	SourceName
	TargetName
	SourceImage
	TargetImage
)

func (r Region) String() string {
	switch r {
	case SourceValue:
		return "source-value"
	case TargetValue:
		return "target-value"
	case SourceName:
		return "source-name"
	case TargetName:
		return "target-name"
	case SourceImage:
		return "source-image"
	case TargetImage:
		return "target-image"
	}
	return "unknown"
}

// View receives every display update.
type View interface {
	SetText(region Region, text string)
	SetImage(region Region, src string)
}

// Sound plays the audio cue. Errors are ignored by the controller.
type Sound interface {
	Play() error
}

// State of the controller as seen from outside
type State int

const (
	// Uninitialized no rate table yet, every conversion shows the placeholder
	Uninitialized State = iota
	// Ready rates loaded
	Ready
	// Updated a currency selection changed since rates were loaded
	Updated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Updated:
		return "updated"
	}
	return "unknown"
}

// Controller wires selection, input and convert events to the conversion engine.
// It is safe for use from several goroutines.
type Controller struct {
	converter exchange.Service
	table     *rates.Table
	view      View
	sound     Sound

	// assets path or URL prefix for icons
	assets string

	logger log.Logger

	lock  sync.Mutex
	from  domain.Currency
	to    domain.Currency
	input string
	state State
}

// New constructs a Controller selecting domain.BRL to domain.USD with an empty input.
// sound may be nil.
func New(converter exchange.Service, table *rates.Table, view View, sound Sound, assets string, logger log.Logger) *Controller {
	return &Controller{
		converter: converter,
		table:     table,
		view:      view,
		sound:     sound,
		assets:    strings.TrimSuffix(assets, "/"),
		logger:    logger,
		from:      domain.BRL,
		to:        domain.USD,
	}
}

// Preset sets the selection and input without rendering anything.
func (c *Controller) Preset(from domain.Currency, to domain.Currency, input string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.from, c.to, c.input = from, to, input
}

// Start renders the labels, fetches rates through p and renders the first conversion.
// Events arriving while the fetch is in flight are served with the placeholder.
func (c *Controller) Start(ctx context.Context, p *rates.Provider) {
	c.lock.Lock()
	c.renderLabels()
	c.lock.Unlock()

	result := c.table.Refresh(ctx, p)
	level.Info(c.logger).Log("msg", "rates ready", "source", result.Source)

	c.lock.Lock()
	defer c.lock.Unlock()
	c.state = Ready
	c.convert()
}

// Render redraws the labels and the conversion for the current selection and input.
func (c *Controller) Render() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.renderLabels()
	c.convert()
}

// SelectSource changes the source currency.
func (c *Controller) SelectSource(code domain.Currency) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.from = code
	c.selectionChanged()
}

// SelectTarget changes the target currency.
func (c *Controller) SelectTarget(code domain.Currency) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.to = code
	c.selectionChanged()
}

// SetInput records the raw amount. The display changes on the next conversion.
func (c *Controller) SetInput(raw string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.input = raw
}

// ConvertClicked plays the audio cue and converts the current input.
func (c *Controller) ConvertClicked() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.play()
	c.convert()
}

// State reports Uninitialized until a rate table is available.
func (c *Controller) State() State {
	if _, ok := c.table.Load(); !ok {
		return Uninitialized
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.state == Uninitialized {
		return Ready
	}
	return c.state
}

// Selection returns the current source, target and raw input.
func (c *Controller) Selection() (domain.Currency, domain.Currency, string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.from, c.to, c.input
}

func (c *Controller) selectionChanged() {
	c.renderLabels()
	if _, ok := c.table.Load(); ok {
		c.state = Updated
	}
	c.convert()
}

func (c *Controller) renderLabels() {
	from := describeOr(c.from, domain.BRL)
	to := describeOr(c.to, domain.USD)

	c.view.SetText(SourceName, from.Name)
	c.view.SetText(TargetName, to.Name)
	c.view.SetImage(SourceImage, c.asset(from.Icon))
	c.view.SetImage(TargetImage, c.asset(to.Icon))
}

func (c *Controller) convert() {
	result := c.converter.Convert(context.Background(), domain.Request{
		Amount: c.input,
		From:   c.from,
		To:     c.to,
	})
	c.view.SetText(SourceValue, result.Source)
	c.view.SetText(TargetValue, result.Target)
}

// play is best effort: a failing or panicking player never stops the conversion.
func (c *Controller) play() {
	if c.sound == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			level.Debug(c.logger).Log("msg", "sound blocked", "err", r)
		}
	}()
	if err := c.sound.Play(); err != nil {
		level.Debug(c.logger).Log("msg", "sound blocked", "err", err)
	}
}

func (c *Controller) asset(name string) string {
	if c.assets == "" {
		return name
	}
	return c.assets + "/" + name
}

// SoundPath returns where the audio cue lives under assets.
func SoundPath(assets string) string {
	assets = strings.TrimSuffix(assets, "/")
	if assets == "" {
		return SoundFile
	}
	return assets + "/" + SoundFile
}
