package widgets

import (
	"image/color"
)

// Alignment positions text within its widget.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Orientation is the stacking axis of a Panel.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Visibility is the display state of a widget.
type Visibility int

const (
	Visible Visibility = iota
	Invisible
	Gone
)

// Insets is padding in pixels per edge.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Uniform builds equal insets on all edges.
func Uniform(px int) Insets {
	return Insets{Left: px, Top: px, Right: px, Bottom: px}
}

// Widget is the base every element embeds: identity, visibility, sizing,
// padding, and an id registry so any widget can serve as an id-holder.
type Widget struct {
	Enabled      bool
	Visibility   Visibility
	Width        int
	Height       int
	Padding      Insets
	Background   color.RGBA
	LayoutWeight float64

	ids map[string]any
}

func (w *Widget) SetEnabled(v bool)              { w.Enabled = v }
func (w *Widget) SetVisibility(v Visibility)     { w.Visibility = v }
func (w *Widget) SetWidth(px int)                { w.Width = px }
func (w *Widget) SetHeight(px int)               { w.Height = px }
func (w *Widget) SetPadding(i Insets)            { w.Padding = i }
func (w *Widget) SetBackgroundColor(c color.RGBA) { w.Background = c }
func (w *Widget) SetLayoutWeight(weight float64) { w.LayoutWeight = weight }

// RegisterID files a descendant widget under id. Widgets lazily become id
// registries the first time an id lands on them.
func (w *Widget) RegisterID(id string, widget any) {
	if w.ids == nil {
		w.ids = make(map[string]any)
	}
	w.ids[id] = widget
}

// WidgetByID returns the widget filed under id.
func (w *Widget) WidgetByID(id string) (any, bool) {
	v, ok := w.ids[id]
	return v, ok
}

// Panel stacks children along one axis.
type Panel struct {
	Widget
	Orientation Orientation
	Kids        []any
}

func (p *Panel) SetOrientation(o Orientation) { p.Orientation = o }

// AppendChild attaches a built child, in build order.
func (p *Panel) AppendChild(child any) error {
	p.Kids = append(p.Kids, child)
	return nil
}

// Label shows a run of text.
type Label struct {
	Widget
	Text      string
	TextSize  int
	TextColor color.RGBA
	TextAlign Alignment
}

func (l *Label) SetText(s string)             { l.Text = s }
func (l *Label) SetTextSize(px int)           { l.TextSize = px }
func (l *Label) SetTextColor(c color.RGBA)    { l.TextColor = c }
func (l *Label) SetTextAlign(a Alignment)     { l.TextAlign = a }

// Button is a clickable label.
type Button struct {
	Label
	OnClick func()
}

// NewButton constructs a button with its text, the registered constructor
// overload for one string argument.
func NewButton(text string) *Button {
	b := &Button{}
	b.Text = text
	return b
}

func (b *Button) SetOnClick(fn func()) { b.OnClick = fn }

// Click simulates a press, for tests and demos.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Field is a single-line text input.
type Field struct {
	Widget
	Text string
	Hint string
}

func (f *Field) SetText(s string) { f.Text = s }
func (f *Field) SetHint(s string) { f.Hint = s }

// Checkbox is a toggle with an optional change callback.
type Checkbox struct {
	Widget
	Checked  bool
	OnChange func(bool)
}

func (c *Checkbox) SetChecked(v bool) {
	c.Checked = v
}

func (c *Checkbox) SetOnChange(fn func(bool)) { c.OnChange = fn }

// Toggle flips the checkbox and fires the callback, for tests and demos.
func (c *Checkbox) Toggle() {
	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
}
