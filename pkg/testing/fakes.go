package testing

// Fake widgets for pipeline tests that do not want a real widget set.

// FakeContainer accepts children and registers descendant ids.
type FakeContainer struct {
	Name string
	Kids []any
	ids  map[string]any
}

func (c *FakeContainer) SetName(s string) { c.Name = s }

func (c *FakeContainer) AppendChild(child any) error {
	c.Kids = append(c.Kids, child)
	return nil
}

func (c *FakeContainer) RegisterID(id string, widget any) {
	if c.ids == nil {
		c.ids = make(map[string]any)
	}
	c.ids[id] = widget
}

func (c *FakeContainer) WidgetByID(id string) (any, bool) {
	v, ok := c.ids[id]
	return v, ok
}

// FakeLeaf carries the common attribute shapes: a string, a number, and a
// callback.
type FakeLeaf struct {
	Name    string
	Size    int
	OnClick func()
}

func (l *FakeLeaf) SetName(s string)     { l.Name = s }
func (l *FakeLeaf) SetSize(px int)       { l.Size = px }
func (l *FakeLeaf) SetOnClick(fn func()) { l.OnClick = fn }
