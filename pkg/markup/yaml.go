package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

// yamlNode is the document shape of one element:
//
//	widget: panel
//	attrs:
//	  orientation: ":vertical"
//	children:
//	  - widget: label
//	    attrs: {text: hello}
//	  - ~
//
// A null child decodes to a nil *yamlNode and is preserved as a nil slot,
// so conditional templating that blanks out a child keeps sibling order.
type yamlNode struct {
	Widget   string         `yaml:"widget"`
	Attrs    map[string]any `yaml:"attrs"`
	Children []*yamlNode    `yaml:"children"`
}

// ParseYAML parses one YAML document into a description tree.
func ParseYAML(src []byte) (*core.Node, error) {
	var doc yamlNode
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, weferr.Wrap("markup.ParseYAML", weferr.KindMalformedNode, err)
	}
	return yamlToNode(&doc, "$")
}

// yamlToNode converts the decoded document bottom-up. path names the
// node's position for error messages.
func yamlToNode(y *yamlNode, path string) (*core.Node, error) {
	if y.Widget == "" {
		return nil, weferr.New("markup.ParseYAML", weferr.KindMalformedNode,
			"element at %s has no widget keyword", path)
	}

	attrs := make(core.Attributes, len(y.Attrs))
	for k, v := range y.Attrs {
		attrs[k] = convertScalar(v)
	}

	node := core.NewNode(y.Widget, attrs)
	for i, child := range y.Children {
		if child == nil {
			node.Children = append(node.Children, nil)
			continue
		}
		cn, err := yamlToNode(child, fmt.Sprintf("%s.%s[%d]", path, y.Widget, i))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, cn)
	}
	return node, nil
}
