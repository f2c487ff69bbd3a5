// Package transform converts parsed HTML documents into design-node trees.
// The traversal is a single-pass top-down recursion: every element becomes
// one node, fully populated before the recursion into its children returns,
// and never mutated afterwards. No I/O happens during the walk.
package transform

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"h2f/css"
	"h2f/design"
	"h2f/styles"
)

// Parser transforms HTML text into a design-node tree.
type Parser struct {
	log      *zap.Logger
	inline   *css.Parser
	resolver *styles.Resolver
}

// NewParser creates a document transformer.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("transform")
	return &Parser{
		log:      log,
		inline:   css.NewParser(log),
		resolver: styles.NewResolver(log),
	}
}

// Parse converts an HTML document into a design-node tree rooted at the
// document body. Malformed HTML is tolerated: the underlying parser repairs
// what it can and never rejects input. A document without a body yields a
// single empty body node. The detected framework is a property of the whole
// document and is shared by every node of the resulting tree.
func (p *Parser) Parse(htmlText string) (*design.Node, error) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	fw := DetectFramework(doc)
	p.log.Debug("Document classified", zap.Stringer("framework", fw))

	body := findElement(doc, "body")
	if body == nil {
		node := design.NewNode("body")
		node.Framework = fw
		return node, nil
	}
	return p.parseNode(body, fw), nil
}

// parseNode builds one design node from an element. The processing order is
// fixed: direct text, image handling, inline styles, semantic color classes,
// image dimension classes, then the framework table (whose result REPLACES
// everything accumulated so far) and finally font and generic dimension
// classes merged on top. The replace step is intentional; reordering
// changes output.
func (p *Parser) parseNode(n *html.Node, fw design.Framework) *design.Node {
	node := design.NewNode(n.Data)
	node.Framework = fw

	for _, a := range n.Attr {
		if a.Key == "class" {
			node.Classes = strings.Fields(a.Val)
			continue
		}
		node.Attributes[a.Key] = a.Val
	}

	if t := directText(n); t != "" {
		node.SetText(t)
	}

	if node.Tag == "img" {
		p.processImageNode(node)
	}

	if style, ok := node.Attributes["style"]; ok {
		props := p.parseInlineStyles(node, style)
		p.resolver.ApplyInlineFont(&node.Figma, props)
		p.resolver.ApplyInlineColors(&node.Figma, props)
	}

	p.resolver.ApplyTextColorClasses(&node.Figma, node.Classes)

	if node.Tag == "img" {
		p.resolver.ApplyImageDimensions(&node.Figma, fw, node.Classes)
	}

	if fw == design.FrameworkBootstrap || fw == design.FrameworkTailwind {
		// table resolution replaces, not merges, the bag built so far
		node.Figma = p.resolver.ResolveTable(fw, node.Classes)
	}

	p.resolver.ApplyFontClasses(&node.Figma, node.Classes)
	p.resolver.ApplyGenericDimensions(&node.Figma, node.Classes)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			node.Children = append(node.Children, p.parseNode(c, fw))
		case html.TextNode:
			// last non-blank text child wins, overwriting earlier values
			if t := strings.TrimSpace(c.Data); t != "" {
				node.SetText(t)
			}
		}
	}

	return node
}

// processImageNode attaches image metadata: a stable reference identifier
// derived from the src attribute (no content is fetched) and fixed layout
// hints for imported images.
func (p *Parser) processImageNode(node *design.Node) {
	if src, ok := node.Attributes["src"]; ok {
		node.Figma.ImageHash = ImageHash(src)
	}
	node.Figma.Constraints = &design.Constraints{
		Horizontal: design.ConstraintScale,
		Vertical:   design.ConstraintScale,
	}
	node.Figma.LayoutMode = design.LayoutNone
}

// parseInlineStyles parses a style attribute, records the raw declarations
// on the node and returns the value map for property lookups. Duplicate
// declarations keep the last occurrence.
func (p *Parser) parseInlineStyles(node *design.Node, style string) map[string]css.Value {
	decls := p.inline.ParseDeclarations(style)

	node.Styles = make(map[string]string, len(decls))
	props := make(map[string]css.Value, len(decls))
	for _, d := range decls {
		node.Styles[d.Property] = d.Value.Raw
		props[d.Property] = d.Value
	}
	return props
}

// ImageHash derives a stable opaque image reference from a source URL. Two
// nodes referencing the same src always produce the same identifier.
func ImageHash(src string) string {
	return "image-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(src)).String()
}

// directText returns trimmed text when the element has exactly one child and
// that child is a non-blank text node.
func directText(n *html.Node) string {
	if n.FirstChild == nil || n.FirstChild != n.LastChild || n.FirstChild.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(n.FirstChild.Data)
}

// DocumentTitle returns the trimmed content of the document title element,
// or empty string when there is none.
func DocumentTitle(htmlText string) string {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return ""
	}
	title := findElement(doc, "title")
	if title == nil || title.FirstChild == nil || title.FirstChild.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(title.FirstChild.Data)
}

// findElement returns the first element with the given tag in depth-first
// document order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
