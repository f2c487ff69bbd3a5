package transform

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"h2f/design"
)

// tailwindClassPattern matches generated Tailwind palette classes such as
// bg-slate-100 or text-gray-700.
var tailwindClassPattern = regexp.MustCompile(`^(bg|text|border)-[a-z]+-\d{3}$`)

// DetectFramework inspects a parsed document for framework signatures and
// classifies it as exactly one of none, bootstrap or tailwind. A stylesheet
// link mentioning bootstrap wins outright; otherwise a tailwind script
// reference or a palette-style class token selects tailwind.
func DetectFramework(doc *html.Node) design.Framework {
	var bootstrap, tailwind bool

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if bootstrap {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "link":
				if strings.Contains(attrValue(n, "href"), "bootstrap") {
					bootstrap = true
					return
				}
			case "script":
				if strings.Contains(attrValue(n, "src"), "tailwind") {
					tailwind = true
				}
			}
			if !tailwind {
				for _, cls := range strings.Fields(attrValue(n, "class")) {
					if tailwindClassPattern.MatchString(cls) {
						tailwind = true
						break
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	switch {
	case bootstrap:
		return design.FrameworkBootstrap
	case tailwind:
		return design.FrameworkTailwind
	default:
		return design.FrameworkNone
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
