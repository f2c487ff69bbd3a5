package design

import "fmt"

// Framework identifies the utility-CSS system detected for a document. It is
// a whole-document classification: every node produced from one parse carries
// the same value.
type Framework int

const (
	FrameworkNone Framework = iota
	FrameworkBootstrap
	FrameworkTailwind
)

func (f Framework) String() string {
	switch f {
	case FrameworkBootstrap:
		return "bootstrap"
	case FrameworkTailwind:
		return "tailwind"
	default:
		return "none"
	}
}

// ParseFramework converts a string to a Framework value.
func ParseFramework(s string) (Framework, error) {
	switch s {
	case "none", "":
		return FrameworkNone, nil
	case "bootstrap":
		return FrameworkBootstrap, nil
	case "tailwind":
		return FrameworkTailwind, nil
	}
	return FrameworkNone, fmt.Errorf("unknown framework %q", s)
}
