package components

import (
	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
)

// copyPolicy admits the inline markup the content catalog uses for emphasis
var copyPolicy = newCopyPolicy()

func newCopyPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "em", "strong", "span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	return p
}

// RichText renders catalog copy that may carry inline markup. Anything
// outside the policy is stripped.
func RichText(s string) g.Node {
	return g.Raw(copyPolicy.Sanitize(s))
}
