package blogservice

import "github.com/microcosm-cc/bluemonday"

// embedPolicy lets through iframes with an https source and the handful of
// layout attributes music players use. Everything else, scripts and on*
// handlers included, is dropped.
var embedPolicy = newEmbedPolicy()

func newEmbedPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowAttrs("src", "width", "height", "frameborder", "scrolling", "allow", "title").OnElements("iframe")
	p.AllowURLSchemes("https")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(false)

	return p
}

func sanitizeEmbed(markup string) string {
	return embedPolicy.Sanitize(markup)
}
