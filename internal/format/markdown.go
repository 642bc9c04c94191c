// Package format contains text formatting helpers shared by the domain
// renderers and the Telegram layer.
package format

import "regexp"

var (
	mdV1Re = regexp.MustCompile("([_*`\\[\\\\])")
	mdV2Re = regexp.MustCompile(`([_*\[\]()~` + "`" + `>#+\-=|{}.!\\])`)
)

// EscapeMarkdown escapes characters Telegram would interpret as Markdown
// (legacy v1) markup.
func EscapeMarkdown(text string) string {
	return mdV1Re.ReplaceAllString(text, `\$1`)
}

// EscapeMarkdownV2 escapes the full MarkdownV2 special set.
func EscapeMarkdownV2(text string) string {
	return mdV2Re.ReplaceAllString(text, `\$1`)
}
