package bot

import "strings"

// markdownV2Replacer escapes the characters Telegram reserves in MarkdownV2
// text. See https://core.telegram.org/bots/api#markdownv2-style
var markdownV2Replacer = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`~`, `\~`,
	"`", "\\`",
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`=`, `\=`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`.`, `\.`,
	`!`, `\!`,
)

// EscapeMarkdown escapes text for inclusion in a MarkdownV2 message.
func EscapeMarkdown(text string) string {
	return markdownV2Replacer.Replace(text)
}
