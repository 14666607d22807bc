package telegram

import (
	"fmt"
	"html"
	"strings"

	"wordglance/internal/domain"
)

// telegram rejects messages longer than this
const maxMessageLength = 4096

func FormatResult(result *domain.LookupResult) string {
	var sb strings.Builder

	for _, section := range result.Sections.Definitions {
		fmt.Fprintf(&sb, "<b>Definitions</b> (%s)\n", html.EscapeString(section.Source))
		for _, def := range section.Definitions {
			if def.PartOfSpeech != "" {
				fmt.Fprintf(&sb, "• <i>%s</i> — %s\n", html.EscapeString(def.PartOfSpeech), html.EscapeString(def.Definition))
			} else {
				fmt.Fprintf(&sb, "• %s\n", html.EscapeString(def.Definition))
			}
			if def.Example != "" {
				fmt.Fprintf(&sb, "  <i>%s</i>\n", html.EscapeString(def.Example))
			}
		}
		sb.WriteString("\n")
	}

	if wiki := result.Sections.Wikipedia; wiki != nil {
		fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(wiki.Title))
		for _, p := range wiki.Paragraphs {
			sb.WriteString(html.EscapeString(p))
			sb.WriteString("\n")
		}
		if wiki.URL != "" {
			fmt.Fprintf(&sb, "<a href=\"%s\">Wikipedia</a>\n", html.EscapeString(wiki.URL))
		}
		sb.WriteString("\n")
	}

	if thes := result.Sections.Thesaurus; thes != nil {
		sb.WriteString("<b>Thesaurus</b>\n")
		if len(thes.Synonyms) > 0 {
			fmt.Fprintf(&sb, "Synonyms: %s\n", html.EscapeString(strings.Join(thes.Synonyms, ", ")))
		}
		if len(thes.Antonyms) > 0 {
			fmt.Fprintf(&sb, "Antonyms: %s\n", html.EscapeString(strings.Join(thes.Antonyms, ", ")))
		}
		if len(thes.RelatedTerms) > 0 {
			fmt.Fprintf(&sb, "Related: %s\n", html.EscapeString(strings.Join(thes.RelatedTerms, ", ")))
		}
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return fmt.Sprintf("Nothing found for «%s».", html.EscapeString(result.Query))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SplitMessage cuts text into chunks of at most maxLen bytes, preferring
// newline boundaries and then spaces so formatting tags stay intact.
func SplitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var messages []string
	for len(text) > maxLen {
		cut := lastBoundary(text[:maxLen])
		if cut <= 0 {
			cut = maxLen
		}
		messages = append(messages, strings.TrimRight(text[:cut], "\n "))
		text = strings.TrimLeft(text[cut:], "\n ")
	}
	if text != "" {
		messages = append(messages, text)
	}
	return messages
}

func lastBoundary(chunk string) int {
	if idx := strings.LastIndexByte(chunk, '\n'); idx > len(chunk)/2 {
		return idx
	}
	if idx := strings.LastIndexByte(chunk, ' '); idx > len(chunk)/2 {
		return idx
	}
	return -1
}
