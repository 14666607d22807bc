// Package render writes a LookupResult for humans. Absent sections are
// skipped silently; they are not errors.
package render

import (
	"fmt"
	"io"
	"strings"

	"wordglance/internal/domain"
)

func Text(w io.Writer, result *domain.LookupResult) {
	fmt.Fprintf(w, "Query: %s\n", result.Query)
	fmt.Fprintf(w, "Content type: %s\n\n", result.ContentType)

	for _, section := range result.Sections.Definitions {
		fmt.Fprintf(w, "[definitions] %s\n", section.Source)
		for _, def := range section.Definitions {
			if def.PartOfSpeech != "" {
				fmt.Fprintf(w, "  - (%s) %s\n", def.PartOfSpeech, def.Definition)
			} else {
				fmt.Fprintf(w, "  - %s\n", def.Definition)
			}
			if def.Example != "" {
				fmt.Fprintf(w, "      example: %s\n", def.Example)
			}
		}
		fmt.Fprintln(w)
	}

	if wiki := result.Sections.Wikipedia; wiki != nil {
		fmt.Fprintf(w, "[wikipedia] %s\n", wiki.Title)
		for _, p := range wiki.Paragraphs {
			fmt.Fprintf(w, "%s\n", p)
		}
		if wiki.URL != "" {
			fmt.Fprintf(w, "%s\n", wiki.URL)
		}
		fmt.Fprintln(w)
	}

	if thes := result.Sections.Thesaurus; thes != nil {
		fmt.Fprintln(w, "[thesaurus]")
		if len(thes.Synonyms) > 0 {
			fmt.Fprintf(w, "  synonyms: %s\n", strings.Join(thes.Synonyms, ", "))
		}
		if len(thes.Antonyms) > 0 {
			fmt.Fprintf(w, "  antonyms: %s\n", strings.Join(thes.Antonyms, ", "))
		}
		if len(thes.RelatedTerms) > 0 {
			fmt.Fprintf(w, "  related: %s\n", strings.Join(thes.RelatedTerms, ", "))
		}
		fmt.Fprintln(w)
	}
}
