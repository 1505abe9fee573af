package advice

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// urgentKeywords is the fixed vocabulary scanned over free-text notes.
// A match always produces an urgent warning ahead of every other output,
// regardless of how low the computed score is. The list is intentionally
// closed: no fuzzy matching, no model involvement.
var urgentKeywords = []string{
	"numbness",
	"tingling",
	"vision loss",
	"vision changes",
	"chest pain",
	"persistent insomnia",
	"fainting",
	"radiating pain",
	"self-harm",
	"harming myself",
}

// ScanNotes checks the record's free-text fields against the urgent keyword
// vocabulary and returns one warning per matched keyword, in vocabulary order.
func ScanNotes(schema domain.Schema, rec *domain.Record) []string {
	var text strings.Builder
	for _, key := range schema.NotesKeys() {
		if v := rec.Str(key); v != "" {
			text.WriteString(strings.ToLower(v))
			text.WriteString("\n")
		}
	}
	notes := text.String()
	if notes == "" {
		return nil
	}

	var warnings []string
	for _, kw := range urgentKeywords {
		if strings.Contains(notes, kw) {
			warnings = append(warnings, urgentWarning(kw))
		}
	}
	return warnings
}

func urgentWarning(keyword string) string {
	return fmt.Sprintf("URGENT: your notes mention %q: seek medical evaluation promptly. This warning stands regardless of today's scores.", keyword)
}
