package main

import (
	"fmt"
	"io"
	"strings"

	"speakerhub/models"
)

func printReviewed(w io.Writer, rows []models.ReviewedBooking) {
	fmt.Fprintf(w, "Found %d booking(s) with reviewer notes\n", len(rows))
	for i, row := range rows {
		fmt.Fprintln(w, strings.Repeat("=", 60))
		fmt.Fprintf(w, "[%d] booking %s (%s)\n", i+1, row.ID, valueOr(row.Status, "no status"))
		notes := ""
		if row.ReviewerNotes != nil {
			notes = *row.ReviewerNotes
		}
		fmt.Fprintf(w, "    notes:     %s\n", notes)

		if row.Event == nil {
			fmt.Fprintln(w, "    event:     <missing>")
		} else {
			fmt.Fprintf(w, "    event:     %s (%s)\n", valueOr(row.Event.Title, "untitled"), row.Event.ID)
		}
		if row.Organizer == nil {
			fmt.Fprintln(w, "    organizer: <missing>")
		} else {
			fmt.Fprintf(w, "    organizer: %s (%s)\n", valueOr(row.Organizer.FullName, "unnamed"), row.Organizer.ID)
		}
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
