package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
)

func printBooksTable(out io.Writer, books []gateway.Book) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRE\tQUANTITY")
	fmt.Fprintln(w, "──\t─────\t──────\t─────\t────────")

	for _, book := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			book.ID,
			book.Title,
			book.Author,
			book.Genre,
			book.Quantity,
		)
	}

	w.Flush()
}

func printBookingsTable(out io.Writer, bookings []gateway.Booking, showUser bool) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if showUser {
		fmt.Fprintln(w, "ID\tBOOK\tUSER\tBOOKED AT\tRETURNED")
		fmt.Fprintln(w, "──\t────\t────\t─────────\t────────")
	} else {
		fmt.Fprintln(w, "ID\tBOOK\tBOOKED AT\tRETURNED")
		fmt.Fprintln(w, "──\t────\t─────────\t────────")
	}

	for _, booking := range bookings {
		returned := "no"
		if booking.Returned {
			returned = "yes"
		}
		if showUser {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				booking.ID, booking.BookTitle, booking.Username, booking.BookingDate, returned)
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				booking.ID, booking.BookTitle, booking.BookingDate, returned)
		}
	}

	w.Flush()
}

func printUsersTable(out io.Writer, users []gateway.User) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE")
	fmt.Fprintln(w, "──\t────────\t─────\t────")

	for _, user := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			user.ID, user.Username, user.Email, user.Role)
	}

	w.Flush()
}

func printBookDetail(out io.Writer, book gateway.Book) {
	fmt.Fprintf(out, "ID:       %d\n", book.ID)
	fmt.Fprintf(out, "Title:    %s\n", book.Title)
	fmt.Fprintf(out, "Author:   %s\n", book.Author)
	if book.Genre != "" {
		fmt.Fprintf(out, "Genre:    %s\n", book.Genre)
	}
	fmt.Fprintf(out, "Quantity: %d\n", book.Quantity)
}

// renderChatReply extracts a readable answer from the assistant payload,
// falling back to the raw JSON when the shape is unknown.
func renderChatReply(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, key := range []string{"response", "reply", "message", "answer"} {
			if val, exists := obj[key]; exists {
				if err := json.Unmarshal(val, &text); err == nil {
					return text
				}
			}
		}
	}

	return string(raw)
}
