// Journal prints what the app saved locally: prayer requests and the
// events added to the calendar.
package main

import (
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/gccma/gccma/internal/state"
)

func main() {
	flags := pflag.NewFlagSet("journal", pflag.ExitOnError)
	dbPath := flags.StringP("db", "d", "", "state database (default: XDG data directory)")
	_ = flags.Parse(os.Args[1:])

	var (
		mgr *state.Manager
		err error
	)
	if *dbPath != "" {
		mgr, err = state.OpenPath(*dbPath)
	} else {
		mgr, err = state.Open()
	}
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer mgr.Close()

	prayers, err := mgr.ListPrayers()
	if err != nil {
		log.Fatalf("Failed to list prayer requests: %v", err)
	}
	log.Printf("%d prayer requests:", len(prayers))
	for _, p := range prayers {
		urgent := ""
		if p.Request.Urgent {
			urgent = " [urgent]"
		}
		log.Printf("  %s  %s (%s)%s: %s",
			humanize.Time(p.SubmittedAt), p.Request.DisplayName(), p.Request.Category, urgent, p.Request.Text)
	}

	entries, err := mgr.ListCalendar()
	if err != nil {
		log.Fatalf("Failed to list calendar: %v", err)
	}
	log.Printf("%d calendar entries:", len(entries))
	for _, e := range entries {
		log.Printf("  %s  %s @ %s (added %s)",
			e.Start.Format(time.DateTime), e.Title, e.Location, humanize.Time(e.AddedAt))
	}
}
