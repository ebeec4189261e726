package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dbm "yatra/internal/models/db_models"
	"yatra/internal/repositories"
)

type ExportServiceInterface interface {
	ExportICS(ctx context.Context, itineraryID string) (string, []byte, error)
	ExportMarkdown(ctx context.Context, itineraryID string) (string, []byte, error)
}

type exportService struct {
	repo repositories.ItineraryRepository
}

func NewExportService(repo repositories.ItineraryRepository) ExportServiceInterface {
	return &exportService{repo: repo}
}

const icsTimestampLayout = "20060102T150405Z"

// ExportICS renders the stored trip as a single calendar event spanning the
// trip dates, with the itinerary content as the description.
func (s *exportService) ExportICS(ctx context.Context, itineraryID string) (string, []byte, error) {
	itinerary, err := s.repo.GetByID(ctx, itineraryID)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC().Format(icsTimestampLayout)
	start := itinerary.StartDate.UTC().Format(icsTimestampLayout)
	end := itinerary.EndDate.UTC().Format(icsTimestampLayout)
	description := strings.ReplaceAll(itinerary.Content, "\n", "\\n")

	ics := fmt.Sprintf(`BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Yatra//Travel Itinerary//EN
BEGIN:VEVENT
UID:%s@yatra.app
DTSTAMP:%s
DTSTART:%s
DTEND:%s
SUMMARY:%s Trip
DESCRIPTION:%s
LOCATION:%s
STATUS:CONFIRMED
END:VEVENT
END:VCALENDAR`,
		itinerary.ID, now, start, end,
		itinerary.Destination, description, itinerary.Destination)

	filename := fmt.Sprintf("%s-itinerary.ics", itinerary.Destination)
	return filename, []byte(ics), nil
}

// ExportMarkdown renders the trip summary, the itinerary body and the
// planning rationale as one downloadable document.
func (s *exportService) ExportMarkdown(ctx context.Context, itineraryID string) (string, []byte, error) {
	itinerary, err := s.repo.GetByID(ctx, itineraryID)
	if err != nil {
		return "", nil, err
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s Trip\n\n", itinerary.Destination)
	fmt.Fprintf(&doc, "- **Dates:** %s to %s\n",
		itinerary.StartDate.Format("2006-01-02"), itinerary.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&doc, "- **Budget:** %s\n", itinerary.Budget)
	fmt.Fprintf(&doc, "- **Travelers:** %d\n", itinerary.Travelers)
	fmt.Fprintf(&doc, "- **Pace:** %s\n", itinerary.Pace)
	if interests := decodeInterests(itinerary); len(interests) > 0 {
		fmt.Fprintf(&doc, "- **Interests:** %s\n", strings.Join(interests, ", "))
	}
	doc.WriteString("\n")
	doc.WriteString(itinerary.Content)
	doc.WriteString("\n\n## Planning Notes\n\n")
	doc.WriteString(itinerary.Reasoning)
	doc.WriteString("\n")

	filename := fmt.Sprintf("%s-itinerary.md", itinerary.Destination)
	return filename, []byte(doc.String()), nil
}

func decodeInterests(itinerary *dbm.Itinerary) []string {
	var interests []string
	if err := json.Unmarshal(itinerary.Interests, &interests); err != nil {
		return nil
	}
	return interests
}
