package calendar

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	cal "github.com/contentcrush/portalcc-sub007/app/calendar"
	"github.com/contentcrush/portalcc-sub007/app/config"
	"github.com/contentcrush/portalcc-sub007/app/services"
)

// GetCalendarViewAPI returns the view model for one view mode and anchor
// date, computed from the latest snapshot.
func GetCalendarViewAPI(c *fiber.Ctx, refresher *services.Refresher) error {
	mode, err := cal.ParseViewMode(c.Query("view"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	cfg := config.AppConfig
	now := time.Now().In(cfg.Location)

	anchor, err := parseAnchor(c.Query("date"), now)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid date, expected YYYY-MM-DD",
		})
	}

	// Optional navigation relative to the anchor, e.g. nav=next.
	if nav := c.Query("nav"); nav != "" {
		switch action := cal.NavAction(nav); action {
		case cal.NavPrevious, cal.NavNext, cal.NavToday:
			anchor = cal.Navigate(mode, anchor, action, now)
		default:
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid nav, expected previous, next or today",
			})
		}
	}

	snap := refresher.Snapshot()
	if snap == nil {
		// First request before the initial refresh finished; fetch inline.
		snap, err = refresher.Refresh(c.UserContext())
		if err != nil {
			return c.Status(503).JSON(fiber.Map{
				"success": false,
				"error":   "Calendar data unavailable",
			})
		}
	}

	view := cal.Build(snap.Data, cal.Options{
		Mode:      mode,
		Anchor:    anchor,
		Now:       now,
		Filter:    filterFromQuery(c),
		HourStart: cfg.HourStart,
		HourEnd:   cfg.HourEnd,
	})

	return c.JSON(fiber.Map{
		"success":     true,
		"view":        view,
		"snapshot_id": snap.ID,
		"fetched_at":  snap.FetchedAt,
	})
}

// ExportICSAPI streams the occurrences around the anchor date as an
// iCalendar feed. The same filter dimensions as the view endpoint apply.
func ExportICSAPI(c *fiber.Ctx, refresher *services.Refresher) error {
	cfg := config.AppConfig
	now := time.Now().In(cfg.Location)

	anchor, err := parseAnchor(c.Query("date"), now)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid date, expected YYYY-MM-DD",
		})
	}

	snap := refresher.Snapshot()
	if snap == nil {
		snap, err = refresher.Refresh(c.UserContext())
		if err != nil {
			return c.Status(503).JSON(fiber.Map{
				"success": false,
				"error":   "Calendar data unavailable",
			})
		}
	}

	view := cal.Build(snap.Data, cal.Options{
		Mode:      cal.ViewAgenda,
		Anchor:    anchor,
		Now:       now,
		Filter:    filterFromQuery(c),
		HourStart: cfg.HourStart,
		HourEnd:   cfg.HourEnd,
	})

	var buf bytes.Buffer
	if err := cal.WriteICS(&buf, view.Agenda, now); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to build calendar export",
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="calendar.ics"`)
	return c.Send(buf.Bytes())
}

// RefreshSnapshotAPI forces a synchronous snapshot refresh.
func RefreshSnapshotAPI(c *fiber.Ctx, refresher *services.Refresher) error {
	snap, err := refresher.Refresh(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to refresh calendar data",
		})
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"snapshot_id": snap.ID,
		"fetched_at":  snap.FetchedAt,
		"counts": fiber.Map{
			"events":   len(snap.Data.Events),
			"tasks":    len(snap.Data.Tasks),
			"projects": len(snap.Data.Projects),
			"clients":  len(snap.Data.Clients),
			"users":    len(snap.Data.Users),
		},
	})
}

func parseAnchor(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return cal.StartOfDay(now), nil
	}
	anchor, err := time.ParseInLocation("2006-01-02", raw, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return anchor, nil
}

func filterFromQuery(c *fiber.Ctx) cal.Filter {
	return cal.Filter{
		ProjectID:  c.Query("project_id"),
		AssigneeID: c.Query("assignee_id"),
		Kind:       cal.Kind(c.Query("kind")),
		Status:     c.Query("status"),
	}
}
