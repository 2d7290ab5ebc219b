// Command example seeds an in-memory store with a sample semester and
// runs the full derivation chain: recurrence expansion, month and week
// grids, activity grouping and an iCalendar export.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lfmelo/agenda/activity"
	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/calendar"
	"github.com/lfmelo/agenda/config"
	"github.com/lfmelo/agenda/ics"
	"github.com/lfmelo/agenda/schedule"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if path := os.Getenv("AGENDA_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("loading config failed", "path", path, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx := context.Background()
	store := seedStore(ctx, logger)

	engine := schedule.NewEngineWithConfig(cfg.EngineConfig())
	defer engine.Close()

	// Expand the month the sample data lives in.
	reference := caldate.New(2023, time.October, 2)
	templates, err := store.ListTemplates(ctx)
	if err != nil {
		logger.Error("listing templates failed", "err", err)
		os.Exit(1)
	}

	instances, err := engine.Expand(templates, reference.FirstOfMonth(), reference.LastOfMonth())
	if err != nil {
		logger.Error("expansion failed", "err", err)
		os.Exit(1)
	}
	logger.Info("expanded month", "month", reference.FirstOfMonth(),
		"templates", len(templates), "instances", len(instances))

	builder := calendar.NewBuilderWithHours(cfg.Calendar.WeekFirstHour, cfg.Calendar.WeekLastHour)
	filter := calendar.AllDisciplines()

	printMonth(builder.BuildMonthGrid(reference, instances, filter))
	printWeek(builder.BuildWeekGrid(reference, instances, filter))

	activities, err := store.ListActivities(ctx)
	if err != nil {
		logger.Error("listing activities failed", "err", err)
		os.Exit(1)
	}
	printGroups(activity.FilterAndGroup(activities, "", activity.FilterAll, reference))

	export, err := ics.Encode(ics.Calendar("Semestre 2023.2", instances))
	if err != nil {
		logger.Error("ics export failed", "err", err)
		os.Exit(1)
	}
	logger.Info("ics export ready", "bytes", len(export))
}

func printMonth(cells []calendar.DayCell) {
	fmt.Println("== Month grid ==")
	for i, cell := range cells {
		if len(cell.Events) == 0 {
			continue
		}
		marker := " "
		if cell.InCurrentMonth {
			marker = "*"
		}
		fmt.Printf("cell %2d %s %s:", i, marker, cell.Date)
		for _, ev := range cell.Events {
			fmt.Printf(" [%s %s]", ev.StartTime, ev.Title)
		}
		fmt.Println()
	}
}

func printWeek(grid calendar.WeekGrid) {
	fmt.Println("== Week grid ==")
	for _, row := range grid.Hours {
		line := row.Hour.String()
		empty := true
		for i, slot := range row.Slots {
			if ev, ok := slot.Get(); ok {
				line += fmt.Sprintf("  %s@%s", ev.Title, grid.Days[i].Date)
				empty = false
			}
		}
		if !empty {
			fmt.Println(line)
		}
	}
}

func printGroups(groups activity.Groups) {
	fmt.Println("== Activities ==")
	fmt.Printf("total=%d todo=%d done=%d\n",
		groups.Counts.Total, groups.Counts.Todo, groups.Counts.Done)
	show := func(label string, list []activity.Activity) {
		for _, a := range list {
			fmt.Printf("%-12s %s\n", label, a.Title)
		}
	}
	show("today", groups.DueToday)
	show("next week", groups.DueNextWeek)
	show("completed", groups.Completed)
	show("other", groups.Other)
}
