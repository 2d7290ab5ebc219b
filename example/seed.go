package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/mo"

	"github.com/lfmelo/agenda/activity"
	"github.com/lfmelo/agenda/caldate"
	"github.com/lfmelo/agenda/schedule"
	"github.com/lfmelo/agenda/storage/memory"
)

// seedStore fills an in-memory store with a sample semester: four
// disciplines, their weekly classes, a couple of one-off events and a
// handful of activities.
func seedStore(ctx context.Context, logger *slog.Logger) *memory.Store {
	store := memory.New()

	disciplines := []schedule.Discipline{
		{ID: "1", Name: "Cálculo I", Color: "blue"},
		{ID: "2", Name: "História da Arte", Color: "amber"},
		{ID: "3", Name: "Física Geral", Color: "violet"},
		{ID: "4", Name: "Algoritmos", Color: "emerald"},
	}
	for i := range disciplines {
		if err := store.CreateDiscipline(ctx, &disciplines[i]); err != nil {
			logger.Error("seeding discipline failed", "name", disciplines[i].Name, "err", err)
		}
	}

	templates := []schedule.EventTemplate{
		{
			ID:             "1",
			Title:          "Cálculo I",
			Discipline:     mo.Some(disciplines[0]),
			Kind:           schedule.EventClass,
			StartDate:      caldate.New(2023, time.October, 2),
			EndDate:        caldate.New(2023, time.October, 2),
			StartTime:      caldate.NewClock(8, 0),
			EndTime:        caldate.NewClock(10, 0),
			Location:       "Sala 302",
			Recurring:      true,
			RecurrenceDays: schedule.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday),
		},
		{
			ID:             "2",
			Title:          "História da Arte",
			Discipline:     mo.Some(disciplines[1]),
			Kind:           schedule.EventClass,
			StartDate:      caldate.New(2023, time.October, 3),
			EndDate:        caldate.New(2023, time.October, 3),
			StartTime:      caldate.NewClock(10, 0),
			EndTime:        caldate.NewClock(12, 0),
			Location:       "Aud. B",
			Recurring:      true,
			RecurrenceDays: schedule.NewWeekdaySet(time.Tuesday, time.Thursday),
		},
		{
			ID:             "3",
			Title:          "Algoritmos",
			Discipline:     mo.Some(disciplines[3]),
			Kind:           schedule.EventClass,
			StartDate:      caldate.New(2023, time.October, 2),
			EndDate:        caldate.New(2023, time.October, 2),
			StartTime:      caldate.NewClock(14, 0),
			EndTime:        caldate.NewClock(16, 0),
			Location:       "Lab. 4",
			Recurring:      true,
			RecurrenceDays: schedule.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday),
		},
		{
			ID:         "4",
			Title:      "ENTREGA Projeto Final",
			Discipline: mo.Some(disciplines[3]),
			Kind:       schedule.EventDelivery,
			StartDate:  caldate.New(2023, time.October, 5),
			EndDate:    caldate.New(2023, time.October, 5),
			StartTime:  caldate.NewClock(14, 0),
			EndTime:    caldate.NewClock(14, 0),
		},
		{
			ID:             "5",
			Title:          "Física Geral",
			Discipline:     mo.Some(disciplines[2]),
			Kind:           schedule.EventClass,
			StartDate:      caldate.New(2023, time.October, 4),
			EndDate:        caldate.New(2023, time.October, 4),
			StartTime:      caldate.NewClock(16, 0),
			EndTime:        caldate.NewClock(18, 0),
			Location:       "Lab. Físico",
			Recurring:      true,
			RecurrenceDays: schedule.NewWeekdaySet(time.Wednesday),
		},
		{
			ID:         "6",
			Title:      "Prova 1: Cálculo",
			Discipline: mo.Some(disciplines[0]),
			Kind:       schedule.EventExam,
			StartDate:  caldate.New(2023, time.October, 11),
			EndDate:    caldate.New(2023, time.October, 11),
			StartTime:  caldate.NewClock(8, 0),
			EndTime:    caldate.NewClock(10, 0),
			Location:   "Sala 302",
		},
	}
	for i := range templates {
		if err := store.CreateTemplate(ctx, &templates[i]); err != nil {
			logger.Error("seeding template failed", "title", templates[i].Title, "err", err)
		}
	}

	activities := []activity.Activity{
		{
			ID:          "1",
			Title:       "Relatório de Física Quântica",
			Description: mo.Some("Elaborar relatório completo sobre experimentos realizados."),
			Discipline:  mo.Some(disciplines[2]),
			Kind:        activity.KindAssignment,
			DueDate:     mo.Some(caldate.New(2023, time.October, 5)),
			DueTime:     mo.Some(caldate.NewClock(23, 59)),
			Priority:    activity.PriorityHigh,
			Status:      activity.StatusTodo,
		},
		{
			ID:         "2",
			Title:      "Leitura Capítulo 4: Derivadas",
			Discipline: mo.Some(disciplines[0]),
			Kind:       activity.KindStudy,
			DueDate:    mo.Some(caldate.New(2023, time.October, 2)),
			Priority:   activity.PriorityMedium,
			Status:     activity.StatusTodo,
		},
		{
			ID:          "3",
			Title:       "Seminário de Genética",
			Description: mo.Some("Apresentação sobre genética molecular."),
			Kind:        activity.KindSeminar,
			DueDate:     mo.Some(caldate.New(2023, time.October, 15)),
			DueTime:     mo.Some(caldate.NewClock(10, 0)),
			Priority:    activity.PriorityHigh,
			Status:      activity.StatusTodo,
		},
		{
			ID:          "4",
			Title:       "Projeto Final de Estrutura de Dados",
			Description: mo.Some("Implementar árvore binária de busca."),
			Discipline:  mo.Some(disciplines[3]),
			Kind:        activity.KindAssignment,
			DueDate:     mo.Some(caldate.New(2023, time.October, 20)),
			DueTime:     mo.Some(caldate.NewClock(23, 59)),
			Priority:    activity.PriorityHigh,
			Status:      activity.StatusDoing,
		},
		{
			ID:         "5",
			Title:      "Quiz de História da Arte",
			Discipline: mo.Some(disciplines[1]),
			Kind:       activity.KindExam,
			DueDate:    mo.Some(caldate.New(2023, time.September, 28)),
			DueTime:    mo.Some(caldate.NewClock(14, 0)),
			Priority:   activity.PriorityMedium,
			Status:     activity.StatusDone,
		},
	}
	for i := range activities {
		if err := store.CreateActivity(ctx, &activities[i]); err != nil {
			logger.Error("seeding activity failed", "title", activities[i].Title, "err", err)
		}
	}

	return store
}
