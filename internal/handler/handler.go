package handler

import "github.com/bagdasarian/crew-scheduler/internal/service"

type Handler struct {
	scheduleService service.ScheduleService
}

func NewHandler(scheduleService service.ScheduleService) *Handler {
	return &Handler{
		scheduleService: scheduleService,
	}
}
