package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/vet-clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   *ucAppointment.ListAppointments
	get    *ucAppointment.GetAppointment
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	remove *ucAppointment.DeleteAppointment
	log    *slog.Logger
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	log *slog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

// ======================================================
// ROUTES
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewAppointmentList(apps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentResponse(ap))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewAppointmentResponse(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req dto.AppointmentRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentResponse(ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
