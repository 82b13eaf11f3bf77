package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	ucVeterinarian "github.com/BruksfildServices01/vet-clinic/internal/usecase/veterinarian"
)

// ======================================================
// HANDLER
// ======================================================

type VeterinarianHandler struct {
	list   *ucVeterinarian.ListVeterinarians
	get    *ucVeterinarian.GetVeterinarian
	create *ucVeterinarian.CreateVeterinarian
	update *ucVeterinarian.UpdateVeterinarian
	remove *ucVeterinarian.DeleteVeterinarian
	log    *slog.Logger
}

func NewVeterinarianHandler(
	list *ucVeterinarian.ListVeterinarians,
	get *ucVeterinarian.GetVeterinarian,
	create *ucVeterinarian.CreateVeterinarian,
	update *ucVeterinarian.UpdateVeterinarian,
	remove *ucVeterinarian.DeleteVeterinarian,
	log *slog.Logger,
) *VeterinarianHandler {
	return &VeterinarianHandler{
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

func (h *VeterinarianHandler) List(c *gin.Context) {
	vets, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewVeterinarianList(vets))
}

func (h *VeterinarianHandler) Get(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	v, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewVeterinarianResponse(v))
}

func (h *VeterinarianHandler) Create(c *gin.Context) {
	var req dto.VeterinarianRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	v, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewVeterinarianResponse(v))
}

func (h *VeterinarianHandler) Update(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req dto.VeterinarianRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	v, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewVeterinarianResponse(v))
}

func (h *VeterinarianHandler) Delete(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if _, err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
