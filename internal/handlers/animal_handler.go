package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	ucAnimal "github.com/BruksfildServices01/vet-clinic/internal/usecase/animal"
)

// ======================================================
// HANDLER
// ======================================================

type AnimalHandler struct {
	list   *ucAnimal.ListAnimals
	get    *ucAnimal.GetAnimal
	create *ucAnimal.CreateAnimal
	update *ucAnimal.UpdateAnimal
	remove *ucAnimal.DeleteAnimal
	log    *slog.Logger
}

func NewAnimalHandler(
	list *ucAnimal.ListAnimals,
	get *ucAnimal.GetAnimal,
	create *ucAnimal.CreateAnimal,
	update *ucAnimal.UpdateAnimal,
	remove *ucAnimal.DeleteAnimal,
	log *slog.Logger,
) *AnimalHandler {
	return &AnimalHandler{
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

func (h *AnimalHandler) List(c *gin.Context) {
	animals, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewAnimalList(animals))
}

func (h *AnimalHandler) Get(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	a, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewAnimalResponse(a))
}

func (h *AnimalHandler) Create(c *gin.Context) {
	var req dto.AnimalRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	a, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewAnimalResponse(a))
}

func (h *AnimalHandler) Update(c *gin.Context) {
	id, err := pathID(c, domain.ErrNotFound)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req dto.AnimalRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	a, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewAnimalResponse(a))
}

func (h *AnimalHandler) Delete(c *gin.Context) {
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
