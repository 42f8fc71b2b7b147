package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/application/usecase"
)

// FahrerHandler maneja la pantalla de conductores (protegido).
type FahrerHandler struct {
	uc *usecase.FahrerUseCase
}

func NewFahrerHandler(uc *usecase.FahrerUseCase) *FahrerHandler {
	return &FahrerHandler{uc: uc}
}

// List godoc
// @Summary      Recargar y listar conductores
// @Tags         fahrer
// @Produce      json
// @Success      200  {object}  dto.FahrerListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/fahrer [get]
func (h *FahrerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Vista filtrada de la instantánea en memoria
// @Tags         fahrer
// @Produce      json
// @Param        search  query  string  false  "Subcadena de nombre o email"
// @Success      200  {object}  dto.FahrerListResponse
// @Router       /api/fahrer/view [get]
func (h *FahrerHandler) View(c *fiber.Ctx) error {
	var q dto.FahrerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.Query(q))
}

// Create godoc
// @Summary      Crear conductor
// @Tags         fahrer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveFahrerRequest  true  "Datos del conductor"
// @Success      201   {object}  dto.FahrerListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fahrer [post]
func (h *FahrerHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveFahrerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), 0, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar conductor
// @Tags         fahrer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del conductor"
// @Param        body  body  dto.SaveFahrerRequest  true  "Datos del conductor"
// @Success      200   {object}  dto.FahrerListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fahrer/{id} [put]
func (h *FahrerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveFahrerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar conductor (no soportado por el upstream)
// @Tags         fahrer
// @Produce      json
// @Param        id  path  int  true  "ID del conductor"
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/fahrer/{id} [delete]
func (h *FahrerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
