package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/application/usecase"
)

// LkwHandler maneja la pantalla de camiones (protegido).
type LkwHandler struct {
	uc *usecase.LkwUseCase
}

func NewLkwHandler(uc *usecase.LkwUseCase) *LkwHandler {
	return &LkwHandler{uc: uc}
}

// List godoc
// @Summary      Recargar y listar camiones
// @Tags         lkw
// @Produce      json
// @Success      200  {object}  dto.LkwListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/lkw [get]
func (h *LkwHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Vista filtrada y ordenada de la instantánea en memoria
// @Tags         lkw
// @Produce      json
// @Param        search  query  string  false  "Subcadena de número o modelo"
// @Param        sort    query  string  false  "esp_asc|esp_desc|number_asc|number_desc|year_asc|year_desc"
// @Success      200  {object}  dto.LkwListResponse
// @Router       /api/lkw/view [get]
func (h *LkwHandler) View(c *fiber.Ctx) error {
	var q dto.LkwQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.Query(q))
}

// Create godoc
// @Summary      Crear camión
// @Tags         lkw
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveLkwRequest  true  "Datos del camión"
// @Success      201   {object}  dto.LkwListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lkw [post]
func (h *LkwHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveLkwRequest
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
// @Summary      Actualizar camión
// @Tags         lkw
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del camión"
// @Param        body  body  dto.SaveLkwRequest  true  "Datos del camión"
// @Success      200   {object}  dto.LkwListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lkw/{id} [put]
func (h *LkwHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveLkwRequest
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
// @Summary      Eliminar camión
// @Tags         lkw
// @Produce      json
// @Param        id  path  int  true  "ID del camión"
// @Success      200  {object}  dto.LkwListResponse
// @Router       /api/lkw/{id} [delete]
func (h *LkwHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
