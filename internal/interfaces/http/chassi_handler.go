package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/application/usecase"
)

// ChassiHandler maneja la pantalla de remolques (protegido).
type ChassiHandler struct {
	uc *usecase.ChassiUseCase
}

func NewChassiHandler(uc *usecase.ChassiUseCase) *ChassiHandler {
	return &ChassiHandler{uc: uc}
}

// List godoc
// @Summary      Recargar y listar remolques
// @Tags         chassi
// @Produce      json
// @Success      200  {object}  dto.ChassiListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/chassi [get]
func (h *ChassiHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Vista filtrada y ordenada de la instantánea en memoria
// @Tags         chassi
// @Produce      json
// @Param        search  query  string  false  "Subcadena del número"
// @Param        status  query  string  false  "Estado derivado o Все"
// @Param        sort    query  string  false  "esp_asc|esp_desc|number_asc|number_desc"
// @Success      200  {object}  dto.ChassiListResponse
// @Router       /api/chassi/view [get]
func (h *ChassiHandler) View(c *fiber.Ctx) error {
	var q dto.ChassiQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.Query(q))
}

// Create godoc
// @Summary      Crear remolque
// @Tags         chassi
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveChassiRequest  true  "Datos del remolque"
// @Success      201   {object}  dto.ChassiListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chassi [post]
func (h *ChassiHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveChassiRequest
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
// @Summary      Actualizar remolque
// @Tags         chassi
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del remolque"
// @Param        body  body  dto.SaveChassiRequest  true  "Datos del remolque"
// @Success      200   {object}  dto.ChassiListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chassi/{id} [put]
func (h *ChassiHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveChassiRequest
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
// @Summary      Eliminar remolque
// @Tags         chassi
// @Produce      json
// @Param        id  path  int  true  "ID del remolque"
// @Success      200  {object}  dto.ChassiListResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/chassi/{id} [delete]
func (h *ChassiHandler) Delete(c *fiber.Ctx) error {
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
