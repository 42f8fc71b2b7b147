package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/report"
)

// ReportHandler genera el informe PDF de flota (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Fleet godoc
// @Summary      Informe PDF de flota (remolques y camiones)
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/report/fleet [get]
func (h *ReportHandler) Fleet(c *fiber.Ctx) error {
	data, err := h.uc.Build(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="flottenbericht.pdf"`)
	return c.Send(data)
}
