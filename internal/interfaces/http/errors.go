package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
)

// respondError traduce los errores de dominio y de validación a HTTP.
// Los textos son los banners que pinta la consola.
func respondError(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "VALIDATION",
			"fields": verr.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: "Некорректные данные",
		})
	case errors.Is(err, domain.ErrNoSession), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "Неверный email или пароль",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Запись не найдена",
		})
	case errors.Is(err, domain.ErrNotSupported):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
			Code: "UNSUPPORTED", Message: "Операция недоступна",
		})
	case errors.Is(err, domain.ErrDeleteDenied):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DELETE_DENIED", Message: "Сервер отклонил удаление",
		})
	case errors.Is(err, domain.ErrUnreachable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_UNREACHABLE", Message: "Сервер недоступен. Проверьте подключение.",
		})
	case errors.Is(err, domain.ErrUpstreamFault):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_FAULT", Message: "Ошибка на сервере данных",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Внутренняя ошибка",
		})
	}
}
