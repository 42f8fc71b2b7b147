package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/chat"
	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain/entity"
)

// ChatHandler maneja el diálogo en vivo y el transcript (protegido).
type ChatHandler struct {
	manager    *chat.Manager
	transcript *chat.TranscriptUseCase
}

func NewChatHandler(manager *chat.Manager, transcript *chat.TranscriptUseCase) *ChatHandler {
	return &ChatHandler{manager: manager, transcript: transcript}
}

// Open godoc
// @Summary      Abrir el diálogo en vivo de un remolque
// @Tags         chat
// @Produce      json
// @Param        id  path  int  true  "ID del remolque"
// @Success      201  {object}  dto.OpenDialogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chassi/{id}/chat [post]
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	adminID := ""
	if u := GetCurrentUser(c); u != nil {
		adminID = fmt.Sprintf("%d", u.ID)
	}
	d, err := h.manager.Open(c.UserContext(), id, adminID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OpenDialogResponse{DialogID: d.ID, ChassisID: d.ChassisID})
}

// Snapshot godoc
// @Summary      Estado actual de un diálogo abierto
// @Tags         chat
// @Produce      json
// @Param        dialogID  path  string  true  "ID del diálogo"
// @Success      200  {object}  dto.DialogSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/{dialogID} [get]
func (h *ChatHandler) Snapshot(c *fiber.Ctx) error {
	d, ok := h.manager.Get(c.Params("dialogID"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Диалог не найден"})
	}
	return c.JSON(d.Snapshot())
}

// Send godoc
// @Summary      Enviar un mensaje al diálogo (multipart: text + files)
// @Tags         chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        dialogID  path      string  true   "ID del diálogo"
// @Param        text      formData  string  false  "Texto del mensaje"
// @Success      200  {object}  dto.DialogSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/{dialogID}/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	d, ok := h.manager.Get(c.Params("dialogID"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Диалог не найден"})
	}
	text := c.FormValue("text")

	var uploads []entity.ChatUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			up, err := readUpload(fh)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo ilegible"})
			}
			uploads = append(uploads, up)
		}
	}

	if err := d.Send(c.UserContext(), text, uploads); err != nil {
		return respondError(c, err)
	}
	return c.JSON(d.Snapshot())
}

// Close godoc
// @Summary      Cerrar un diálogo abierto
// @Tags         chat
// @Param        dialogID  path  string  true  "ID del diálogo"
// @Success      204
// @Router       /api/chat/{dialogID} [delete]
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	h.manager.Close(c.Params("dialogID"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Transcript godoc
// @Summary      Histórico de mensajes de un remolque con adjuntos
// @Tags         chat
// @Produce      json
// @Param        id  path  int  true  "ID del remolque"
// @Success      200  {object}  dto.TranscriptResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chassi/{id}/transcript [get]
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.transcript.Build(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func readUpload(fh *multipart.FileHeader) (entity.ChatUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.ChatUpload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return entity.ChatUpload{}, err
	}
	return entity.ChatUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
