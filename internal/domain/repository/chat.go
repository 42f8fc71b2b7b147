package repository

import (
	"context"

	"github.com/portusapp/portus-console/internal/domain/entity"
)

// MessageQuery parámetros del pull del canal vivo. Since vacío pide el
// histórico completo; con valor, solo lo posterior al cursor.
type MessageQuery struct {
	ChassisID int
	Limit     int
	Since     string
}

// MessageCreate es un envío del admin: texto y/o archivos, multipart.
type MessageCreate struct {
	ChassisID  int
	SenderType string
	SenderID   string
	Text       string
	Files      []entity.ChatUpload
}

// MessageRepository es el canal vivo de mensajería por chassi.
type MessageRepository interface {
	List(ctx context.Context, q MessageQuery) ([]entity.ChatMessage, error)
	Create(ctx context.Context, in MessageCreate) error
}

// TranscriptRepository es la lectura única del transcript por chassi.
type TranscriptRepository interface {
	Messages(ctx context.Context, chassisID int) ([]entity.TranscriptMessage, error)
	Files(ctx context.Context, messageID int) ([]entity.TranscriptFile, error)
}

// RegisterInput datos del registro de usuario (form-urlencoded al upstream).
type RegisterInput struct {
	Name            string
	Lastname        string
	Email           string
	Password        string
	ConfirmPassword string
	Agree           bool
	Role            string
}

// UserGateway autentica contra el upstream. Ninguna credencial se verifica
// localmente; la consola solo transporta y conserva el snapshot devuelto.
type UserGateway interface {
	Login(ctx context.Context, email, password string) (*entity.User, []byte, error)
	Register(ctx context.Context, in RegisterInput) (*entity.User, []byte, error)
}
