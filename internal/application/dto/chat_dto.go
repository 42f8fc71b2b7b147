package dto

// OpenDialogResponse identifica el diálogo en vivo recién abierto.
type OpenDialogResponse struct {
	DialogID  string `json:"dialog_id"`
	ChassisID int    `json:"chassis_id"`
}

// ChatMessageView mensaje del diálogo en vivo tal como lo pinta la consola.
type ChatMessageView struct {
	ID          int      `json:"id"`
	SenderType  string   `json:"sender_type"`
	SenderID    string   `json:"sender_id"`
	Text        string   `json:"text"`
	CreatedAt   string   `json:"created_at"`
	Attachments []string `json:"attachments"`
}

type DialogSnapshotResponse struct {
	DialogID string            `json:"dialog_id"`
	Messages []ChatMessageView `json:"messages"`
}

// TranscriptMessageView mensaje del histórico con sus adjuntos resueltos.
// Un fallo al traer adjuntos deja Files vacío solo en ese mensaje.
type TranscriptMessageView struct {
	ID        int      `json:"id"`
	Sender    string   `json:"sender"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"created_at"`
	Files     []string `json:"files"`
}

type TranscriptResponse struct {
	Title     string                  `json:"title"`
	ChassisID int                     `json:"chassis_id"`
	Messages  []TranscriptMessageView `json:"messages"`
}
