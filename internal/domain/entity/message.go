package entity

// ChatMessage es un mensaje del canal vivo por chassi (endpoint
// chassis_messages.php). CreatedAt se conserva como texto: es también el
// cursor "since" del pull incremental y debe reenviarse tal cual.
type ChatMessage struct {
	ID          FlexInt          `json:"id"`
	ChassisID   FlexInt          `json:"chassis_id"`
	SenderType  string           `json:"sender_type"`
	SenderID    FlexString       `json:"sender_id"`
	Text        string           `json:"text"`
	CreatedAt   string           `json:"created_at"`
	Attachments []ChatAttachment `json:"attachments"`
}

// ChatAttachment es un adjunto ya almacenado por el upstream.
type ChatAttachment struct {
	ID       FlexInt `json:"id"`
	FilePath string  `json:"file_path"`
}

// ChatUpload es un archivo a adjuntar en un envío (files[] del multipart).
type ChatUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// TranscriptMessage es un mensaje del transcript de solo lectura
// (endpoint message_chassi). El upstream escribe la clave de fecha como
// "created_ad"; se respeta tal cual.
type TranscriptMessage struct {
	ID         FlexInt `json:"id_message"`
	ChassisID  FlexInt `json:"id_chassi"`
	SenderType string  `json:"type_sender"`
	Text       string  `json:"text"`
	CreatedAt  string  `json:"created_ad"`

	// Files lo rellena la consola con una consulta por mensaje; un fallo en
	// esa consulta degrada el mensaje a "sin adjuntos", nunca al transcript.
	Files []TranscriptFile `json:"-"`
}

// TranscriptFile es un adjunto del transcript (endpoint files_chassi).
type TranscriptFile struct {
	FileName string `json:"file_name"`
}
