package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

type fakeTranscriptRepo struct {
	msgs     []entity.TranscriptMessage
	msgsErr  error
	files    map[int][]entity.TranscriptFile
	filesErr map[int]error
}

func (f *fakeTranscriptRepo) Messages(context.Context, int) ([]entity.TranscriptMessage, error) {
	if f.msgsErr != nil {
		return nil, f.msgsErr
	}
	return f.msgs, nil
}

func (f *fakeTranscriptRepo) Files(_ context.Context, messageID int) ([]entity.TranscriptFile, error) {
	if err := f.filesErr[messageID]; err != nil {
		return nil, err
	}
	return f.files[messageID], nil
}

type fakeChassiLister struct {
	items []entity.Chassi
	err   error
}

func (f *fakeChassiLister) List(context.Context) ([]entity.Chassi, error) { return f.items, f.err }
func (f *fakeChassiLister) Create(context.Context, repository.ChassiWrite) error {
	return nil
}
func (f *fakeChassiLister) Update(context.Context, repository.ChassiWrite) error {
	return nil
}
func (f *fakeChassiLister) Delete(context.Context, int) error { return nil }

func TestTranscript_TituloDesdeElListado(t *testing.T) {
	chassis := &fakeChassiLister{items: []entity.Chassi{
		{ID: 3, Nummer: "AA-100"},
		{ID: 7, Nummer: "BB-200"},
	}}
	repo := &fakeTranscriptRepo{
		msgs: []entity.TranscriptMessage{
			{ID: 1, SenderType: "driver", Text: "llegué", CreatedAt: "2024-06-15 08:00:00"},
		},
	}
	uc := NewTranscriptUseCase(chassis, repo, logger.Nop())

	out, err := uc.Build(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "BB-200", out.Title)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "driver", out.Messages[0].Sender)
}

func TestTranscript_TituloDegradaSiElListadoFalla(t *testing.T) {
	chassis := &fakeChassiLister{err: errors.New("caído")}
	uc := NewTranscriptUseCase(chassis, &fakeTranscriptRepo{}, logger.Nop())

	out, err := uc.Build(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "№42", out.Title)
}

func TestTranscript_AdjuntosPorMensajeConDegradacion(t *testing.T) {
	chassis := &fakeChassiLister{}
	repo := &fakeTranscriptRepo{
		msgs: []entity.TranscriptMessage{
			{ID: 1, Text: "con foto"},
			{ID: 2, Text: "sin adjuntos resolubles"},
		},
		files: map[int][]entity.TranscriptFile{
			1: {{FileName: "foto.jpg"}},
		},
		filesErr: map[int]error{2: errors.New("adjuntos caídos")},
	}
	uc := NewTranscriptUseCase(chassis, repo, logger.Nop())

	out, err := uc.Build(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, []string{"foto.jpg"}, out.Messages[0].Files)
	assert.Empty(t, out.Messages[1].Files,
		"el fallo de adjuntos degrada solo ese mensaje, no el transcript")
}

func TestTranscript_MensajesCaidosDanTranscriptVacio(t *testing.T) {
	uc := NewTranscriptUseCase(&fakeChassiLister{}, &fakeTranscriptRepo{msgsErr: errors.New("caído")}, logger.Nop())

	out, err := uc.Build(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, out.Messages)
}
