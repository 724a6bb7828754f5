package callscribe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/soniclabs/callscribe/ai/mock"
	sttmock "github.com/soniclabs/callscribe/stt/mock"
)

func TestNewService(t *testing.T) {
	t.Run("create new service", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		service, err := NewService(tmpDir,
			WithTranscriber(sttmock.NewMockClient()),
			WithAnalyst(aimock.NewMockAnalyst()),
		)
		require.NoError(t, err)
		require.NotNil(t, service)
		defer service.Close()

		assert.NotNil(t, service.CallRepository())
		assert.NotNil(t, service.backend)
		assert.NotNil(t, service.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to open storage at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		service, err := NewService(tmpFile,
			WithTranscriber(sttmock.NewMockClient()),
			WithAnalyst(aimock.NewMockAnalyst()),
		)
		assert.Error(t, err)
		assert.Nil(t, service)
	})

	t.Run("error without transcription credentials", func(t *testing.T) {
		service, err := NewService(t.TempDir(),
			WithAnalyst(aimock.NewMockAnalyst()),
		)
		assert.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestService_Close(t *testing.T) {
	service, err := NewService(t.TempDir(),
		WithTranscriber(sttmock.NewMockClient()),
		WithAnalyst(aimock.NewMockAnalyst()),
	)
	require.NoError(t, err)
	require.NotNil(t, service)

	assert.NoError(t, service.Close())
}

func TestService_IngestionPipeline(t *testing.T) {
	service, err := NewService("",
		WithInMemoryStorage(),
		WithTranscriber(sttmock.NewMockClient()),
		WithAnalyst(aimock.NewMockAnalyst()),
	)
	require.NoError(t, err)
	defer service.Close()

	pipeline, err := service.NewIngestionPipeline()
	require.NoError(t, err)
	require.NotNil(t, pipeline)

	result, err := pipeline.Ingest(context.Background(), []byte("audio"), "call.mp3")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Record.Id)

	stored, err := service.CallRepository().GetCall(context.Background(), result.Record.Id)
	require.NoError(t, err)
	assert.Equal(t, "call.mp3", stored.Filename)
}
