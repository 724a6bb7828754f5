// Copyright 2026 Soniclabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package callscribe wires the call-ingestion service together: storage
// backend, transcription client, analyst, and the ingestion pipeline.
package callscribe

import (
	"log/slog"

	"github.com/soniclabs/callscribe/ai"
	"github.com/soniclabs/callscribe/ai/openai"
	"github.com/soniclabs/callscribe/ingestion"
	"github.com/soniclabs/callscribe/storage"
	"github.com/soniclabs/callscribe/storage/badger"
	"github.com/soniclabs/callscribe/stt"
	"github.com/soniclabs/callscribe/stt/elevenlabs"
)

// Service aggregates the components of the call-ingestion system.
type Service struct {
	backend  *badger.Backend
	callRepo storage.CallRepository
	analyst  ai.Analyst
	stt      stt.Client
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig      *ai.Config
	elevenAPIKey  string
	elevenOptions []elevenlabs.Option
	transcriber   stt.Client
	analyst       ai.Analyst
	inMemory      bool
}

// WithAIConfig sets the analyst configuration.
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = cfg
	}
}

// WithElevenLabs configures the ElevenLabs transcription client.
func WithElevenLabs(apiKey string, opts ...elevenlabs.Option) ServiceOption {
	return func(o *serviceOptions) {
		o.elevenAPIKey = apiKey
		o.elevenOptions = opts
	}
}

// WithTranscriber injects a pre-built transcription client, overriding
// WithElevenLabs. Mainly for tests.
func WithTranscriber(client stt.Client) ServiceOption {
	return func(o *serviceOptions) {
		o.transcriber = client
	}
}

// WithAnalyst injects a pre-built analyst, overriding WithAIConfig.
// Mainly for tests.
func WithAnalyst(analyst ai.Analyst) ServiceOption {
	return func(o *serviceOptions) {
		o.analyst = analyst
	}
}

// WithInMemoryStorage uses an in-memory store instead of a directory.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens storage at filePath and builds the transcription and
// analysis clients.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	callRepo, err := badger.NewCallRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	transcriber := options.transcriber
	if transcriber == nil {
		transcriber, err = elevenlabs.NewClient(options.elevenAPIKey, options.elevenOptions...)
		if err != nil {
			callRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	analyst := options.analyst
	if analyst == nil {
		analyst, err = openai.NewAnalyst(options.aiConfig)
		if err != nil {
			callRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:  backend,
		callRepo: callRepo,
		analyst:  analyst,
		stt:      transcriber,
		logger:   slog.Default(),
	}, nil
}

// Close releases all service resources.
func (s *Service) Close() error {
	if err := s.callRepo.Close(); err != nil {
		s.logger.Error("error closing call repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CallRepository returns the call record store.
func (s *Service) CallRepository() storage.CallRepository {
	return s.callRepo
}

// NewIngestionPipeline builds a pipeline over the service's components.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.callRepo, s.stt, s.analyst, opts...)
}
