package core

import (
	"fmt"
	"path/filepath"

	"askpass/internal/core/domain"
	"askpass/internal/ports"

	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".askpass.yaml")

type ConfigRepository interface {
	Load() (*domain.Config, error)
}

// FileSystemConfigRepository reads ~/.askpass.yaml, falling back to built-in
// defaults when the file is missing. The parsed config is cached for the
// process lifetime.
type FileSystemConfigRepository struct {
	fileSystem ports.FileSystem
	config     *domain.Config
}

func ProvideFileSystemConfigRepository(fileSystem ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{fileSystem: fileSystem}
}

func (r *FileSystemConfigRepository) Load() (*domain.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	config := &domain.Config{}
	exists, err := r.fileSystem.FileExists(configFilePath)
	if err != nil {
		return nil, err
	}
	if exists {
		content, err := r.fileSystem.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFilePath, err)
		}
	}

	if config.Prompt == "" {
		config.Prompt = domain.DefaultPrompt
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	r.config = config
	return config, nil
}
