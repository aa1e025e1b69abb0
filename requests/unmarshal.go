package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/dirforest/internal/util"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Format of a seed document
type Format string

const (
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// FormatFromPath picks a Format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat, nil
	case ".json":
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("unknown seed file extension: %s", path)
	}
}

// Unmarshal decodes a list of requests. Entries that fail validation are left
// out and reported together in the returned error; the valid ones are still
// returned.
func Unmarshal(data []byte, format Format) ([]Request, error) {
	var dtos []RequestDTO
	switch format {
	case JSONFormat:
		if err := json.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requests: %w", err)
		}
	case YAMLFormat:
		if err := yaml.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requests: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	var errs *multierror.Error
	reqs := make([]Request, 0, len(dtos))
	for i, dto := range dtos {
		req := convertDTO(dto)
		if err := req.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("request %d: %w", i, err))
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, errs.ErrorOrNil()
}

// LoadFile reads and decodes a seed file, choosing the format by extension
func LoadFile(path string) ([]Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, format)
}

// Conversion logic with defaults in the unmarshaling layer
func convertDTO(dto RequestDTO) Request {
	return Request{
		ID:          util.ValueOrDefault(dto.ID, uuid.New().String()),
		Op:          OpType(strings.ToLower(strings.TrimSpace(dto.Op))),
		Path:        dto.Path,
		Destination: util.ValueOrDefault(dto.Destination, ""),
	}
}
