package cont

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

type ContentType string

const (
	ApplicationJson ContentType = "application/json"
	ApplicationYaml ContentType = "application/x-yaml"
	ApplicationToml ContentType = "application/toml"
)

// ErrUnsupportedType is returned for content types with no rule decoder.
var ErrUnsupportedType = errors.New("unsupported content type")

// FromPath picks the content type from a file extension.
func FromPath(path string) (ContentType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ApplicationJson, nil
	case ".yaml", ".yml":
		return ApplicationYaml, nil
	case ".toml":
		return ApplicationToml, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnsupportedType, "%q", path),
			"use a .json, .yaml, .yml or .toml rules file",
		)
	}
}

// Decode parses a rules document of the given content type.
func Decode(ct ContentType, data []byte) (*Document, error) {
	switch ct {
	case ApplicationJson:
		return decodeJSON(data)
	case ApplicationYaml:
		return decodeYAML(data)
	case ApplicationToml:
		return decodeTOML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%q", ct)
	}
}

// Load reads and decodes the rules document at path.
func Load(path string) (*Document, error) {
	ct, err := FromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading rules file %s", path)
	}

	doc, err := Decode(ct, data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return doc, nil
}
