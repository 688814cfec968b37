// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
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

// Package codec provides decoding for the configuration file formats
// understood by the argv parser: JSON, TOML, and YAML.
package codec

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type Decoder interface {
	Decode(data []byte, v any) error
}

type jsonDecoder struct{}

func (jsonDecoder) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Numbers decode as json.Number, not float64, so large integers
	// keep their literal form.
	dec.UseNumber()
	return dec.Decode(v)
}

type tomlDecoder struct{}

func (tomlDecoder) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

type yamlDecoder struct{}

func (yamlDecoder) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Infer selects a decoder based on the file extension of path. It
// recognizes .json, .toml, .yaml, and .yml.
func Infer(path string) (Decoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return jsonDecoder{}, nil
	case ".toml":
		return tomlDecoder{}, nil
	case ".yaml", ".yml":
		return yamlDecoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}
