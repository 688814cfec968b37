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

package argv

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/deep-rent/argv/codec"
)

// LoadDefaults replaces argument defaults with values read from the
// configuration file at path. The format follows the file extension; see
// codec.Infer. The document must be a flat mapping of long option names
// to values. Unknown names are rejected, and every value must pass the
// same parsing and certification as a command-line value.
//
// Defaults do not count as occurrences: a required argument must still be
// given unless an environment fallback applies.
func (p *Parser) LoadDefaults(path string) error {
	d, err := codec.Infer(path)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc := make(map[string]any)
	if err := d.Decode(raw, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		a, ok := p.long[key]
		if !ok {
			return fmt.Errorf("unknown option %q in %s", key, path)
		}
		if err := a.SetDefault(fmt.Sprint(doc[key])); err != nil {
			return err
		}
	}
	p.log.Debug("Loaded defaults", "file", path, "count", len(doc))
	return nil
}
