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

import "fmt"

// UnknownFlagError reports a token that looks like an option but matches
// no registered argument. If the token was part of a grouped short option,
// Group holds the full group as it appeared on the command line.
type UnknownFlagError struct {
	Token string
	Group string
}

func (e UnknownFlagError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("unknown flag %q in group %q", e.Token, e.Group)
	}
	return "unknown flag " + e.Token
}

// MissingArgError reports a required argument that did not occur on the
// command line and had no environment fallback.
type MissingArgError struct {
	Arg string
}

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required flag %q", e.Arg)
}
