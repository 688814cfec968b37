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

package argv_test

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/deep-rent/argv"
	"github.com/deep-rent/argv/arg"
)

func Example() {
	p := argv.New("greet")
	p.Summary("Print a friendly greeting.")

	name := arg.NewValue('n', "name", "world", "Name to greet")
	loud := arg.NewSwitch('l', "loud", false, "Shout the greeting")
	p.Add(name)
	p.Add(loud)

	rest, err := p.Parse([]string{"--name", "gopher", "-l", "plus", "extras"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	greeting := fmt.Sprintf("hello, %s!", name.Value())
	if loud.Value() {
		greeting = strings.ToUpper(greeting)
	}
	fmt.Println(greeting)
	fmt.Println(rest)
	// Output:
	// HELLO, GOPHER!
	// [plus extras]
}

func ExampleParser_Scan() {
	type options struct {
		Port    int           `arg:"port,short:p,min:1,max:65535"`
		Cache   time.Duration `arg:"cache,default:5m"`
		Verbose bool          `arg:",short:v"`
	}

	p := argv.New("serve")
	o := options{Port: 8080}
	if err := p.Scan(&o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if _, err := p.Parse([]string{"-v", "--port", "9090"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := p.Update(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	fmt.Println(o.Port, o.Cache, o.Verbose)
	// Output: 9090 5m0s true
}

func ExampleParser_WriteValues() {
	p := argv.New("serve")
	p.Add(arg.NewValue('p', "port", 8080, "Port to listen on"))
	p.Add(arg.NewSwitch('v', "verbose", false, "Enable verbose logging"))

	if _, err := p.Parse([]string{"-v"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	p.WriteValues(os.Stdout)
	// Output:
	// port: 8080
	// verbose: 1
}
