// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// prelude loads initial type-environments from YAML documents:
//
//  bindings:
//    - name: plus
//      type: Int -> Int -> Int
//    - name: if
//      type: forall a. Bool -> a -> a -> a
//
// Bindings are added in order, so a later binding shadows an earlier binding with the same name.
package prelude

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/algj"
	"github.com/wdamron/algj/parse"
)

//go:embed default.yaml
var defaultPrelude []byte

// Config is the top-level structure of a prelude document.
type Config struct {
	Bindings []Binding `yaml:"bindings"`
}

// Binding declares the type scheme of an identifier.
type Binding struct {
	// Name is the identifier bound in the type-environment.
	Name string `yaml:"name"`
	// Type is a type scheme, e.g. `forall a. a -> a`. Free type-variables with the same name
	// refer to the same type-variable across all bindings of a document.
	Type string `yaml:"type"`
}

// Load reads a prelude document from path.
func Load(path string) (*algj.TypeEnv, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prelude: %w", err)
	}
	env, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}

// Parse builds a type-environment from a prelude document.
func Parse(data []byte) (*algj.TypeEnv, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing prelude: %w", err)
	}
	return cfg.TypeEnv()
}

// TypeEnv builds a type-environment from the bindings of the document.
func (cfg *Config) TypeEnv() (*algj.TypeEnv, error) {
	env := algj.NewTypeEnv()
	tp := parse.NewTypeParser()
	for i, b := range cfg.Bindings {
		if b.Name == "" {
			return nil, fmt.Errorf("binding %d: %w", i, errors.New("missing name"))
		}
		s, err := tp.Scheme(b.Type)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Name, err)
		}
		env = env.Extend(b.Name, s)
	}
	return env, nil
}

// Default returns the built-in prelude: booleans, integers, lists, pairs, and fix.
func Default() *algj.TypeEnv {
	env, err := Parse(defaultPrelude)
	if err != nil {
		panic("invalid default prelude: " + err.Error())
	}
	return env
}
