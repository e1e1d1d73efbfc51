// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package policy holds the generation policy: the allow-lists, type tables and
// runtime names that decide what is exported and how it is emitted.
package policy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentPolicyVersion is the current version of the policy file format.
const CurrentPolicyVersion = 1

// ErrInvalidPolicy indicates a policy document that failed validation.
var ErrInvalidPolicy = errors.New("invalid policy")

//go:embed wx.yaml
var defaultPolicy []byte

// DefaultBytes returns the raw embedded default policy document.
func DefaultBytes() []byte {
	out := make([]byte, len(defaultPolicy))
	copy(out, defaultPolicy)
	return out
}

// Runtime names the support-library symbols the generated code refers to.
type Runtime struct {
	RequestBase  string `yaml:"request_base"`
	ResponseBase string `yaml:"response_base"`
	HandleType   string `yaml:"handle_type"`
	Lookup       string `yaml:"lookup"`
}

// Document is the on-disk shape of a policy file.
type Document struct {
	Version          int               `yaml:"version"`
	RequestSuffix    string            `yaml:"request_suffix"`
	CallbackSuffix   string            `yaml:"callback_suffix"`
	GenericWrapper   string            `yaml:"generic_wrapper"`
	Primitives       map[string]string `yaml:"primitives"`
	Builtins         []string          `yaml:"builtins"`
	Runtime          Runtime           `yaml:"runtime"`
	RequestObjects   []string          `yaml:"request_objects"`
	Interfaces       []string          `yaml:"interfaces"`
	TypeAliases      []string          `yaml:"type_aliases"`
	CallbackWrappers []string          `yaml:"callback_wrappers"`
	Overrides        map[string]string `yaml:"overrides"`
}

// ObjectKind classifies an exported interface.
type ObjectKind int

const (
	// Response objects are host-returned and read lazily through a handle.
	Response ObjectKind = iota
	// Request objects are constructed by the caller and serialized.
	Request
)

func (k ObjectKind) String() string {
	if k == Request {
		return "request"
	}
	return "response"
}

// Policy is the loaded, immutable form of a Document.
type Policy struct {
	requestSuffix  string
	callbackSuffix string
	genericWrapper string
	runtime        Runtime

	primitives map[string]string
	builtins   map[string]struct{}
	requests   map[string]struct{}
	interfaces map[string]struct{}
	aliases    map[string]struct{}
	wrappers   map[string]struct{}
	overrides  map[string]TypeExpr
}

// Default returns the embedded WeChat mini-program policy.
func Default() (*Policy, error) {
	return Parse(bytes.NewReader(defaultPolicy))
}

// Load reads a Policy from a file path.
func Load(path string) (*Policy, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Parse(f)
}

// Parse decodes and validates a policy document.
func Parse(r io.Reader) (*Policy, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return New(&doc)
}

// New validates a Document and freezes it into a Policy.
func New(doc *Document) (*Policy, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	p := &Policy{
		requestSuffix:  doc.RequestSuffix,
		callbackSuffix: doc.CallbackSuffix,
		genericWrapper: doc.GenericWrapper,
		runtime:        doc.Runtime,
		primitives:     make(map[string]string, len(doc.Primitives)),
		builtins:       toSet(doc.Builtins),
		requests:       toSet(doc.RequestObjects),
		interfaces:     toSet(doc.Interfaces),
		aliases:        toSet(doc.TypeAliases),
		wrappers:       toSet(doc.CallbackWrappers),
		overrides:      make(map[string]TypeExpr, len(doc.Overrides)),
	}
	for k, v := range doc.Primitives {
		p.primitives[k] = v
		// target spellings may appear in override values
		p.builtins[v] = struct{}{}
	}
	for key, value := range doc.Overrides {
		expr, err := ParseTypeExpr(value)
		if err != nil {
			return nil, fmt.Errorf("%w: override %s: %v", ErrInvalidPolicy, key, err)
		}
		p.overrides[key] = expr
	}
	p.fillRuntimeDefaults()
	return p, nil
}

// Validate checks the document for required fields and valid values.
func (d *Document) Validate() error {
	if d.Version != CurrentPolicyVersion {
		return errors.New("unsupported policy version")
	}
	if d.RequestSuffix == "" {
		return errors.New("request_suffix is required")
	}
	if d.CallbackSuffix == "" {
		return errors.New("callback_suffix is required")
	}
	if d.GenericWrapper == "" {
		return errors.New("generic_wrapper is required")
	}
	for key := range d.Overrides {
		typeName, field, ok := strings.Cut(key, ".")
		if !ok || typeName == "" || field == "" {
			return fmt.Errorf("override key %q must have the form Type.field", key)
		}
	}
	return nil
}

func (p *Policy) fillRuntimeDefaults() {
	if p.runtime.RequestBase == "" {
		p.runtime.RequestBase = "WechatRequestObject"
	}
	if p.runtime.ResponseBase == "" {
		p.runtime.ResponseBase = "WechatResponseObject"
	}
	if p.runtime.HandleType == "" {
		p.runtime.HandleType = "mpjs.JsObject"
	}
	if p.runtime.Lookup == "" {
		p.runtime.Lookup = "getValue"
	}
}

// ExportsInterface reports whether an interface is on the export allow-list.
func (p *Policy) ExportsInterface(name string) bool {
	_, ok := p.interfaces[name]
	return ok
}

// ExportsTypeAlias reports whether a type alias is on the export allow-list.
func (p *Policy) ExportsTypeAlias(name string) bool {
	_, ok := p.aliases[name]
	return ok
}

// Classify decides whether an exported interface is a request or response object.
func (p *Policy) Classify(name string) ObjectKind {
	if strings.HasSuffix(name, p.requestSuffix) {
		return Request
	}
	if _, ok := p.requests[name]; ok {
		return Request
	}
	return Response
}

// Primitive maps a source type name to its target spelling.
func (p *Policy) Primitive(name string) (string, bool) {
	target, ok := p.primitives[name]
	return target, ok
}

// IsScalar reports whether name is a primitive-table key or a target builtin.
func (p *Policy) IsScalar(name string) bool {
	if _, ok := p.primitives[name]; ok {
		return true
	}
	_, ok := p.builtins[name]
	return ok
}

// Override returns the override for "declaring.field", if any.
func (p *Policy) Override(declaring, field string) (TypeExpr, bool) {
	expr, ok := p.overrides[declaring+"."+field]
	return expr, ok
}

// IsCallback reports whether a type name is callback-shaped.
func (p *Policy) IsCallback(name string) bool {
	return name != "" && strings.HasSuffix(name, p.callbackSuffix)
}

// Wrapper returns the wrapper function used to serialize a callback type, and
// whether it is the specific one rather than the generic fallback.
func (p *Policy) Wrapper(callbackType string) (string, bool) {
	specific := "wrap" + callbackType
	if _, ok := p.wrappers[specific]; ok {
		return specific, true
	}
	return p.genericWrapper, false
}

// Runtime returns the runtime support-library names.
func (p *Policy) Runtime() Runtime {
	return p.runtime
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
