// File: encode.go
// Title: Value Encoders
// Description: Renders evaluated koy values as koy text, JSON, YAML or TOML.
//              JSON and YAML keep object key order; TOML requires an object
//              at the top level and cannot represent null.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial encoders

package koy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	koyerror "github.com/msto63/koy/foundation/core/error"
	"github.com/msto63/koy/foundation/koy/interp"
)

// Format selects an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported output formats
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses an output format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", koyerror.New(fmt.Sprintf("unknown output format %q", s)).
		WithCode(koyerror.CodeInvalidInput).
		WithDetail("allowed", "text, json, yaml, toml")
}

// Encode renders v in the given format. The output ends with a newline.
func Encode(v interp.Value, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(v.String() + "\n"), nil
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYAML:
		return EncodeYAML(v)
	case FormatTOML:
		return EncodeTOML(v)
	default:
		_, err := ParseFormat(string(format))
		return nil, err
	}
}

// Write encodes v and writes it to w
func Write(w io.Writer, v interp.Value, format Format) error {
	data, err := Encode(v, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return koyerror.Wrap(err, "failed to write output").WithCode(koyerror.CodeInternal)
	}
	return nil
}

func encodingError(format Format, msg string) *koyerror.Error {
	return koyerror.New(msg).
		WithCode(koyerror.CodeEncodingFailed).
		WithOperation("koy.Encode").
		WithDetail("format", string(format))
}

// EncodeJSON renders v as indented JSON with object keys in declaration order
func EncodeJSON(v interp.Value) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSON(&compact, v); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, koyerror.Wrap(err, "failed to indent JSON").WithCode(koyerror.CodeEncodingFailed)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v interp.Value) error {
	switch val := v.(type) {
	case *interp.Number:
		f := val.Float64()
		if !val.IsInt() && (math.IsInf(f, 0) || math.IsNaN(f)) {
			return encodingError(FormatJSON, fmt.Sprintf("cannot encode %s as JSON", val))
		}
		buf.WriteString(val.String())
	case *interp.Boolean:
		buf.WriteString(strconv.FormatBool(val.Value))
	case *interp.String:
		writeJSONString(buf, val.Value)
	case *interp.Null:
		buf.WriteString("null")
	case *interp.Array:
		buf.WriteByte('[')
		for i, el := range val.Elements {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *interp.Object:
		buf.WriteByte('{')
		for i, key := range val.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, key)
			buf.WriteByte(':')
			field, _ := val.Get(key)
			if err := writeJSON(buf, field); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return encodingError(FormatJSON, fmt.Sprintf("unsupported value %T", v))
	}
	return nil
}

// writeJSONString quotes s without escaping HTML characters
func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
}

// EncodeYAML renders v as a YAML document with object keys in declaration
// order
func EncodeYAML(v interp.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return nil, koyerror.Wrap(err, "failed to encode YAML").WithCode(koyerror.CodeEncodingFailed)
	}
	if err := enc.Close(); err != nil {
		return nil, koyerror.Wrap(err, "failed to encode YAML").WithCode(koyerror.CodeEncodingFailed)
	}
	return buf.Bytes(), nil
}

func yamlNode(v interp.Value) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch val := v.(type) {
	case *interp.Number:
		if val.IsInt() {
			return scalar("!!int", val.String())
		}
		f := val.Float64()
		switch {
		case math.IsNaN(f):
			return scalar("!!float", ".nan")
		case math.IsInf(f, 1):
			return scalar("!!float", ".inf")
		case math.IsInf(f, -1):
			return scalar("!!float", "-.inf")
		}
		return scalar("!!float", val.String())
	case *interp.Boolean:
		return scalar("!!bool", strconv.FormatBool(val.Value))
	case *interp.String:
		return scalar("!!str", val.Value)
	case *interp.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range val.Elements {
			node.Content = append(node.Content, yamlNode(el))
		}
		if len(node.Content) == 0 {
			node.Style = yaml.FlowStyle
		}
		return node
	case *interp.Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range val.Keys() {
			field, _ := val.Get(key)
			node.Content = append(node.Content, scalar("!!str", key), yamlNode(field))
		}
		if len(node.Content) == 0 {
			node.Style = yaml.FlowStyle
		}
		return node
	default:
		return scalar("!!null", "null")
	}
}

// EncodeTOML renders v as a TOML document. Keys are sorted by the encoder.
func EncodeTOML(v interp.Value) ([]byte, error) {
	if _, ok := v.(*interp.Object); !ok {
		return nil, encodingError(FormatTOML, fmt.Sprintf("TOML requires an object at the top level, got %s", v.TypeName()))
	}
	if path, found := findNull(v, ""); found {
		return nil, encodingError(FormatTOML, "TOML cannot represent null").WithDetail("path", path)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(interp.ToNative(v)); err != nil {
		return nil, koyerror.Wrap(err, "failed to encode TOML").
			WithCode(koyerror.CodeEncodingFailed).
			WithDetail("format", string(FormatTOML))
	}
	return buf.Bytes(), nil
}

// findNull returns the dotted path of the first null inside v
func findNull(v interp.Value, path string) (string, bool) {
	switch val := v.(type) {
	case *interp.Null:
		return path, true
	case *interp.Array:
		for i, el := range val.Elements {
			if p, ok := findNull(el, fmt.Sprintf("%s[%d]", path, i)); ok {
				return p, true
			}
		}
	case *interp.Object:
		for _, key := range val.Keys() {
			field, _ := val.Get(key)
			p := key
			if path != "" {
				p = path + "." + key
			}
			if found, ok := findNull(field, p); ok {
				return found, true
			}
		}
	}
	return "", false
}
