// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Wire encoding. An Array encodes as a flat sequence of its N elements,
// with no length tag; decoding accepts exactly N elements and reports
// [*LengthError] for any other count, leaving the destination untouched.

// MarshalJSON implements [json.Marshaler].
func (a Array[T, N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(view[T, N](&a.data))
}

// UnmarshalJSON implements [json.Unmarshaler]. The input must be a JSON
// array of exactly N elements.
func (a *Array[T, N]) UnmarshalJSON(data []byte) error {
	var buf []T
	if err := json.Unmarshal(data, &buf); err != nil {
		return err
	}
	dst := view[T, N](&a.data)
	if len(buf) != len(dst) {
		return &LengthError{Got: len(buf), Want: len(dst)}
	}
	copy(dst, buf)
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (a Array[T, N]) MarshalYAML() (any, error) {
	return view[T, N](&a.data), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The node must be a YAML
// sequence of exactly N elements.
func (a *Array[T, N]) UnmarshalYAML(node *yaml.Node) error {
	var buf []T
	if err := node.Decode(&buf); err != nil {
		return err
	}
	dst := view[T, N](&a.data)
	if len(buf) != len(dst) {
		return &LengthError{Got: len(buf), Want: len(dst)}
	}
	copy(dst, buf)
	return nil
}
