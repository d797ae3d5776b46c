// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi_test

import (
	"bytes"
	"os"
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"

	. "github.com/fueltools/dynamic-abi"
	"github.com/fueltools/dynamic-abi/abitypes"
)

type encodeVector struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Value    string `yaml:"value"`
	Expected string `yaml:"expected"`
}

func (v *encodeVector) token(t *testing.T) *abitypes.Token {
	t.Helper()

	parseUint := func(bits int) uint64 {
		value, err := strconv.ParseUint(v.Value, 10, bits)
		if err != nil {
			t.Fatalf("vector %q: bad value %q: %v", v.Name, v.Value, err)
		}
		return value
	}

	switch v.Type {
	case "unit":
		return abitypes.UnitToken()
	case "u8":
		return abitypes.U8Token(uint8(parseUint(8)))
	case "u16":
		return abitypes.U16Token(uint16(parseUint(16)))
	case "u32":
		return abitypes.U32Token(uint32(parseUint(32)))
	case "u64":
		return abitypes.U64Token(parseUint(64))
	case "byte":
		return abitypes.ByteToken(uint8(parseUint(8)))
	case "bool":
		value, err := strconv.ParseBool(v.Value)
		if err != nil {
			t.Fatalf("vector %q: bad value %q: %v", v.Name, v.Value, err)
		}
		return abitypes.BoolToken(value)
	case "string":
		return abitypes.StringToken(v.Value)
	case "b256":
		return abitypes.B256Token(toB256(fromHex(v.Value)))
	default:
		t.Fatalf("vector %q: unknown type %q", v.Name, v.Type)
		return nil
	}
}

func TestEncodeVectors(t *testing.T) {
	raw, err := os.ReadFile("testdata/encode_vectors.yaml")
	if err != nil {
		t.Fatalf("failed to read vectors: %v", err)
	}

	var vectors []encodeVector
	if err := yaml.Unmarshal(raw, &vectors); err != nil {
		t.Fatalf("failed to parse vectors: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("no vectors loaded")
	}

	for _, vector := range vectors {
		vector := vector
		t.Run(vector.Name, func(t *testing.T) {
			encoded, err := NewABIEncoder().Encode([]*abitypes.Token{vector.token(t)})
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			expected := fromHex(vector.Expected)
			if !bytes.Equal(encoded, expected) {
				t.Errorf("wrong encoding\nexpected: 0x%x\ngot:      0x%x", expected, encoded)
			}
			if len(encoded)%8 != 0 {
				t.Errorf("encoding is not word aligned: %d bytes", len(encoded))
			}
		})
	}
}
