// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/sketchbook"
)

// ErrCompile is returned when a program's WGSL does not compile to valid
// SPIR-V.
var ErrCompile = errors.New("shader: compile failed")

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// Compile translates the program's WGSL to SPIR-V words.
func Compile(p *Program) ([]uint32, error) {
	spirvBytes, err := naga.Compile(p.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, p.Name, err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %s: %d bytes is not a word stream", ErrCompile, p.Name, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: %s: bad magic 0x%08X", ErrCompile, p.Name, words[0])
	}

	sketchbook.Logger().Debug("shader: compiled", "program", p.Name, "words", len(words))
	return words, nil
}
