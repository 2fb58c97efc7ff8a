package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, data)
	})

	t.Run("load maximum size ROM", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, chip8.MaxProgramSize)
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.Error(t, err)
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("oversized file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.ErrorContains(t, err, "too large")
	})
}

func TestLoadMachine(t *testing.T) {
	tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})
	m := chip8.NewMachine()

	data, err := New().LoadMachine(m, tmpFile)
	assert.NoError(t, err)
	assert.Len(t, data, 4)
	assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, m.Memory[chip8.ProgramStart:chip8.ProgramStart+4])
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(tmpFile, data, 0o600)
	assert.NoError(t, err)
	return tmpFile
}
