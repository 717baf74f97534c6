package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Verify checks that a sound file exists and, for formats we can
// decode, that it actually parses as audio. Formats outside the decode
// set (notably the system .aiff alert sounds) get an existence check
// only; afplay handles those natively at play time.
//
// Verify runs from the doctor command and the server startup banner,
// never on the notify path.
func Verify(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("sound file not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("sound path is a directory: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var decode func(*os.File) error
	switch ext {
	case ".wav":
		decode = func(f *os.File) error { _, _, err := wav.Decode(f); return err }
	case ".ogg":
		decode = func(f *os.File) error { _, _, err := vorbis.Decode(f); return err }
	case ".mp3":
		decode = func(f *os.File) error { _, _, err := mp3.Decode(f); return err }
	default:
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := decode(f); err != nil {
		return fmt.Errorf("failed to decode %s file: %w", ext, err)
	}
	return nil
}
