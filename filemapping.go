package linguist

import (
	"io"
	"os"
	"runtime"
)

// fileMapping holds the bytes of a catalog file, mapped read-only when the
// platform allows it.
type fileMapping struct {
	data []byte

	isMapped bool
}

func (m *fileMapping) Close() error {
	runtime.SetFinalizer(m, nil)
	if !m.isMapped {
		return nil
	}
	m.isMapped = false
	return m.closeMapping()
}

func openMapping(f *os.File) (*fileMapping, error) {
	m := new(fileMapping)

	err := m.tryMap(f)
	if err == nil {
		runtime.SetFinalizer(m, (*fileMapping).Close)
		return m, nil
	}
	Logger().Debug().Err(err).Str("file", f.Name()).Msg("Cannot map catalog, reading it")
	// On mapping failure, fall back to reading the file into
	// memory directly.
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		// Pipes cannot seek but nothing has been read from them yet.
		if fi, serr := f.Stat(); serr != nil || fi.Mode().IsRegular() {
			return nil, err
		}
	}
	m.data, err = io.ReadAll(f)
	return m, err
}
