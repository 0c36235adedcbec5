//go:build windows

package linguist

import (
	"errors"
	"os"
)

func (m *fileMapping) tryMap(f *os.File) error {
	return errors.New("file mapping not supported")
}

func (m *fileMapping) closeMapping() error {
	return nil
}
