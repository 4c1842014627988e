//go:build !unix

package mmap

import "os"

func osMapDevice(*os.File, int64, int) ([]byte, func([]byte) error, error) {
	return nil, nil, ErrUnsupported
}
