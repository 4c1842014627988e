//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMapDevice(f *os.File, offset int64, size int) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_SHARED

	data, err := unix.Mmap(int(f.Fd()), offset, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}
