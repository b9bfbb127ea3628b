package io

import (
	"io"
	"os"
	"path/filepath"
)

type (
	File interface {
		Path() string
		WriteTo(io.Writer) (int64, error)
		Clone() File
	}

	// RawFile holds file contents in memory until output time.
	RawFile struct {
		FPath   string
		Content []byte
	}
)

func (r *RawFile) Clone() File {
	nf := &RawFile{FPath: r.FPath}
	nf.Content = make([]byte, len(r.Content))
	copy(nf.Content, r.Content)
	return nf
}

func (r *RawFile) Path() string {
	return r.FPath
}

func (r *RawFile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Content)
	return int64(n), err
}

func OutputTo(files []File, dest string) error {
	errs := make(chan error)
	for idx := range files {
		go func(f File) {
			path := filepath.Join(dest, f.Path())
			if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
				errs <- err
				return
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
			if err != nil {
				errs <- err
				return
			}
			_, err = f.WriteTo(file)
			file.Close()
			errs <- err
		}(files[idx])
	}

	for i := 0; i < len(files); i++ {
		if err := <-errs; err != nil {
			return err
		}
	}
	return nil
}
