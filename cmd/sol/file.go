package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oy3o/sol"
)

func (a *app) read(path string) (*sol.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := sol.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("decoded document",
		"path", path,
		"root", doc.RootName,
		"version", doc.Version,
		"framing", doc.Framing,
		"length", doc.Length,
		"pairs", len(doc.Pairs))
	return doc, nil
}

// write replaces path with the encoded doc. The bytes go to a temporary file
// in the same directory first, which is renamed over path once complete.
func (a *app) write(path string, doc *sol.Document) (err error) {
	data, err := doc.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return err
	}
	a.logger.Info("wrote document", "path", path, "bytes", len(data), "length", doc.Length)
	return nil
}
