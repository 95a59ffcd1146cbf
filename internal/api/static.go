// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"
	"os"
)

// filesOnly serves regular files and reports directories as missing, so the
// image directory is never listed.
type filesOnly struct {
	root http.FileSystem
}

func (fs filesOnly) Open(name string) (http.File, error) {
	file, err := fs.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}

	return file, nil
}

// imagesHandler serves uploaded files from dir under prefix.
func imagesHandler(prefix, dir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(filesOnly{root: http.Dir(dir)}))
}
