package main

import (
	"os"

	"github.com/tebeka/atexit"
)

// artifact is an output file which only survives once committed. Until then
// an exit handler removes it, so a failed or interrupted run never leaves a
// truncated file behind.
type artifact struct {
	Path string
	*os.File

	handler   atexit.HandlerID
	committed bool
}

// createArtifact creates an output file, and registers its removal at exit.
func createArtifact(name string) (art *artifact, err error) {
	file, err := os.Create(name)
	if err != nil {
		return
	}

	art = &artifact{Path: name, File: file}
	art.handler = atexit.Register(art.Discard)

	return
}

// Discard closes and removes an uncommitted artifact.
func (art *artifact) Discard() {
	if art.committed {
		return
	}
	art.File.Close()
	os.Remove(art.Path)
}

// Commit closes the artifact and keeps it. On error the artifact is
// discarded.
func (art *artifact) Commit() (err error) {
	err = art.File.Close()
	if err != nil {
		os.Remove(art.Path)
		return
	}

	art.committed = true
	art.handler.Cancel()

	return
}
