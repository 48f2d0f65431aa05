package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// brokenProgram writes part of a word, then fails.
type brokenProgram struct{}

func (brokenProgram) WriteTo(w io.Writer) (int64, error) {
	n, _ := io.WriteString(w, "0000000000")
	return int64(n), errors.New("disk full")
}

var _ = Describe("artifact", func() {
	var name string

	BeforeEach(func() {
		name = filepath.Join(GinkgoT().TempDir(), "prog.bin")
	})

	It("should be removed by its exit handler until committed", func() {
		art, err := createArtifact(name)
		Expect(err).NotTo(HaveOccurred())

		_, err = art.WriteString("01")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(BeAnExistingFile())

		art.Discard()
		Expect(name).NotTo(BeAnExistingFile())
	})

	It("should survive its exit handler once committed", func() {
		art, err := createArtifact(name)
		Expect(err).NotTo(HaveOccurred())

		_, err = art.WriteString("01\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(art.Commit()).To(Succeed())

		art.Discard()
		data, err := os.ReadFile(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("01\n"))
	})

	It("should not leave a truncated file when writing fails", func() {
		err := persist(name, brokenProgram{})
		Expect(err).To(MatchError("disk full"))
		Expect(name).NotTo(BeAnExistingFile())
	})

	It("should fail to create in a missing directory", func() {
		_, err := createArtifact(filepath.Join(filepath.Dir(name), "missing", "prog.bin"))
		Expect(err).To(HaveOccurred())
	})
})
