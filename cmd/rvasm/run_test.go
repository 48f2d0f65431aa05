package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("run", func() {
	var (
		dir    string
		stdout *bytes.Buffer
	)

	source := func(lines ...string) string {
		name := filepath.Join(dir, "prog.s")
		err := os.WriteFile(name, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
		Expect(err).NotTo(HaveOccurred())
		return name
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		stdout = &bytes.Buffer{}
	})

	Context("with an unknown argument shape", func() {
		It("should print the usage and do nothing", func() {
			for _, args := range [][]string{
				{},
				{"a.s", "b.s"},
				{"a.s", "-x", "out"},
				{"a.s", "-o"},
			} {
				stdout.Reset()
				Expect(run(args, stdout, options{})).To(Equal(0))
				Expect(stdout.String()).To(ContainSubstring("usage:"))
			}
		})
	})

	Context("in display mode", func() {
		It("should print each line and its word", func() {
			input := source("add x1, x2, x3", "", "bne x1, x2, -4")

			Expect(run([]string{input}, stdout, options{})).To(Equal(0))
			Expect(stdout.String()).To(Equal(
				"add x1, x2, x3 00000000001100010000000010110011\n" +
					"bne x1, x2, -4 11111110001000001001111011100011\n"))
		})

		It("should render a table for a terminal", func() {
			input := source("add x1, x2, x3")

			Expect(run([]string{input}, stdout, options{Table: true})).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("add x1, x2, x3"))
			Expect(stdout.String()).To(ContainSubstring("0000000 00011 00010 000 00001 0110011"))
		})

		It("should fail on a bad line", func() {
			input := source("add x1, x2, x3", "mv x1, x2")

			Expect(run([]string{input}, stdout, options{})).To(Equal(1))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("should fail on a missing input", func() {
			input := filepath.Join(dir, "missing.s")

			Expect(run([]string{input}, stdout, options{})).To(Equal(1))
		})
	})

	Context("in persist mode", func() {
		It("should write the assembled words", func() {
			input := source("sb x5, 4(x6)", "jal x1, 8")
			output := filepath.Join(dir, "prog")

			Expect(run([]string{input, "-o", output}, stdout, options{})).To(Equal(0))
			Expect(stdout.String()).To(BeEmpty())

			data, err := os.ReadFile(output + ".bin")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(
				"00000000010100110000001000100011\n" +
					"00000000100000000000000011101111\n"))
		})

		It("should not write anything when a line fails", func() {
			input := source("sb x5, 4(x6)", "add x1, x2, x99", "addi x1, x1, zz")
			output := filepath.Join(dir, "prog")

			Expect(run([]string{input, "-o", output}, stdout, options{KeepGoing: true})).To(Equal(1))

			_, err := os.Stat(output + ".bin")
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})
