package emu_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvcore/emu"
)

var _ = Describe("Config", func() {
	It("should default to RV32 with 64 KiB", func() {
		config := emu.DefaultConfig()

		Expect(config.XLEN).To(Equal(uint(32)))
		Expect(config.MemoryBytes).To(Equal(uint64(64 * 1024)))
		Expect(config.Validate()).To(Succeed())
	})

	It("should reject unsupported widths", func() {
		config := emu.DefaultConfig()
		config.XLEN = 8

		Expect(config.Validate()).To(MatchError(ContainSubstring("xlen")))
	})

	It("should reject an empty memory", func() {
		config := emu.DefaultConfig()
		config.MemoryBytes = 0

		Expect(config.Validate()).To(MatchError(ContainSubstring("memory_bytes")))
	})

	It("should clone independently", func() {
		config := emu.DefaultConfig()
		clone := config.Clone()
		clone.XLEN = 64

		Expect(config.XLEN).To(Equal(uint(32)))
		Expect(clone.MemoryBytes).To(Equal(config.MemoryBytes))
	})

	Describe("files", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "rvcore-config")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)
		})

		It("should round-trip through JSON", func() {
			path := filepath.Join(dir, "core.json")
			config := &emu.Config{XLEN: 128, MemoryBytes: 4096}

			Expect(config.SaveConfig(path)).To(Succeed())

			loaded, err := emu.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(config))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(dir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"xlen": 64}`), 0644)).To(Succeed())

			loaded, err := emu.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.XLEN).To(Equal(uint(64)))
			Expect(loaded.MemoryBytes).To(Equal(uint64(64 * 1024)))
		})

		It("should fail on a missing file", func() {
			_, err := emu.LoadConfig(filepath.Join(dir, "nope.json"))

			Expect(err).To(MatchError(ContainSubstring("failed to read")))
		})

		It("should fail on malformed JSON", func() {
			path := filepath.Join(dir, "bad.json")
			Expect(os.WriteFile(path, []byte("{"), 0644)).To(Succeed())

			_, err := emu.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse")))
		})
	})
})
