package logger_test

import (
	"bytes"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/bosh-saltedhash/logger"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ = Describe("Logger", func() {
	Describe("Levelify", func() {
		It("parses level names case-insensitively", func() {
			level, err := Levelify("debug")
			Expect(err).ToNot(HaveOccurred())
			Expect(level).To(Equal(LevelDebug))

			level, err = Levelify("NONE")
			Expect(err).ToNot(HaveOccurred())
			Expect(level).To(Equal(LevelNone))
		})

		It("errors on unknown names", func() {
			_, err := Levelify("chatty")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Unknown LogLevel string 'chatty'"))
		})
	})

	Describe("NewWriterLogger", func() {
		var out *bytes.Buffer

		BeforeEach(func() {
			out = &bytes.Buffer{}
		})

		It("prefixes lines with tag and level", func() {
			NewWriterLogger(LevelDebug, out).Debug("saltedhash", "Producing with %s", "MD5")
			Expect(out.String()).To(ContainSubstring("[saltedhash] DEBUG - Producing with MD5"))
		})

		It("drops lines below the configured level", func() {
			logger := NewWriterLogger(LevelWarn, out)
			logger.Debug("tag", "debug")
			logger.Info("tag", "info")
			logger.Warn("tag", "warn")
			logger.Error("tag", "error")

			Expect(out.String()).ToNot(ContainSubstring("debug"))
			Expect(out.String()).ToNot(ContainSubstring("info"))
			Expect(out.String()).To(ContainSubstring("[tag] WARN - warn"))
			Expect(out.String()).To(ContainSubstring("[tag] ERROR - error"))
		})

		It("logs everything once forced debug is toggled on", func() {
			logger := NewWriterLogger(LevelNone, out)
			logger.ToggleForcedDebug()
			logger.Debug("tag", "now visible")
			Expect(out.String()).To(ContainSubstring("now visible"))
		})

		It("wraps details in separators", func() {
			NewWriterLogger(LevelDebug, out).DebugWithDetails("tag", "Profile", "algorithm: MD5")
			Expect(out.String()).To(ContainSubstring("Profile\n********************\nalgorithm: MD5\n********************"))
		})
	})

	Describe("NewAsyncWriterLogger", func() {
		It("writes queued lines on flush", func() {
			out := &syncBuffer{}
			logger := NewAsyncWriterLogger(LevelInfo, out)

			logger.Info("tag", "queued %d", 1)
			Expect(logger.Flush()).To(Succeed())

			Expect(out.String()).To(ContainSubstring("[tag] INFO - queued 1"))
		})

		It("flushes within a timeout", func() {
			out := &syncBuffer{}
			logger := NewAsyncWriterLogger(LevelInfo, out)

			logger.Error("tag", "failure")
			Expect(logger.FlushTimeout(5 * time.Second)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("failure"))
		})
	})
})
