package crypto_test

import (
	"encoding/hex"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/bosh-saltedhash/crypto"
	fakesys "github.com/cloudfoundry/bosh-saltedhash/system/fakes"
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	Expect(err).ToNot(HaveOccurred())
	return b
}

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (r *closeTrackingReader) Close() error {
	r.closed = true
	return nil
}

var _ = Describe("Digest", func() {
	Describe("#Verify", func() {
		It("verifies matching content", func() {
			digest := NewDigest(DigestAlgorithmSHA1, mustDecodeHex("da7102c07515effc353226eac2be923c916c5c94"))
			Expect(digest.Verify(strings.NewReader("something different"))).To(Succeed())
		})

		It("errors on mismatching content", func() {
			digest := NewDigest(DigestAlgorithmSHA1, mustDecodeHex("da7102c07515effc353226eac2be923c916c5c94"))

			err := digest.Verify(strings.NewReader("something else"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`Expected SHA-1 digest "da7102c07515effc353226eac2be923c916c5c94" but received`))
		})
	})

	Describe("#String", func() {
		It("prefixes the lowercased algorithm name", func() {
			digest := NewDigest(DigestAlgorithmSHA256, mustDecodeHex("73af606b33433fa3a699134b39d5f6bce1ab4a6d9ca3263d3300f31fc5776b12"))
			Expect(digest.String()).To(Equal("sha-256:73af606b33433fa3a699134b39d5f6bce1ab4a6d9ca3263d3300f31fc5776b12"))
		})
	})

	Describe("ParseDigestString", func() {
		It("reads the form written by String", func() {
			original := NewDigest(DigestAlgorithmSHA256, mustDecodeHex("73af606b33433fa3a699134b39d5f6bce1ab4a6d9ca3263d3300f31fc5776b12"))

			digest, err := ParseDigestString(original.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Algorithm()).To(Equal(DigestAlgorithmSHA256))
			Expect(digest.Bytes()).To(Equal(original.Bytes()))
		})

		It("treats a bare hex string as the default algorithm", func() {
			digest, err := ParseDigestString("5d41402abc4b2a76b9719d911017c592")
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Algorithm()).To(Equal(DefaultAlgorithm))
			Expect(digest.Verify(strings.NewReader("hello"))).To(Succeed())
		})

		It("fails on unknown algorithms", func() {
			_, err := ParseDigestString("fake-alg:abcd")
			Expect(errors.Is(err, ErrUnknownAlgorithm)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("Parsing digest 'fake-alg:abcd'"))
		})

		It("fails on malformed hex", func() {
			_, err := ParseDigestString("md5:zz")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Parsing digest 'md5:zz'"))
		})

		It("fails when the length does not match the algorithm", func() {
			_, err := ParseDigestString("sha-256:5d41402abc4b2a76b9719d911017c592")
			Expect(err).To(MatchError("Parsing digest 'sha-256:5d41402abc4b2a76b9719d911017c592': expected 32 bytes for SHA-256 but got 16"))
		})
	})

	Describe("#Bytes", func() {
		It("does not share memory with the caller", func() {
			sum := []byte{1, 2, 3}
			digest := NewDigest(DigestAlgorithmMD5, sum)
			sum[0] = 9

			out := digest.Bytes()
			Expect(out).To(Equal([]byte{1, 2, 3}))
			out[1] = 9
			Expect(digest.Bytes()).To(Equal([]byte{1, 2, 3}))
		})
	})

	Describe("Compute", func() {
		It("digests bytes", func() {
			digest, err := Compute(BytesInput([]byte("hello")), DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(hex.EncodeToString(digest.Bytes())).To(Equal("5d41402abc4b2a76b9719d911017c592"))
		})

		It("digests UTF-8 text by default", func() {
			digest, err := Compute(TextInput("é", ""), DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(hex.EncodeToString(digest.Bytes())).To(Equal("66ddcd97cfdeabb2f6fb8a999b4bc76f"))
		})

		It("digests text in the named encoding", func() {
			digest, err := Compute(TextInput("é", "ISO-8859-1"), DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(hex.EncodeToString(digest.Bytes())).To(Equal("3406877694691ddd1dfb0aca54681407"))
		})

		It("fails for unknown text encodings", func() {
			_, err := Compute(TextInput("hello", "fake-encoding"), DigestAlgorithmMD5)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrUnknownEncoding)).To(BeTrue())
		})

		It("drains a stream once", func() {
			input := StreamInput(strings.NewReader("hello"))

			first, err := Compute(input, DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(hex.EncodeToString(first.Bytes())).To(Equal("5d41402abc4b2a76b9719d911017c592"))

			second, err := Compute(input, DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Bytes()).ToNot(Equal(first.Bytes()))
		})

		It("leaves a caller-owned stream open", func() {
			reader := &closeTrackingReader{Reader: strings.NewReader("hello")}

			digest, err := Compute(StreamInput(reader), DigestAlgorithmMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(hex.EncodeToString(digest.Bytes())).To(Equal("5d41402abc4b2a76b9719d911017c592"))
			Expect(reader.closed).To(BeFalse())
		})

		It("surfaces stream failures as IO errors", func() {
			_, err := Compute(StreamInput(failingReader{}), DigestAlgorithmMD5)
			Expect(errors.Is(err, ErrIO)).To(BeTrue())
		})

		Context("file input", func() {
			var fs *fakesys.FakeFileSystem

			BeforeEach(func() {
				fs = fakesys.NewFakeFileSystem()
				fs.WriteFileString("/file.txt", "something different")
			})

			It("opens the file, digests it and closes it", func() {
				digest, err := Compute(FileInput("/file.txt", fs), DigestAlgorithmSHA256)
				Expect(err).ToNot(HaveOccurred())
				Expect(hex.EncodeToString(digest.Bytes())).To(Equal("73af606b33433fa3a699134b39d5f6bce1ab4a6d9ca3263d3300f31fc5776b12"))
				Expect(fs.OpenedPaths).To(Equal([]string{"/file.txt"}))
			})

			It("returns an IO error when opening fails", func() {
				fs.OpenFileErr = errors.New("fake-open-file-error")

				_, err := Compute(FileInput("/file.txt", fs), DigestAlgorithmSHA256)
				Expect(errors.Is(err, ErrIO)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("Opening file '/file.txt' for digest calculation: fake-open-file-error"))
			})

			It("returns an IO error when reading fails", func() {
				file := fakesys.NewFakeFile("/broken", nil)
				file.ReadErr = errors.New("fake-read-error")
				fs.RegisterOpenFile("/broken", file)

				_, err := Compute(FileInput("/broken", fs), DigestAlgorithmSHA256)
				Expect(errors.Is(err, ErrIO)).To(BeTrue())
				Expect(file.Closed).To(BeTrue())
			})
		})
	})
})
