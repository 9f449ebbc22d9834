package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

func runSaltedHash(stdin string, args ...string) *gexec.Session {
	command := exec.Command(saltedHashBinPath, args...)
	command.Stdin = strings.NewReader(stdin)

	session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())
	Eventually(session, 10*time.Second).Should(gexec.Exit())

	return session
}

func stdoutLines(session *gexec.Session) []string {
	return strings.Split(strings.TrimSpace(string(session.Out.Contents())), "\n")
}

var _ = Describe("bosh-salted-hash", func() {
	Describe("produce", func() {
		It("prints the MD5 digest of text by default", func() {
			session := runSaltedHash("", "produce", "--text", "hello")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"5d41402abc4b2a76b9719d911017c592"}))
		})

		It("hashes empty text instead of reading stdin", func() {
			session := runSaltedHash("hello", "produce", "--text", "")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"d41d8cd98f00b204e9800998ecf8427e"}))
		})

		It("reports a missing profile", func() {
			session := runSaltedHash("", "produce", "--config", "/nonexistent/profile.yml", "--text", "hello")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Hashing profile '/nonexistent/profile.yml' does not exist"))
		})

		It("reads stdin when no input flag is given", func() {
			session := runSaltedHash("hello", "produce", "--algorithm", "SHA-256")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}))
		})

		It("appends the salt under store-after", func() {
			session := runSaltedHash("", "produce", "--text", "hello", "--salt", "01020304", "--policy", "store-after")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"7d0d05cbf8e5988a4d6c23f4e625a7fc01020304"}))
		})

		It("prints a generated salt that is not stored", func() {
			session := runSaltedHash("", "produce", "--text", "hello", "--salt-length", "8", "--output", "base64")
			Expect(session.ExitCode()).To(Equal(0))

			lines := stdoutLines(session)
			Expect(lines).To(HaveLen(2))
			Expect(lines[1]).To(HavePrefix("salt "))
		})

		It("reads a profile file", func() {
			dir, err := os.MkdirTemp("", "bosh-salted-hash")
			Expect(err).ToNot(HaveOccurred())
			defer os.RemoveAll(dir)

			profilePath := filepath.Join(dir, "profile.yml")
			err = os.WriteFile(profilePath, []byte("salt_policy: store-after\nsalt_order: fixed-first\nfixed_salt: f706570706572\n"), 0600)
			Expect(err).ToNot(HaveOccurred())

			session := runSaltedHash("", "produce", "--config", profilePath, "--text", "hello", "--salt", "01020304")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"0968bb54f8f9ce15e1fa74c5ce5a937601020304"}))
		})

		It("hashes files", func() {
			dir, err := os.MkdirTemp("", "bosh-salted-hash")
			Expect(err).ToNot(HaveOccurred())
			defer os.RemoveAll(dir)

			inputPath := filepath.Join(dir, "input")
			Expect(os.WriteFile(inputPath, []byte("hello"), 0600)).To(Succeed())

			session := runSaltedHash("", "produce", "--file", inputPath)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"5d41402abc4b2a76b9719d911017c592"}))
		})

		It("fails on unknown algorithms", func() {
			session := runSaltedHash("", "produce", "--text", "hello", "--algorithm", "fake-alg")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Unknown digest algorithm: 'fake-alg'"))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Algorithm must be one of MD4, MD5"))
		})
	})

	Describe("digest", func() {
		It("prints the named digest", func() {
			session := runSaltedHash("hello", "digest", "--algorithm", "SHA-256")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"sha-256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}))
		})

		It("verifies against a printed digest", func() {
			session := runSaltedHash("", "digest", "--text", "hello", "--expected", "sha-256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"valid"}))
		})

		It("reports a mismatch", func() {
			session := runSaltedHash("", "digest", "--text", "hullo", "--expected", "md5:5d41402abc4b2a76b9719d911017c592")
			Expect(session.ExitCode()).To(Equal(1))
			Expect(stdoutLines(session)).To(Equal([]string{"invalid"}))
		})

		It("rejects unparseable digests", func() {
			session := runSaltedHash("", "digest", "--text", "hello", "--expected", "fake-alg:abcd")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Parsing digest 'fake-alg:abcd'"))
		})
	})

	Describe("validate", func() {
		It("accepts a blob produced with the same settings", func() {
			produced := runSaltedHash("", "produce", "--text", "hello", "--salt-length", "16", "--policy", "store-before", "--output", "multibase-base58btc")
			Expect(produced.ExitCode()).To(Equal(0))
			blob := stdoutLines(produced)[0]

			session := runSaltedHash("", "validate", "--text", "hello", "--policy", "store-before", "--output", "multibase-base58btc", "--stored", blob)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(stdoutLines(session)).To(Equal([]string{"valid"}))
		})

		It("rejects a tampered blob", func() {
			session := runSaltedHash("", "validate", "--text", "hello", "--policy", "store-after", "--stored", "7d0d05cbf8e5988a4d6c23f4e625a7fc01020305")
			Expect(session.ExitCode()).To(Equal(1))
			Expect(stdoutLines(session)).To(Equal([]string{"invalid"}))
		})

		It("requires --stored", func() {
			session := runSaltedHash("", "validate", "--text", "hello")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(string(session.Err.Contents())).To(ContainSubstring("--stored"))
		})

		It("reports layout errors", func() {
			session := runSaltedHash("", "validate", "--text", "hello", "--policy", "store-after", "--stored", "0102")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Invalid stored hash layout"))
		})
	})

	It("prints help", func() {
		session := runSaltedHash("", "--help")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(string(session.Out.Contents())).To(ContainSubstring("produce"))
	})
})
