package main

type Options struct {
	LogLevel string `long:"log-level" description:"Log level (DEBUG, INFO, WARN, ERROR, NONE)" default:"NONE"`

	Produce  ProduceCmd  `command:"produce" description:"Hash the input and print the blob to store"`
	Validate ValidateCmd `command:"validate" description:"Check the input against a stored blob"`
	Digest   DigestCmd   `command:"digest" description:"Print or verify the unsalted digest of the input"`
}

type ProfileOpts struct {
	Config       string `long:"config" description:"Path to a YAML hashing profile"`
	Algorithm    string `long:"algorithm" description:"Digest algorithm, e.g. MD5, SHA-256, BLAKE3"`
	TextEncoding string `long:"encoding" description:"Charset used to turn --text into bytes"`
	Policy       string `long:"policy" description:"Salt store policy (do-not-store, store-before, store-after)"`
	Order        string `long:"order" description:"Salt order when a fixed salt is set (stored-first, fixed-first)"`
	SaltLength   int    `long:"salt-length" description:"Length of a generated stored salt"`
	FixedSalt    string `long:"fixed-salt" description:"Multibase encoded fixed salt"`
	Output       string `long:"output" description:"Blob text form (hex, base64, base64url, multibase-<base>)"`
}

type InputOpts struct {
	Text *string `long:"text" description:"Text to hash"`
	File string  `long:"file" description:"File to hash, read from stdin when neither --text nor --file is given"`
}

type ProduceCmd struct {
	ProfileOpts
	InputOpts

	Salt string `long:"salt" description:"Stored salt, in the output form"`

	deps deps
}

type ValidateCmd struct {
	ProfileOpts
	InputOpts

	Salt   string `long:"salt" description:"Stored salt for do-not-store policies, in the output form"`
	Stored string `long:"stored" description:"Stored blob, in the output form" required:"true"`

	deps deps
}

type DigestCmd struct {
	InputOpts

	Algorithm    string `long:"algorithm" description:"Digest algorithm, e.g. MD5, SHA-256, BLAKE3"`
	TextEncoding string `long:"encoding" description:"Charset used to turn --text into bytes"`
	Expected     string `long:"expected" description:"Digest to verify against, in the name:hex form this command prints"`

	deps deps
}
