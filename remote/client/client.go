package client

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/transport"
)

var Logger = common.GetLogger("client")

// Result is one decoded command response. The split between Text and Binary
// is heuristic since the wire format carries no response kind; see
// decodeResponse for the rules and their limits.
type Result struct {
	// Text holds the response text for textual responses
	Text string
	// Binary holds the raw payload for binary responses (Text is empty)
	Binary []byte
	// IsError reports whether the server answered with an error
	IsError bool
}

// String renders the result the way the exec command prints it.
func (r Result) String() string {
	if r.IsError {
		return "error " + r.Text
	}
	if r.Binary != nil {
		return fmt.Sprintf("<%d bytes of binary data>", len(r.Binary))
	}
	return r.Text
}

// CommandClient sends command lines to a command server over a framed
// transport and decodes the single response frame per command.
type CommandClient struct {
	transport transport.IClientTransport
}

// NewCommandClient creates a client on the given transport
//
// Usage:
//
//	c := client.NewCommandClient(tcp.NewTCPClientTransport())
//	if err := c.Connect(config); err != nil { ... }
//	defer c.Close()
//	result, err := c.Run("vget /cameras")
func NewCommandClient(t transport.IClientTransport) *CommandClient {
	return &CommandClient{transport: t}
}

// Connect establishes the underlying transport connection
func (c *CommandClient) Connect(config common.ClientConfig) error {
	return c.transport.Connect(config)
}

// Close closes the underlying transport connection
func (c *CommandClient) Close() error {
	return c.transport.Close()
}

// Run sends one command line and waits for its response. A transport failure
// is returned as an error; a server-side command failure is returned as a
// Result with IsError set.
func (c *CommandClient) Run(command string) (Result, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return Result{}, fmt.Errorf("empty command")
	}

	resp, err := c.transport.Send([]byte(command))
	if err != nil {
		return Result{}, err
	}

	return decodeResponse(resp), nil
}

// decodeResponse classifies a response payload. The wire format carries no
// response kind, so the classification is heuristic: error responses carry
// the "error " prefix, payloads shaped like a BMP file are binary (a BMP can
// consist entirely of valid UTF-8 bytes), anything else that is not valid
// UTF-8 is binary (e.g. a PNG, whose signature byte 0x89 can never appear in
// UTF-8 text), and the rest is success text. A binary payload of some other
// format that happens to be valid UTF-8 would be misfiled as text.
func decodeResponse(resp []byte) Result {
	if bytes.HasPrefix(resp, []byte("error ")) {
		return Result{Text: string(resp[len("error "):]), IsError: true}
	}
	if looksLikeBMP(resp) || !utf8.Valid(resp) {
		return Result{Binary: resp}
	}
	return Result{Text: strings.TrimSpace(string(resp))}
}

// looksLikeBMP reports whether resp is plausibly a whole BMP file: the "BM"
// signature followed by a little-endian file size equal to the payload
// length. Checking the size field keeps text that merely starts with "BM"
// (e.g. an object listing) out of the binary branch.
func looksLikeBMP(resp []byte) bool {
	const headerLen = 14
	return len(resp) >= headerLen &&
		resp[0] == 'B' && resp[1] == 'M' &&
		binary.LittleEndian.Uint32(resp[2:6]) == uint32(len(resp))
}
