// Command langparse-lsp is a minimal stdio Language Server Protocol server:
// it tracks each open document's text, reparses on
// textDocument/didOpen and textDocument/didChange, and publishes the
// resulting diagnostics. It implements just enough of the base protocol to
// round-trip Content-Length-framed JSON-RPC messages over stdio; the wire
// types for documents and diagnostics come from
// github.com/jdbaldry/go-language-server-protocol/lsp/protocol, the same
// package the teacher's cmd/risor-lsp builds its completion/hover handlers
// on.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"

	"github.com/langcore/parse/lspdiag"
	"github.com/langcore/parse/parser"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	s := &server{docs: make(map[protocol.DocumentURI]string)}
	if err := s.run(os.Stdin, os.Stdout); err != nil && err != io.EOF {
		log.Error().Err(err).Msg("lsp server exited")
		os.Exit(1)
	}
}

type server struct {
	mu   sync.Mutex
	docs map[protocol.DocumentURI]string
}

type rpcMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
}

type rpcNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

func (s *server) run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		msg, err := readMessage(br)
		if err != nil {
			return err
		}
		if err := s.handle(msg, w); err != nil {
			log.Error().Err(err).Str("method", msg.Method).Msg("handler error")
		}
	}
}

func (s *server) handle(msg *rpcMessage, w io.Writer) error {
	switch msg.Method {
	case "initialize":
		return writeMessage(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Result: map[string]interface{}{
				"capabilities": map[string]interface{}{
					"textDocumentSync": 1, // Full
				},
			},
		})
	case "initialized":
		return nil
	case "textDocument/didOpen":
		var p protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(msg.Params, &p); err != nil {
			return err
		}
		return s.parseAndPublish(w, p.TextDocument.URI, p.TextDocument.Text)
	case "textDocument/didChange":
		var p protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(msg.Params, &p); err != nil {
			return err
		}
		if len(p.ContentChanges) == 0 {
			return nil
		}
		text := p.ContentChanges[len(p.ContentChanges)-1].Text
		return s.parseAndPublish(w, p.TextDocument.URI, text)
	case "textDocument/didClose":
		var p protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(msg.Params, &p); err != nil {
			return err
		}
		s.mu.Lock()
		delete(s.docs, p.TextDocument.URI)
		s.mu.Unlock()
		return nil
	case "shutdown":
		return writeMessage(w, rpcResponse{JSONRPC: "2.0", ID: msg.ID, Result: nil})
	case "exit":
		os.Exit(0)
	}
	if len(msg.ID) > 0 {
		return writeMessage(w, rpcResponse{JSONRPC: "2.0", ID: msg.ID, Result: nil})
	}
	return nil
}

func (s *server) parseAndPublish(w io.Writer, uri protocol.DocumentURI, text string) error {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()

	tree := parser.Parse([]byte(text), parser.WithFilename(string(uri)))
	log.Debug().Str("uri", string(uri)).Int("errors", len(tree.Errors)).Msg("reparsed document")

	return writeMessage(w, rpcNotification{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: lspdiag.FromTree(tree),
		},
	})
}

func readMessage(br *bufio.Reader) (*rpcMessage, error) {
	var contentLength int
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = trimCRLF(line)
		if line == "" {
			break
		}
		fmt.Sscanf(line, "Content-Length: %d", &contentLength)
	}
	if contentLength <= 0 {
		return nil, fmt.Errorf("lsp: missing or zero Content-Length header")
	}
	buf := make([]byte, contentLength)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, err
	}
	var msg rpcMessage
	if err := json.Unmarshal(buf, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func writeMessage(w io.Writer, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

func trimCRLF(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
