package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"marketscope/internal/model"
)

// JsonlSink appends snapshot records to a JSONL file.
type JsonlSink struct {
	path string
	mu   sync.Mutex
}

func NewJsonlSink(path string) *JsonlSink {
	return &JsonlSink{path: path}
}

// PutActionBatch appends a batch of action records as JSON lines.
func (s *JsonlSink) PutActionBatch(actions []model.ActionRecord) error {
	lines := make([]any, len(actions))
	for i, action := range actions {
		lines[i] = action
	}
	return s.appendLines(lines)
}

// PutListingBatch appends a batch of listings as JSON lines.
func (s *JsonlSink) PutListingBatch(listings []model.Listing) error {
	lines := make([]any, len(listings))
	for i, listing := range listings {
		lines[i] = listing
	}
	return s.appendLines(lines)
}

// PutOwnedBatch appends a batch of reconciled gallery entries as JSON lines.
func (s *JsonlSink) PutOwnedBatch(nfts []model.OwnedNft) error {
	lines := make([]any, len(nfts))
	for i, nft := range nfts {
		lines[i] = nft
	}
	return s.appendLines(lines)
}

// PutMintedBatch appends a batch of minted-NFT records as JSON lines.
func (s *JsonlSink) PutMintedBatch(nfts []model.MintedNft) error {
	lines := make([]any, len(nfts))
	for i, nft := range nfts {
		lines[i] = nft
	}
	return s.appendLines(lines)
}

// ReadMintedSnapshot loads minted-NFT records from a JSONL file, in file
// order. A missing file is not an error; the session simply has no mints yet.
func ReadMintedSnapshot(path string) ([]model.MintedNft, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()

	var nfts []model.MintedNft
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var nft model.MintedNft
		if err := json.Unmarshal(line, &nft); err != nil {
			return nil, fmt.Errorf("decode snapshot line: %w", err)
		}
		nfts = append(nfts, nft)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return nfts, nil
}

func (s *JsonlSink) appendLines(records []any) error {
	if len(records) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
