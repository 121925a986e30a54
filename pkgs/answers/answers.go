// Package answers remembers confirmed puzzle answers per input, so a refactor
// that changes a result is caught on the next run.
package answers

import (
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/advent/pkgs/errors"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

// Version is the on-disk format version
const Version = 1

// Digest identifies an input by content
func Digest(input []byte) [32]byte {
	return blake2b.Sum256(input)
}

// Verdict is the outcome of comparing an answer with the store
type Verdict int

const (
	// Unknown means nothing is recorded for this puzzle and input
	Unknown Verdict = iota
	// Match means the answer equals the recorded one
	Match
	// Mismatch means the answer differs from the recorded one
	Mismatch
)

// String returns a human-readable verdict
func (v Verdict) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Entry is one recorded answer
type Entry struct {
	Puzzle string        `cbor:"1,keyasint"`
	Digest []byte        `cbor:"2,keyasint"`
	Answer puzzle.Answer `cbor:"3,keyasint"`
}

// file is the persisted form
type file struct {
	Version int     `cbor:"1,keyasint"`
	Entries []Entry `cbor:"2,keyasint"`
}

// Store maps (puzzle, input digest) to an answer. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty store
func New() *Store {
	return &Store{entries: make(map[string]Entry)}
}

func key(name string, digest [32]byte) string {
	return puzzle.Canonical(name) + "/" + hex.EncodeToString(digest[:])
}

// Record stores answer for name and input, replacing any previous entry
func (s *Store) Record(name string, input []byte, answer puzzle.Answer) {
	d := Digest(input)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key(name, d)] = Entry{
		Puzzle: puzzle.Canonical(name),
		Digest: d[:],
		Answer: answer,
	}
}

// Lookup returns the recorded answer for name and input
func (s *Store) Lookup(name string, input []byte) (puzzle.Answer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key(name, Digest(input))]
	return e.Answer, ok
}

// Check compares got with the recorded answer
func (s *Store) Check(name string, input []byte, got puzzle.Answer) Verdict {
	want, ok := s.Lookup(name, input)
	switch {
	case !ok:
		return Unknown
	case want == got:
		return Match
	default:
		return Mismatch
	}
}

// Len returns the number of recorded answers
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Load reads a store from path. A missing file is an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, errors.NewAnswerStoreError(path, err)
	}

	var f file
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, errors.NewAnswerStoreError(path, fmt.Errorf("decode: %w", err))
	}
	if f.Version != Version {
		return nil, errors.NewAnswerStoreError(path,
			fmt.Errorf("unsupported version: got %d, expected %d", f.Version, Version))
	}

	s := New()
	for _, e := range f.Entries {
		if len(e.Digest) != 32 {
			return nil, errors.NewAnswerStoreError(path,
				fmt.Errorf("entry %s: digest is %d bytes", e.Puzzle, len(e.Digest)))
		}
		var d [32]byte
		copy(d[:], e.Digest)
		s.entries[key(e.Puzzle, d)] = e
	}
	return s, nil
}

// MarshalBinary produces deterministic CBOR: entries sorted, canonical encoding
func (s *Store) MarshalBinary() ([]byte, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	f := file{Version: Version, Entries: make([]Entry, 0, len(keys))}
	for _, k := range keys {
		f.Entries = append(f.Entries, s.entries[k])
	}
	s.mu.RUnlock()

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// Save writes the store to path through a temp file and rename
func (s *Store) Save(path string) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return errors.NewAnswerStoreError(path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewAnswerStoreError(path, err)
	}
	tmp, err := os.CreateTemp(dir, ".answers-*")
	if err != nil {
		return errors.NewAnswerStoreError(path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.NewAnswerStoreError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewAnswerStoreError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.NewAnswerStoreError(path, err)
	}
	return nil
}
