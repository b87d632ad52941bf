package todo

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/MarkusG/todo-go/internal/apperr"
)

// Entry is a single todo item: a positive integer index plus free-text
// content. Indices are caller-assigned and not guaranteed unique in
// storage.
type Entry struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
}

// ParseLine parses one store line into an Entry. The first
// space-separated token must parse as a base-10 signed integer;
// anything else (non-numeric, empty, overflow) is an apperr.ErrParse.
// Content is the remainder after the first space, or "" when the line
// holds only an index.
func ParseLine(line string) (Entry, error) {
	tok, rest, _ := strings.Cut(line, " ")
	index, err := strconv.Atoi(tok)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: invalid index %q: %w", apperr.ErrParse, tok, err)
	}
	return Entry{Index: index, Content: rest}, nil
}

// Parse parses the full store text into entries, preserving file order.
// Lines are split on '\n'; one empty trailing line is tolerated, and a
// trailing '\r' is stripped per line. The first unparseable line aborts
// the whole operation.
func Parse(text string) ([]Entry, error) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		entry, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Sort orders entries by index ascending, in place. The sort is stable
// and compares indices only, so equal-index entries keep input order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
}

// NextIndex returns the next index to assign given entries already
// sorted by index: the smallest positive integer extending a contiguous
// run from 1. It walks the sorted entries with an expected counter and
// stops at the first mismatch, so a duplicate before the true gap
// short-circuits early — that is the defined behavior, not a full
// minimum-excluded-value scan.
//
// {1,2,3} -> 4, {} -> 1, {2,3,4} -> 1, {1,3,4} -> 2.
func NextIndex(sorted []Entry) int {
	next := 1
	for _, e := range sorted {
		if e.Index != next {
			break
		}
		next++
	}
	return next
}

// FormatLine renders an entry in store-file form, without terminator.
func FormatLine(e Entry) string {
	return fmt.Sprintf("%d %s", e.Index, e.Content)
}

// Store reads and appends entries at a fixed file path. The path is
// injected so tests can point it anywhere; the program uses one path
// per run.
type Store struct {
	Path string
}

// NewStore returns a Store over the given path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// List reads the whole store file, parses it, and returns the entries
// sorted by index. A missing or unreadable file is an apperr.ErrIO —
// not an empty list.
func (s *Store) List() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read store file: %w", apperr.ErrIO, err)
	}

	entries, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	Sort(entries)
	return entries, nil
}

// Add appends a new entry holding content, assigning the next available
// index. The file is created if absent. Existing content must parse;
// the append either writes one well-formed line or nothing durable.
func (s *Store) Add(content string) (Entry, error) {
	file, err := os.OpenFile(s.Path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: open store file: %w", apperr.ErrIO, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: read store file: %w", apperr.ErrIO, err)
	}

	entries, err := Parse(string(data))
	if err != nil {
		return Entry{}, err
	}
	Sort(entries)

	entry := Entry{Index: NextIndex(entries), Content: content}
	if _, err := fmt.Fprintf(file, "%s\n", FormatLine(entry)); err != nil {
		return Entry{}, fmt.Errorf("%w: write store file: %w", apperr.ErrIO, err)
	}
	if err := file.Close(); err != nil {
		return Entry{}, fmt.Errorf("%w: close store file: %w", apperr.ErrIO, err)
	}
	return entry, nil
}
