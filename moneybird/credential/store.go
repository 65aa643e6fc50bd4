package credential

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "moneybird.credential")

// ErrNoCredential means no token is known for the administration, either
// because the blob has no entry for it or because no blob exists at all.
var ErrNoCredential = errors.New("no credential for administration")

// Table maps an administration id to its API token.
type Table map[string]string

// Resolve looks up the token for an administration id. Absence is not an
// error; the caller decides what a missing credential means.
func (t Table) Resolve(administrationID string) (string, bool) {
	token, ok := t[administrationID]
	return token, ok
}

// Parsed is the outcome of parsing a credential blob: the resolvable pairs
// plus the line numbers that could not be parsed. A malformed line never
// poisons the rest of the blob.
type Parsed struct {
	Table   Table
	Skipped []int
}

// Parse reads a multi-line "administrationId:token" blob. Blank lines are
// dropped, whitespace inside a line is insignificant, the first ':' splits
// id from token, and a later duplicate of the same administration id
// overwrites the earlier entry.
func Parse(blob string) Parsed {
	parsed := Parsed{Table: Table{}}

	for n, line := range strings.Split(blob, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		line = strings.Join(strings.Fields(line), "")

		id, token, found := strings.Cut(line, ":")
		if !found {
			parsed.Skipped = append(parsed.Skipped, n+1)
			continue
		}

		parsed.Table[id] = token
	}

	return parsed
}

// Source is the externally owned credential-blob capability. The store
// only ever reads it; writing the blob belongs to whoever edits the key
// list.
type Source interface {
	Get(ctx context.Context) (blob string, ok bool, err error)
}

type Store struct {
	source Source
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Resolve returns the token for an administration id. The blob is re-read
// and re-parsed on every call, so an edited key list takes effect on the
// next scan without any invalidation logic.
func (s *Store) Resolve(ctx context.Context, administrationID string) (string, error) {

	blob, ok, err := s.source.Get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "read credential blob")
	}
	if !ok {
		return "", ErrNoCredential
	}

	parsed := Parse(blob)
	if len(parsed.Skipped) > 0 {
		// line content stays out of the log, it may hold a token
		logger.Warnf("credential blob: skipped malformed lines %v", parsed.Skipped)
	}

	token, ok := parsed.Table.Resolve(administrationID)
	if !ok {
		return "", ErrNoCredential
	}

	return token, nil
}
