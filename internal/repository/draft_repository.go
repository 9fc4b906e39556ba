package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrDraftNotFound is returned when a staged create intent has expired
// or never existed.
var ErrDraftNotFound = errors.New("draft not found")

// DraftTTL is how long a staged create intent survives without being
// confirmed or discarded.
const DraftTTL = 15 * time.Minute

// draftTokenAlphabet matches the URL-safe alphabet used for other
// short identifiers in the stack.
const draftTokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DraftRepo stages create-assignment intents in Redis.  A drop on the
// grid stages a draft here; nothing touches the primary database until
// the edit panel's save confirms it.  Drafts expire on their own, so an
// abandoned drop leaves no residue anywhere.
type DraftRepo struct {
	rdb *redis.Client
}

// NewDraftRepo constructs a DraftRepo.  The Redis client may be nil
// when Redis is unavailable; every method then fails fast with
// redis.ErrClosed-like behavior via ErrDraftNotFound on reads and an
// explicit error on writes.
func NewDraftRepo(rdb *redis.Client) *DraftRepo { return &DraftRepo{rdb: rdb} }

var errNoRedis = errors.New("draft staging requires redis")

func draftKey(token string) string { return "draft:" + token }

// Stage stores a draft under a fresh nanoid token with DraftTTL and
// returns the populated draft.
func (r *DraftRepo) Stage(ctx context.Context, d *model.AssignmentDraft) error {
	if r.rdb == nil {
		return errNoRedis
	}
	token, err := gonanoid.Generate(draftTokenAlphabet, 21)
	if err != nil {
		return err
	}
	d.Token = token
	d.CreatedAt = time.Now().UTC()
	body, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, draftKey(token), body, DraftTTL).Err()
}

// Get fetches a staged draft by token.
func (r *DraftRepo) Get(ctx context.Context, token string) (*model.AssignmentDraft, error) {
	if r.rdb == nil {
		return nil, ErrDraftNotFound
	}
	body, err := r.rdb.Get(ctx, draftKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	var d model.AssignmentDraft
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, ErrDraftNotFound
	}
	return &d, nil
}

// Discard removes a staged draft.  Removing an already-expired token
// is not an error: the outcome the caller wants is "gone".
func (r *DraftRepo) Discard(ctx context.Context, token string) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, draftKey(token)).Err()
}
