package content

import (
	"fmt"
	"sync"

	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

// ReactionKind is a user's recorded choice on a post.
type ReactionKind string

const (
	ReactionNone    ReactionKind = ""
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ReactionLedger tracks each user's like/dislike choice per forum post,
// outside the post object, and keeps the aggregate counters on the post in
// step. Choices persist under reaction_{userId}_{postId}; absence means no
// reaction.
type ReactionLedger struct {
	mu    sync.Mutex
	posts *Collection[domain.ForumPost, domain.ForumPostPatch]
	store *localstore.Store
}

func NewReactionLedger(posts *Collection[domain.ForumPost, domain.ForumPostPatch], store *localstore.Store) *ReactionLedger {
	return &ReactionLedger{posts: posts, store: store}
}

// Current returns the user's recorded choice for a post.
func (l *ReactionLedger) Current(userID, postID string) ReactionKind {
	v, ok := l.store.GetString(reactionKey(userID, postID))
	if !ok {
		return ReactionNone
	}
	switch ReactionKind(v) {
	case ReactionLike, ReactionDislike:
		return ReactionKind(v)
	}
	return ReactionNone
}

// React applies one press of the like or dislike button:
//
//	none     + like    -> liked     (likes+1)
//	none     + dislike -> disliked  (dislikes+1)
//	liked    + like    -> none      (likes-1)
//	liked    + dislike -> disliked  (likes-1, dislikes+1)
//	disliked + like    -> liked     (dislikes-1, likes+1)
//	disliked + dislike -> none      (dislikes-1)
//
// A missing user (no session), an unknown kind, or a missing post all leave
// counters and ledger untouched and report failure.
func (l *ReactionLedger) React(userID, postID string, kind ReactionKind) (domain.ForumPost, bool) {
	if userID == "" || (kind != ReactionLike && kind != ReactionDislike) {
		return domain.ForumPost{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.Current(userID, postID)

	var next ReactionKind
	var dLikes, dDislikes int
	switch {
	case prev == kind && kind == ReactionLike:
		next, dLikes = ReactionNone, -1
	case prev == kind && kind == ReactionDislike:
		next, dDislikes = ReactionNone, -1
	case kind == ReactionLike:
		next, dLikes = ReactionLike, 1
		if prev == ReactionDislike {
			dDislikes = -1
		}
	default:
		next, dDislikes = ReactionDislike, 1
		if prev == ReactionLike {
			dLikes = -1
		}
	}

	var updated domain.ForumPost
	ok := l.posts.Transform(postID, func(p domain.ForumPost) domain.ForumPost {
		p.Likes += dLikes
		p.Dislikes += dDislikes
		updated = p
		return p
	})
	if !ok {
		return domain.ForumPost{}, false
	}

	key := reactionKey(userID, postID)
	if next == ReactionNone {
		l.store.Delete(key)
	} else {
		l.store.SetString(key, string(next))
	}
	return updated, true
}

func reactionKey(userID, postID string) string {
	return fmt.Sprintf("reaction_%s_%s", userID, postID)
}
