// Package seed loads a small demo dataset: three users with posts,
// follows, likes and a comment thread.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/repomanager"
)

// Counts is the number of stored rows per entity after seeding.
type Counts struct {
	Users    int64
	Posts    int64
	Follows  int64
	Likes    int64
	Comments int64
}

func strPtr(s string) *string { return &s }

// Fixture rows reference earlier rows by slice index.
var (
	fixtureUsers = []models.NewUser{
		{Email: "alice@example.com", Username: "alice", DisplayName: "Alice Johnson", Bio: strPtr("Hello! Nice to meet you 😊")},
		{Email: "bob@example.com", Username: "bob", DisplayName: "Bob Smith", Bio: strPtr("Software developer and coffee lover ☕")},
		{Email: "carol@example.com", Username: "carol", DisplayName: "Carol Brown", Bio: strPtr("Photographer | Travel enthusiast 📸")},
	}

	fixturePosts = []struct {
		author  int
		content string
	}{
		{0, "Hello world! This is my first post on this platform! 🎉"},
		{1, "Just finished working on a new React project. TypeScript is amazing! 🚀"},
		{0, "Beautiful sunset today. Nature never fails to amaze me 🌅"},
	}

	fixtureFollows = []struct{ follower, following int }{
		{1, 0},
		{2, 0},
		{0, 1},
	}

	fixtureLikes = []struct{ user, post int }{
		{1, 0},
		{2, 0},
		{0, 1},
	}

	// parent is -1 for top-level comments.
	fixtureComments = []struct {
		user, post, parent int
		content            string
	}{
		{1, 0, -1, "Welcome to the platform! 🎊"},
		{2, 0, -1, "Great first post!"},
		{0, 0, 0, "Thank you so much! 😊"},
	}
)

// Run inserts the fixture in a single transaction and returns the row
// counts afterwards. Running it twice fails on the unique email.
func Run(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager, log logging.Logger) (*Counts, error) {
	log.Info(ctx, "seeding database")

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return insertFixture(ctx, tx, rm)
	})
	if err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	counts, err := count(ctx, db, rm)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "seed data created",
		"users", counts.Users,
		"posts", counts.Posts,
		"follows", counts.Follows,
		"likes", counts.Likes,
		"comments", counts.Comments,
	)
	return counts, nil
}

func insertFixture(ctx context.Context, tx dbx.DBTX, rm repomanager.RepositoryManager) error {
	userIDs := make([]string, len(fixtureUsers))
	for i := range fixtureUsers {
		u, err := rm.Users(tx).Create(ctx, &fixtureUsers[i])
		if err != nil {
			return fmt.Errorf("user %s: %w", fixtureUsers[i].Username, err)
		}
		userIDs[i] = u.ID
	}

	postIDs := make([]string, len(fixturePosts))
	for i, p := range fixturePosts {
		created, err := rm.Posts(tx).Create(ctx, &models.Post{UserID: userIDs[p.author], Content: p.content})
		if err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
		postIDs[i] = created.ID
	}

	for _, f := range fixtureFollows {
		if _, err := rm.Follows(tx).Create(ctx, &models.Follow{
			FollowerID:  userIDs[f.follower],
			FollowingID: userIDs[f.following],
		}); err != nil {
			return fmt.Errorf("follow: %w", err)
		}
	}

	for _, l := range fixtureLikes {
		if _, err := rm.Likes(tx).Create(ctx, &models.Like{UserID: userIDs[l.user], PostID: postIDs[l.post]}); err != nil {
			return fmt.Errorf("like: %w", err)
		}
	}

	commentIDs := make([]string, len(fixtureComments))
	for i, c := range fixtureComments {
		comment := &models.Comment{PostID: postIDs[c.post], UserID: userIDs[c.user], Content: c.content}
		if c.parent >= 0 {
			comment.ParentCommentID = &commentIDs[c.parent]
		}
		created, err := rm.Comments(tx).Create(ctx, comment)
		if err != nil {
			return fmt.Errorf("comment %d: %w", i, err)
		}
		commentIDs[i] = created.ID
	}

	return nil
}

func count(ctx context.Context, db dbx.DBTX, rm repomanager.RepositoryManager) (*Counts, error) {
	var c Counts
	var err error

	if c.Users, err = rm.Users(db).Count(ctx); err != nil {
		return nil, err
	}
	if c.Posts, err = rm.Posts(db).Count(ctx); err != nil {
		return nil, err
	}
	if c.Follows, err = rm.Follows(db).Count(ctx); err != nil {
		return nil, err
	}
	if c.Likes, err = rm.Likes(db).Count(ctx); err != nil {
		return nil, err
	}
	if c.Comments, err = rm.Comments(db).Count(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}
