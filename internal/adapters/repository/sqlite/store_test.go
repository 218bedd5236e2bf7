package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/recruitiq/internal/adapters/repository"
	"github.com/okian/recruitiq/internal/adapters/repository/sqlite"
)

// seedDB creates the externally owned schema and a small fixture. The store
// itself never creates tables; this mirrors the administration flow.
func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recruitiq.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE sessions (id TEXT PRIMARY KEY, name TEXT, interviewer TEXT, date TEXT)`,
		`CREATE TABLE candidates (id TEXT PRIMARY KEY, session_id TEXT, name TEXT,
			email TEXT, position TEXT, experience_years INTEGER)`,
		`CREATE TABLE scores (candidate_id TEXT, metric TEXT, value REAL)`,
		`INSERT INTO sessions VALUES ('s1', 'Round 1', 'Ada', '2026-01-15')`,
		`INSERT INTO sessions VALUES ('s2', 'Round 2', 'Hugo', '2026-02-15')`,
		`INSERT INTO candidates VALUES ('a', 's1', 'A', 'a@example.com', 'SRE', 4)`,
		`INSERT INTO candidates VALUES ('b', 's1', 'B', NULL, NULL, NULL)`,
		`INSERT INTO candidates VALUES ('c', 's2', 'C', '', '', 0)`,
		`INSERT INTO scores VALUES ('a', 'Technical Skills', 8)`,
		`INSERT INTO scores VALUES ('a', 'Communication', 6)`,
		`INSERT INTO scores VALUES ('b', 'Technical Skills', 5)`,
		`INSERT INTO scores VALUES ('c', 'Communication', 7)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}
	return path
}

func TestSQLiteStore(t *testing.T) {
	Convey("Given a SQLite database with evaluation data", t, func() {
		ctx := context.Background()
		store, err := sqlite.Open(seedDB(t))
		So(err, ShouldBeNil)
		defer func() { _ = store.Close() }()

		Convey("When listing sessions", func() {
			sessions, err := store.ListSessions(ctx)
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 2)

			Convey("Then newest sessions come first", func() {
				So(sessions[0].ID, ShouldEqual, "s2")
				So(sessions[1].ID, ShouldEqual, "s1")
			})
		})

		Convey("When listing candidates", func() {
			candidates, err := store.ListCandidates(ctx, "s1")
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 2)

			Convey("Then NULL optional columns become zero values", func() {
				So(candidates[1].Name, ShouldEqual, "B")
				So(candidates[1].Email, ShouldEqual, "")
				So(candidates[1].ExperienceYears, ShouldEqual, 0)
			})

			Convey("And an unknown session maps to the sentinel error", func() {
				_, err := store.ListCandidates(ctx, "nope")
				So(errors.Is(err, repository.ErrSessionNotFound), ShouldBeTrue)
			})
		})

		Convey("When fetching a session's scores in one query", func() {
			scores, err := store.ScoresForSession(ctx, "s1")
			So(err, ShouldBeNil)
			So(scores, ShouldHaveLength, 2)
			So(scores["a"], ShouldHaveLength, 2)
			So(scores["b"], ShouldHaveLength, 1)

			_, hasOtherSession := scores["c"]
			So(hasOtherSession, ShouldBeFalse)
		})

		Convey("When fetching one candidate's scores", func() {
			scores, err := store.ScoresForCandidate(ctx, "a")
			So(err, ShouldBeNil)
			So(scores, ShouldHaveLength, 2)

			_, err = store.ScoresForCandidate(ctx, "nope")
			So(errors.Is(err, repository.ErrCandidateNotFound), ShouldBeTrue)
		})

		Convey("When counting scores", func() {
			n, err := store.CountScores(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 4)
		})
	})

	Convey("Given an empty database path", t, func() {
		_, err := sqlite.Open("  ")
		So(err, ShouldNotBeNil)
	})
}
