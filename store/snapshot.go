package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/go-zoox/fs"
	"github.com/go-zoox/logger"
)

type snapshot struct {
	Boards   []*Board   `json:"boards"`
	Posts    []*Post    `json:"posts"`
	Comments []*Comment `json:"comments"`
}

func (s *store) load() error {
	if s.cfg.Database != "" && fs.IsExist(s.cfg.Database) {
		raw, err := fs.ReadFileAsString(s.cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to read snapshot %s: %w", s.cfg.Database, err)
		}

		data := &snapshot{}
		if err := json.Unmarshal([]byte(raw), data); err != nil {
			return fmt.Errorf("failed to parse snapshot %s: %w", s.cfg.Database, err)
		}

		s.boards = data.Boards
		s.posts = data.Posts
		s.comments = data.Comments
	}

	if len(s.boards) == 0 {
		s.boards = seedBoards()
	}
	if len(s.posts) == 0 && len(s.comments) == 0 {
		s.posts = seedPosts()
		s.comments = seedComments()
	}

	s.nextPostID = 1
	for _, p := range s.posts {
		if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
	}

	s.nextCommentID = 1
	for _, c := range s.comments {
		if c.ID >= s.nextCommentID {
			s.nextCommentID = c.ID + 1
		}
	}

	return nil
}

// persist rewrites the snapshot file, caller must hold the write lock.
// Snapshot failures are logged, a mutation never fails because of disk.
func (s *store) persist() {
	if s.cfg.Database == "" {
		return
	}

	data, err := json.MarshalIndent(&snapshot{
		Boards:   s.boards,
		Posts:    s.posts,
		Comments: s.comments,
	}, "", "  ")
	if err != nil {
		logger.Errorf("failed to marshal snapshot: %s", err)
		return
	}

	if dir := filepath.Dir(s.cfg.Database); !fs.IsExist(dir) {
		if err := fs.Mkdirp(dir); err != nil {
			logger.Errorf("failed to create snapshot dir %s: %s", dir, err)
			return
		}
	}

	if err := fs.WriteFile(s.cfg.Database, data); err != nil {
		logger.Errorf("failed to write snapshot %s: %s", s.cfg.Database, err)
	}
}
