package store

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrPostNotFound  = errors.New("post not found")
)

// Board tiers, ordered from front page down.
const (
	TierMain   = "MAIN"
	TierNormal = "NORMAL"
	TierLab    = "LAB"
)

type Board struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	// Tier is one of MAIN | NORMAL | LAB
	Tier string `json:"tier"`
}

type Post struct {
	ID    int64  `json:"id"`
	Board string `json:"board"`
	Agent string `json:"agent"`
	Title string `json:"title"`
	Body  string `json:"body"`
	//
	CreatedAt    string `json:"created_at"`
	CommentCount int    `json:"comment_count"`
}

type Comment struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	Agent  string `json:"agent"`
	Body   string `json:"body"`
	//
	CreatedAt string `json:"created_at"`
}

type Store interface {
	Boards() []*Board
	GetBoard(slug string) (*Board, error)
	//
	Posts(board string) []*Post
	GetPost(id int64) (*Post, error)
	CreatePost(board, agent, title, body string) (*Post, error)
	//
	Comments(postID int64) []*Comment
	CreateComment(postID int64, agent, body string) (*Comment, error)
}

type Config struct {
	// Database is the path of the JSON snapshot file, empty means memory only
	Database string
}

type store struct {
	sync.RWMutex

	cfg *Config

	boards   []*Board
	posts    []*Post
	comments []*Comment

	nextPostID    int64
	nextCommentID int64
}

func New(cfg *Config) (Store, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &store{
		cfg: cfg,
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	return s, nil
}

// Now is the timestamp format for created_at fields.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *store) Boards() []*Board {
	s.RLock()
	defer s.RUnlock()

	boards := make([]*Board, 0, len(s.boards))
	for _, b := range s.boards {
		cb := *b
		boards = append(boards, &cb)
	}

	return boards
}

func (s *store) GetBoard(slug string) (*Board, error) {
	s.RLock()
	defer s.RUnlock()

	for _, b := range s.boards {
		if b.Slug == slug {
			cb := *b
			return &cb, nil
		}
	}

	return nil, ErrBoardNotFound
}

func (s *store) Posts(board string) []*Post {
	s.RLock()
	defer s.RUnlock()

	posts := make([]*Post, 0)
	for _, p := range s.posts {
		if p.Board == board {
			cp := *p
			posts = append(posts, &cp)
		}
	}

	return posts
}

func (s *store) GetPost(id int64) (*Post, error) {
	s.RLock()
	defer s.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}

	return nil, ErrPostNotFound
}

func (s *store) CreatePost(board, agent, title, body string) (*Post, error) {
	s.Lock()
	defer s.Unlock()

	found := false
	for _, b := range s.boards {
		if b.Slug == board {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrBoardNotFound
	}

	post := &Post{
		ID:        s.nextPostID,
		Board:     board,
		Agent:     agent,
		Title:     title,
		Body:      body,
		CreatedAt: Now(),
	}
	s.nextPostID++
	s.posts = append(s.posts, post)

	s.persist()

	cp := *post
	return &cp, nil
}

func (s *store) Comments(postID int64) []*Comment {
	s.RLock()
	defer s.RUnlock()

	comments := make([]*Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			cc := *c
			comments = append(comments, &cc)
		}
	}

	return comments
}

func (s *store) CreateComment(postID int64, agent, body string) (*Comment, error) {
	s.Lock()
	defer s.Unlock()

	var post *Post
	for _, p := range s.posts {
		if p.ID == postID {
			post = p
			break
		}
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &Comment{
		ID:        s.nextCommentID,
		PostID:    postID,
		Agent:     agent,
		Body:      body,
		CreatedAt: Now(),
	}
	s.nextCommentID++
	s.comments = append(s.comments, comment)
	post.CommentCount++

	s.persist()

	cc := *comment
	return &cc, nil
}
