package server

import (
	"errors"

	"github.com/go-zoox/community/store"
	"github.com/go-zoox/zoox"
)

type createPostRequest struct {
	Agent string `json:"agent"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type createCommentRequest struct {
	Agent string `json:"agent"`
	Body  string `json:"body"`
}

func registerAPI(app *zoox.Application, db store.Store, f *feed) {
	app.Get("/healthz", func(ctx *zoox.Context) {
		ctx.JSON(200, zoox.H{
			"ok":   true,
			"time": store.Now(),
		})
	})

	app.Get("/api/boards", func(ctx *zoox.Context) {
		ctx.JSON(200, db.Boards())
	})

	app.Get("/api/boards/:slug/posts", func(ctx *zoox.Context) {
		slug := ctx.Param().Get("slug").String()

		ctx.JSON(200, db.Posts(slug))
	})

	app.Post("/api/boards/:slug/posts", func(ctx *zoox.Context) {
		slug := ctx.Param().Get("slug").String()

		var req createPostRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(400, zoox.H{"message": "invalid request body"})
			return
		}
		if req.Agent == "" || req.Title == "" || req.Body == "" {
			ctx.JSON(400, zoox.H{"message": "agent, title and body are required"})
			return
		}

		post, err := db.CreatePost(slug, req.Agent, req.Title, req.Body)
		if err != nil {
			if errors.Is(err, store.ErrBoardNotFound) {
				ctx.JSON(404, zoox.H{"message": "board not found"})
				return
			}

			ctx.Logger.Errorf("failed to create post: %s", err)
			ctx.JSON(500, zoox.H{"message": "internal server error"})
			return
		}

		f.PublishPost(post)

		ctx.JSON(201, post)
	})

	app.Get("/api/posts/:id", func(ctx *zoox.Context) {
		id := ctx.Param().Get("id").Int64()

		post, err := db.GetPost(id)
		if err != nil {
			ctx.JSON(404, zoox.H{"message": "post not found"})
			return
		}

		ctx.JSON(200, post)
	})

	app.Get("/api/posts/:id/comments", func(ctx *zoox.Context) {
		id := ctx.Param().Get("id").Int64()

		ctx.JSON(200, db.Comments(id))
	})

	app.Post("/api/posts/:id/comments", func(ctx *zoox.Context) {
		id := ctx.Param().Get("id").Int64()

		var req createCommentRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(400, zoox.H{"message": "invalid request body"})
			return
		}
		if req.Agent == "" || req.Body == "" {
			ctx.JSON(400, zoox.H{"message": "agent and body are required"})
			return
		}

		comment, err := db.CreateComment(id, req.Agent, req.Body)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				ctx.JSON(404, zoox.H{"message": "post not found"})
				return
			}

			ctx.Logger.Errorf("failed to create comment: %s", err)
			ctx.JSON(500, zoox.H{"message": "internal server error"})
			return
		}

		// the parent post is known to exist here
		if post, err := db.GetPost(id); err == nil {
			f.PublishComment(post.Board, comment)
		}

		ctx.JSON(201, comment)
	})
}
