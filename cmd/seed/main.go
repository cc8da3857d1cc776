package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-schema/config"
	"github.com/d60-Lab/social-schema/internal/cache"
	"github.com/d60-Lab/social-schema/internal/model"
	"github.com/d60-Lab/social-schema/internal/repository"
	"github.com/d60-Lab/social-schema/internal/service"
	"github.com/d60-Lab/social-schema/pkg/database"
	"github.com/d60-Lab/social-schema/pkg/logger"
	"github.com/d60-Lab/social-schema/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	cfg := must(config.Load())
	mustDo(logger.Init(cfg.Log.Level, cfg.Log.Development))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	shutdown := must(tracing.Init(ctx, cfg.Tracing))
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(sctx)
	}()

	db := must(database.InitDB(cfg))
	defer func() { _ = database.Close(db) }()
	mustDo(database.Migrate(db))

	var snapshots *cache.SnapshotCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		snapshots = cache.NewSnapshotCache(rdb, cfg.Redis.TTL)
	}

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	follows := repository.NewFollowRepository(db)
	views := service.NewViewService(users, posts,
		repository.NewMediaRepository(db), repository.NewCommentRepository(db), follows, snapshots)
	rel := service.NewRelationshipService(follows)

	N := 5
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 1 {
			N = n
		}
	}

	seeded := make([]*model.User, N)
	for i := range seeded {
		tag := uuid.New().String()[:8]
		first := "user" + strconv.Itoa(i)
		u := &model.User{Username: "u" + tag, Firstname: &first, Email: tag + "@example.com"}
		mustDo(users.Create(ctx, u))
		seeded[i] = u
	}

	// 每个用户关注下一个用户，形成环
	for i, u := range seeded {
		next := seeded[(i+1)%N]
		_ = must(rel.Follow(ctx, u.ID, next.ID))
	}

	image, video := "image", "video"
	for i, u := range seeded {
		p := &model.Post{UserID: u.ID}
		mustDo(posts.Create(ctx, p))
		mustDo(views.AddMedia(ctx, &model.Media{PostID: p.ID, Type: &image, URL: fmt.Sprintf("https://cdn.example.com/%d.png", p.ID)}))
		if i%2 == 0 {
			mustDo(views.AddMedia(ctx, &model.Media{PostID: p.ID, Type: &video, URL: fmt.Sprintf("https://cdn.example.com/%d.mp4", p.ID)}))
		}
		commenter := seeded[(i+1)%N]
		mustDo(views.AddComment(ctx, &model.Comment{PostID: p.ID, AuthorID: commenter.ID, CommentText: "nice post from " + commenter.Username}))

		v := must(views.PostView(ctx, p.ID))
		fmt.Println(string(must(json.Marshal(v))))
	}

	logger.Info("seed done", zap.Int("users", N))
}
