package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"mediaku_backend/internals/configs"
	"mediaku_backend/internals/constants"
	database "mediaku_backend/internals/databases"
	mediaService "mediaku_backend/internals/features/media/service"
	"mediaku_backend/internals/features/posts/repository"
	postService "mediaku_backend/internals/features/posts/service"
	middlewares "mediaku_backend/internals/middlewares"
	routes "mediaku_backend/internals/route"
	"mediaku_backend/internals/scheduler"
	"mediaku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		// sedikit di atas batas media 50 MiB, supaya intake yang menolak,
		// bukan parser body
		BodyLimit: int(constants.MaxUploadSize) + 2*1024*1024,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect (SQLite file tunggal) + pool
	db, err := database.Connect(configs.DBPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	database.TunePool(db)

	// inspeksi dev (padanan checkPosts/checkIndex)
	if os.Getenv("CHECK_POSTS") != "" {
		seeds.DumpPosts(db)
		seeds.CheckIndexes(db)
	}

	// 📁 media service + pipeline posting
	media, err := mediaService.NewMediaService(configs.UploadDir)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	repo := repository.NewPostRepository(db)
	svc := postService.NewPostService(repo, media)

	// ⏱ backup harian setelah DB siap
	if err := scheduler.StartBackupScheduler(configs.DBPath, configs.BackupDir, configs.BackupCron); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// 📂 serve file media by generated filename
	app.Static("/media", configs.UploadDir)

	// ✅ Routes
	routes.SetupRoutes(app, svc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 60 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	scheduler.StopBackupScheduler()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Database connection closed.")
}
