// Package main sigril rental API.
//
// @title           Sigril Rental API
// @version         1.0
// @description     Equipment rental marketplace (barang, sewa, transaksi, artikel).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/DurrrA/sigril-sub001/app/echoServer"
	artikelctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/artikel"
	authctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/auth"
	barangctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/barang"
	penalctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/penalti"
	sewactrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/sewa"
	transctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/transaksi"
	uploadctrl "github.com/DurrrA/sigril-sub001/app/echoServer/controller/upload"
	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	"github.com/DurrrA/sigril-sub001/config"
	artikelrepo "github.com/DurrrA/sigril-sub001/repository/artikel"
	authrepo "github.com/DurrrA/sigril-sub001/repository/auth"
	barangrepo "github.com/DurrrA/sigril-sub001/repository/barang"
	penalrepo "github.com/DurrrA/sigril-sub001/repository/penalti"
	"github.com/DurrrA/sigril-sub001/repository/queue"
	sewarepo "github.com/DurrrA/sigril-sub001/repository/sewa"
	transrepo "github.com/DurrrA/sigril-sub001/repository/transaksi"
	artikelsvc "github.com/DurrrA/sigril-sub001/service/artikel"
	authsvc "github.com/DurrrA/sigril-sub001/service/auth"
	barangsvc "github.com/DurrrA/sigril-sub001/service/barang"
	penalsvc "github.com/DurrrA/sigril-sub001/service/penalti"
	sewasvc "github.com/DurrrA/sigril-sub001/service/sewa"
	transsvc "github.com/DurrrA/sigril-sub001/service/transaksi"
	"github.com/DurrrA/sigril-sub001/util/cache"
	"github.com/DurrrA/sigril-sub001/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// redis (nil means dashboard caching is disabled)
	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPass, 0)
	if rdb == nil {
		log.Warn("redis unavailable, dashboard cache disabled")
	}

	// event publisher
	var pub queue.Publisher = queue.Nop()
	if cfg.AmqpURL != "" {
		pub = queue.NewAMQP(cfg.AmqpURL, log)
	}

	// repos
	ar := authrepo.New(db)
	br := barangrepo.New(db)
	sr := sewarepo.New(db)
	tr := transrepo.New(db)
	pr := penalrepo.New(db)
	kr := artikelrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	bs := barangsvc.New(br)
	ss := sewasvc.New(db, sr, pub)
	ts := transsvc.New(tr, rdb)
	ps := penalsvc.New(pr)
	ks := artikelsvc.New(kr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	barangC := &barangctrl.Controller{Svc: bs, V: v, Log: log}
	sewaC := &sewactrl.Controller{Svc: ss, V: v, Log: log}
	transC := &transctrl.Controller{Svc: ts, V: v, Log: log}
	penalC := &penalctrl.Controller{Svc: ps, V: v, Log: log}
	artikelC := &artikelctrl.Controller{Svc: ks, V: v, Log: log}
	uploadC := &uploadctrl.Controller{Dir: cfg.UploadDir, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Barang:    barangC,
		Sewa:      sewaC,
		Transaksi: transC,
		Penalti:   penalC,
		Artikel:   artikelC,
		Upload:    uploadC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
