package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/artikel"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/auth"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/barang"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/penalti"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/sewa"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/transaksi"
	"github.com/DurrrA/sigril-sub001/app/echoServer/controller/upload"
	"github.com/DurrrA/sigril-sub001/model"
)

type C struct {
	Auth      *auth.Controller
	Barang    *barang.Controller
	Sewa      *sewa.Controller
	Transaksi *transaksi.Controller
	Penalti   *penalti.Controller
	Artikel   *artikel.Controller
	Upload    *upload.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	})

	// Public
	pub := e.Group("/api")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	pub.GET("/barang", c.Barang.List)
	pub.GET("/barang/:id", c.Barang.Detail)
	pub.GET("/kategori", c.Barang.ListKategori)

	pub.POST("/sewa/availability", c.Sewa.CheckAvailability)

	pub.GET("/artikel", c.Artikel.List)
	pub.POST("/artikel/:id/komentar", c.Artikel.AddKomentar)
	pub.GET("/tags", c.Artikel.ListTags)

	// Authenticated
	authed := e.Group("/api")
	authed.Use(jwtMiddleware, Claims(c.JWTSecret))
	authed.GET("/auth/check-profile", c.Auth.CheckProfile)
	authed.POST("/sewa/request", c.Sewa.CreateRequest)
	authed.POST("/transaksi", c.Transaksi.Create)
	authed.POST("/upload", c.Upload.Upload)

	// Admin
	admin := e.Group("/api")
	admin.Use(jwtMiddleware, Claims(c.JWTSecret), RequireRole(model.RoleAdmin))
	admin.GET("/sewa", c.Sewa.List)
	admin.PATCH("/sewa/:id/status", c.Sewa.UpdateStatus)

	admin.GET("/transaksi/admin", c.Transaksi.ListAdmin)
	admin.GET("/transaksi/dashboard", c.Transaksi.Dashboard)
	admin.PATCH("/transaksi/:id/status", c.Transaksi.UpdateStatus)

	admin.GET("/penalti", c.Penalti.List)
	admin.POST("/penalti", c.Penalti.Create)

	admin.POST("/barang", c.Barang.Create)
	admin.PUT("/barang/:id", c.Barang.Update)
	admin.POST("/kategori", c.Barang.CreateKategori)

	admin.POST("/artikel", c.Artikel.Create)
	admin.DELETE("/artikel/:id", c.Artikel.Delete)
	admin.POST("/tags", c.Artikel.CreateTag)
}
