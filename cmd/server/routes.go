package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"swea-cms.backend/internal/interfaces/http/handlers"
	"swea-cms.backend/internal/interfaces/http/middleware"
	"swea-cms.backend/pkg/redis"
)

type routeDeps struct {
	news        *handlers.NewsHandler
	projects    *handlers.ProjectHandler
	research    *handlers.ResearchHandler
	courses     *handlers.CourseHandler
	podcasts    *handlers.PodcastHandler
	members     *handlers.MemberHandler
	team        *handlers.TeamHandler
	subscribers *handlers.SubscriberHandler
	contacts    *handlers.ContactHandler
	auth        *handlers.AuthHandler
	uploads     *handlers.UploadHandler
	health      *handlers.HealthHandler

	authRequired gin.HandlerFunc
	adminOnly    gin.HandlerFunc
	rateLimit    gin.HandlerFunc
	cache        *redis.Cache
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", d.health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// Public content, cached per group and evicted on admin writes
		v1.GET("/news", middleware.CachePage(d.cache, "news"), d.news.List)
		v1.GET("/news/:id", middleware.CachePage(d.cache, "news"), d.news.Get)
		v1.GET("/projects", middleware.CachePage(d.cache, "projects"), d.projects.List)
		v1.GET("/projects/:id", middleware.CachePage(d.cache, "projects"), d.projects.Get)
		v1.GET("/research", middleware.CachePage(d.cache, "research"), d.research.List)
		v1.GET("/research/:id", middleware.CachePage(d.cache, "research"), d.research.Get)
		v1.GET("/courses", middleware.CachePage(d.cache, "courses"), d.courses.List)
		v1.GET("/courses/:id", middleware.CachePage(d.cache, "courses"), d.courses.Get)
		v1.GET("/podcasts", middleware.CachePage(d.cache, "podcasts"), d.podcasts.List)
		v1.GET("/podcasts/:id", middleware.CachePage(d.cache, "podcasts"), d.podcasts.Get)
		v1.GET("/members", middleware.CachePage(d.cache, "members"), d.members.List)
		v1.GET("/members/:id", middleware.CachePage(d.cache, "members"), d.members.Get)
		v1.GET("/team", middleware.CachePage(d.cache, "team"), d.team.List)
		v1.GET("/team/:id", middleware.CachePage(d.cache, "team"), d.team.Get)

		// Public forms, rate limited
		v1.POST("/subscribers", d.rateLimit, d.subscribers.Subscribe)
		v1.DELETE("/subscribers", d.rateLimit, d.subscribers.Unsubscribe)
		v1.POST("/contacts", d.rateLimit, d.contacts.Create)

		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.rateLimit, d.auth.Login)
			auth.POST("/refresh", d.auth.Refresh)
		}

		// Dashboard, token required
		admin := v1.Group("/admin")
		admin.Use(d.authRequired)
		{
			registerContent(admin, "news", d.cache, crudHandlers{
				create: d.news.Create, update: d.news.Update,
				del: d.news.Delete, restore: d.news.Restore,
			})
			registerContent(admin, "projects", d.cache, crudHandlers{
				create: d.projects.Create, update: d.projects.Update,
				del: d.projects.Delete, restore: d.projects.Restore,
			})
			registerContent(admin, "research", d.cache, crudHandlers{
				create: d.research.Create, update: d.research.Update,
				del: d.research.Delete, restore: d.research.Restore,
			})
			registerContent(admin, "courses", d.cache, crudHandlers{
				create: d.courses.Create, update: d.courses.Update,
				del: d.courses.Delete, restore: d.courses.Restore,
			})
			registerContent(admin, "podcasts", d.cache, crudHandlers{
				create: d.podcasts.Create, update: d.podcasts.Update,
				del: d.podcasts.Delete, restore: d.podcasts.Restore,
			})
			registerContent(admin, "members", d.cache, crudHandlers{
				create: d.members.Create, update: d.members.Update,
				del: d.members.Delete, restore: d.members.Restore,
			})
			registerContent(admin, "team", d.cache, crudHandlers{
				create: d.team.Create, update: d.team.Update,
				del: d.team.Delete, restore: d.team.Restore,
			})

			admin.GET("/subscribers", d.subscribers.List)
			admin.POST("/subscribers/broadcast", d.adminOnly, d.subscribers.Broadcast)

			admin.GET("/contacts", d.contacts.List)
			admin.GET("/contacts/:id", d.contacts.Get)
			admin.DELETE("/contacts/:id", d.contacts.Delete)

			admin.POST("/uploads", d.uploads.Upload)
			admin.DELETE("/uploads", d.uploads.Delete)

			admin.POST("/auth/register", d.adminOnly, d.auth.Register)
		}
	}
}

type crudHandlers struct {
	create, update, del, restore gin.HandlerFunc
}

// registerContent wires the write endpoints for one content type and evicts
// its public cache group after each successful write.
func registerContent(g *gin.RouterGroup, name string, cache *redis.Cache, h crudHandlers) {
	evict := middleware.InvalidateCache(cache, name)
	g.POST("/"+name, evict, h.create)
	g.PUT("/"+name+"/:id", evict, h.update)
	g.DELETE("/"+name+"/:id", evict, h.del)
	g.POST("/"+name+"/:id/restore", evict, h.restore)
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
