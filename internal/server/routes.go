package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/scenectl/internal/auth"
	"github.com/danmuck/scenectl/internal/scene"
)

type appendRequest struct {
	Parent string            `json:"parent"`
	Node   string            `json:"node"`
	Name   string            `json:"name"`
	Attrs  map[string]string `json:"attrs"`
}

type nodeRequest struct {
	Node string `json:"node"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.startedAt).String(),
			"component": s.cfg.Name,
			"version":   version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.startedAt).String(),
			"component": s.cfg.Name,
			"version":   version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/scenes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"scenes": s.registry.Names()})
	})

	s.router.GET("/scenes/:scene/tree", func(c *gin.Context) {
		hosted, ok := s.registry.Get(c.Param("scene"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "scene not found"})
			return
		}
		rendered, roots, size := hosted.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"scene":    hosted.Name(),
			"size":     size,
			"rendered": rendered,
			"roots":    roots,
		})
	})

	s.router.GET("/scenes/:scene/nodes/*path", func(c *gin.Context) {
		hosted, ok := s.registry.Get(c.Param("scene"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "scene not found"})
			return
		}
		view, err := hosted.Node(strings.Trim(c.Param("path"), "/"))
		if err != nil {
			respondTreeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	})

	guarded := s.router.Group("/scenes/:scene", auth.RequireToken(s.validator()))

	guarded.POST("/append", func(c *gin.Context) {
		hosted, ok := s.registry.Get(c.Param("scene"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "scene not found"})
			return
		}
		var req appendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Parent == "" || (req.Node == "" && req.Name == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parent and one of node or name are required"})
			return
		}
		if req.Node != "" && req.Name != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "node and name are mutually exclusive"})
			return
		}

		var path string
		var err error
		if req.Node != "" {
			path, err = hosted.Append(req.Parent, req.Node)
		} else {
			path, err = hosted.Create(req.Parent, req.Name, req.Attrs)
		}
		if err != nil {
			respondTreeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"path": path})
	})

	guarded.POST("/detach", func(c *gin.Context) {
		s.handleNodeOp(c, func(h *HostedScene, path string) error {
			return h.Detach(path)
		})
	})

	guarded.POST("/release", func(c *gin.Context) {
		s.handleNodeOp(c, func(h *HostedScene, path string) error {
			return h.Release(path)
		})
	})
}

func (s *Server) handleNodeOp(c *gin.Context, op func(*HostedScene, string) error) {
	hosted, ok := s.registry.Get(c.Param("scene"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "scene not found"})
		return
	}
	var req nodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Node == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "node is required"})
		return
	}
	if err := op(hosted, req.Node); err != nil {
		respondTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondTreeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scene.ErrUnknownNode):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scene.ErrCycle):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, scene.ErrNilNode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
