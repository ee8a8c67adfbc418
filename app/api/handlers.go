package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xsukax/rss-search/app/database"
	"github.com/xsukax/rss-search/app/feed"
)

func NewHandler(store database.FeedStore, searcher SearcherInterface, validator ValidatorInterface) *Handler {
	return &Handler{
		store:     store,
		searcher:  searcher,
		validator: validator,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{"status": "ok"}

	if count, err := h.store.FeedCount(); err == nil {
		health["feeds"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) ListFeeds(c *gin.Context) {
	feeds, err := h.store.ListFeeds()
	if err != nil {
		slog.Error("Database error", "operation", "list_feeds", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feeds": feeds})
}

func (h *Handler) CreateFeed(c *gin.Context) {
	var req FeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	url := strings.TrimSpace(req.URL)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL"})
		return
	}

	added, err := h.store.AddFeed(url)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateFeed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Feed already exists"})
			return
		}
		slog.Error("Database error", "operation", "add_feed", "url", url, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("Feed registered", "id", added.ID, "url", added.URL)
	c.JSON(http.StatusOK, gin.H{"message": "Feed added", "feed": added})
}

func (h *Handler) DeleteFeed(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed id"})
		return
	}

	if err := h.store.DeleteFeed(id); err != nil {
		if errors.Is(err, database.ErrFeedNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feed not found"})
			return
		}
		slog.Error("Database error", "operation", "delete_feed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("Feed deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Feed deleted"})
}

func (h *Handler) ValidateFeed(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	validation, err := h.validator.Run(c.Request.Context(), req.URL)
	if err != nil {
		slog.Debug("Feed validation failed", "url", req.URL, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Valid:       true,
		Title:       validation.Title,
		Description: validation.Description,
		EntryCount:  validation.EntryCount,
	})
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Field == "" {
		req.Field = feed.FieldBoth
	}
	if req.Mode == "" {
		req.Mode = feed.ModeAny
	}

	feeds, err := h.store.ListFeeds()
	if err != nil {
		slog.Error("Database error", "operation", "list_feeds", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	urls := make([]string, 0, len(feeds))
	for _, f := range feeds {
		urls = append(urls, f.URL)
	}

	query := feed.Query{
		Keywords:   req.Keywords,
		Field:      req.Field,
		Mode:       req.Mode,
		MaxResults: req.MaxResults,
	}

	started := time.Now()
	report, err := h.searcher.Run(c.Request.Context(), urls, query)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrNoFeeds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No feeds configured"})
		case errors.Is(err, feed.ErrNoKeywords):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No keywords provided"})
		default:
			slog.Error("Search failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		}
		return
	}

	slog.Info("Search completed",
		"keywords", req.Keywords,
		"field", req.Field,
		"mode", req.Mode,
		"feeds", report.TotalFeeds,
		"failed", len(report.FailedFeeds),
		"results", len(report.Results),
		"duration", time.Since(started).String())

	c.JSON(http.StatusOK, SearchResponse{
		Results:     report.Results,
		TotalFeeds:  report.TotalFeeds,
		FailedFeeds: report.FailedFeeds,
		SearchParams: SearchParams{
			Keywords:   req.Keywords,
			Field:      req.Field,
			Mode:       req.Mode,
			MaxResults: req.MaxResults,
		},
		GeneratedAt: time.Now().In(time.Local).Format(time.RFC3339),
	})
}
