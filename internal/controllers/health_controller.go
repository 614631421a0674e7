package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"sbd/internal/services"
)

type HealthController struct {
	posts     services.PostServiceInterface
	drafts    services.DraftServiceInterface
	visits    services.VisitServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Posts         int     `json:"posts"`
	Drafts        int     `json:"drafts"`
	PendingVisits int     `json:"pending_visits"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Posts:         len(hc.posts.ListAll()),
		Drafts:        len(hc.drafts.List()),
		PendingVisits: hc.visits.GetBufferSize(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(posts services.PostServiceInterface, drafts services.DraftServiceInterface, visits services.VisitServiceInterface) *HealthController {
	return &HealthController{
		posts:     posts,
		drafts:    drafts,
		visits:    visits,
		startTime: time.Now(),
	}
}
