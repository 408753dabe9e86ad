package pathalerts

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/tracking"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/utils"
)

type healthResponse struct {
	Status          string            `json:"status"`
	LatestFeedEpoch int64             `json:"latest_feed_epoch"`
	LastRefresh     string            `json:"last_refresh,omitempty"`
	ValidUntil      string            `json:"valid_until,omitempty"`
	AlertCount      int               `json:"alert_count"`
	LastError       string            `json:"last_error,omitempty"`
	Changes         *tracking.Changes `json:"changes,omitempty"`
}

// health status: "starting" before the first feed, "degraded" when the latest refresh failed
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "starting"}
	if feed := s.cache.Feed(); feed != nil {
		epoch := int64(feed.GetHeader().GetTimestamp())
		resp.Status = "ok"
		resp.LatestFeedEpoch = epoch
		resp.LastRefresh = utils.Iso8601FromUnixSeconds(epoch)
		resp.ValidUntil = utils.ValidUntilFrom(epoch, s.readIntervalMS)
		resp.AlertCount = len(feed.GetEntity())
		if c := s.cache.Changes(); !c.Empty() {
			resp.Changes = &c
		}
	}
	if err := s.cache.LastError(); err != nil {
		resp.LastError = err.Error()
		if resp.Status == "ok" {
			resp.Status = "degraded"
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}
